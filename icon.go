package svgicon

import (
	"strconv"
	"strings"
)

// DatasetClass is the class token every dataset icon carries ahead of the
// caller's class.
const DatasetClass = "dataset-icon"

// DatasetViewBox is the fixed coordinate system of the dataset icon.
const DatasetViewBox = "0 0 40 40"

// layer is one disc of the dataset cylinder: an ellipse and the curve
// drawn across it.
type layer struct {
	cy float64
}

const (
	layerCx     = 20
	layerRx     = 18
	layerRy     = 6
	lidLeft     = 2
	lidRight    = 38
	lidCtrlDrop = 4
)

var datasetLayers = [...]layer{{cy: 8}, {cy: 20}, {cy: 32}}

// DatasetIcon returns SVG markup for the dataset glyph: three stacked
// ellipses, each followed by a shallow curve. class is appended to the
// root element's class attribute verbatim. It is not escaped, so callers
// placing untrusted input into a document should use SafeDatasetIcon or
// DatasetIconHTML.
func DatasetIcon(class string) string {
	var b strings.Builder
	b.Grow(320 + len(class))

	b.WriteString(`<svg class="` + DatasetClass + ` `)
	b.WriteString(class)
	b.WriteString(`" viewBox="` + DatasetViewBox + `">`)
	for _, l := range datasetLayers {
		b.WriteString("\n    ")
		writeEllipse(&b, l)
		b.WriteString("\n    ")
		writeLid(&b, l)
	}
	b.WriteString("\n</svg>")

	return b.String()
}

func writeEllipse(b *strings.Builder, l layer) {
	b.WriteString(`<ellipse cx="`)
	b.WriteString(num(layerCx))
	b.WriteString(`" cy="`)
	b.WriteString(num(l.cy))
	b.WriteString(`" rx="`)
	b.WriteString(num(layerRx))
	b.WriteString(`" ry="`)
	b.WriteString(num(layerRy))
	b.WriteString(`"/>`)
}

// writeLid emits "M2 y Q20 y+4 38 y".
func writeLid(b *strings.Builder, l layer) {
	b.WriteString(`<path d="M`)
	b.WriteString(num(lidLeft))
	b.WriteByte(' ')
	b.WriteString(num(l.cy))
	b.WriteString(" Q")
	b.WriteString(num(layerCx))
	b.WriteByte(' ')
	b.WriteString(num(l.cy + lidCtrlDrop))
	b.WriteByte(' ')
	b.WriteString(num(lidRight))
	b.WriteByte(' ')
	b.WriteString(num(l.cy))
	b.WriteString(`"/>`)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
