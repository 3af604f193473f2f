package svgicon

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
	mt "github.com/rustyoz/Mtransform"
)

// DrawingInstructionParser allow getting drawing instructions from an
// element. All SVG elements implement this interface.
type DrawingInstructionParser interface {
	ParseDrawingInstructions() chan *DrawingInstruction
}

// Element is a drawable SVG element kept in document order.
type Element interface {
	DrawingInstructionParser
	// Tag is the element's local XML name.
	Tag() string

	drawInto(emit func(*DrawingInstruction))
}

// Svg represents an SVG document: its root attributes and the drawable
// elements it contains.
type Svg struct {
	Title     string
	Class     string
	ViewBox   string
	Elements  []Element
	Name      string
	Transform *mt.Transform
	scale     float64
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID              string
	Stroke          string
	StrokeWidth     float64
	Fill            string
	FillRule        string
	Elements        []Element
	TransformString string
	Parent          *Group
	Owner           *Svg

	parentWorld mt.Transform
	placement
}

// Tag returns "g".
func (g *Group) Tag() string { return "g" }

// ParseDrawingInstructions implements the DrawingInstructionParser interface
func (g *Group) ParseDrawingInstructions() chan *DrawingInstruction {
	return streamInstructions(g)
}

func (g *Group) drawInto(emit func(*DrawingInstruction)) {
	for _, e := range g.Elements {
		e.drawInto(emit)
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "stroke":
			g.Stroke = attr.Value
		case "stroke-width":
			g.StrokeWidth = parseLength(attr.Value)
		case "fill":
			g.Fill = attr.Value
		case "fill-rule":
			g.FillRule = attr.Value
		case "transform":
			g.TransformString = attr.Value
		}
	}
	if g.Owner == nil {
		g.parentWorld = mt.Identity()
	}
	g.place(g.parentWorld, g.ownerScale(), g.TransformString, g.ID)

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			e, err := decodeChild(decoder, tok, g.Owner, g)
			if err != nil {
				return errors.Wrap(err, "error decoding element of Group")
			}
			if e != nil {
				g.Elements = append(g.Elements, e)
			}

		case xml.EndElement:
			return nil
		}
	}
}

func (g *Group) ownerScale() float64 {
	if g.Owner == nil {
		return 1
	}
	return g.Owner.scale
}

// ParseDrawingInstructions returns every element's drawing instructions in
// document order. The channel is closed after the last one.
func (s *Svg) ParseDrawingInstructions() chan *DrawingInstruction {
	out := make(chan *DrawingInstruction, 100)
	go func() {
		defer close(out)
		for _, e := range s.Elements {
			e.drawInto(func(di *DrawingInstruction) { out <- di })
		}
	}()
	return out
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	if start.Name.Local != "svg" {
		return errors.Errorf("expected <svg> root, got <%s>", start.Name.Local)
	}
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "class":
			s.Class = attr.Value
		case "viewBox":
			s.ViewBox = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if tok.Name.Local == "title" {
				if err = decoder.DecodeElement(&s.Title, &tok); err != nil {
					return errors.Wrap(err, "error decoding title")
				}
				continue
			}
			e, err := decodeChild(decoder, tok, s, nil)
			if err != nil {
				return errors.Wrap(err, "error decoding element of SVG struct")
			}
			if e != nil {
				s.Elements = append(s.Elements, e)
			}

		case xml.EndElement:
			return nil
		}
	}
}

// decodeChild decodes one element under parent, or directly under the
// document when parent is nil. Unsupported elements are skipped along with
// their children and yield a nil Element.
func decodeChild(decoder *xml.Decoder, start xml.StartElement, owner *Svg, parent *Group) (Element, error) {
	world, scale := mt.Identity(), 1.0
	if owner != nil && owner.Transform != nil {
		world, scale = *owner.Transform, owner.scale
	}
	if parent != nil {
		world, scale = parent.resolved()
	}

	switch start.Name.Local {
	case "g":
		g := &Group{Parent: parent, Owner: owner, parentWorld: world}
		if parent != nil {
			g.Stroke = parent.Stroke
			g.StrokeWidth = parent.StrokeWidth
			g.Fill = parent.Fill
			g.FillRule = parent.FillRule
		}
		if err := decoder.DecodeElement(g, &start); err != nil {
			return nil, err
		}
		return g, nil

	case "path":
		p := &Path{}
		if parent != nil {
			p.StrokeWidth = parent.StrokeWidth
			p.Stroke = parent.Stroke
			if parent.Fill != "" {
				fill := parent.Fill
				p.Fill = &fill
			}
		}
		if err := decoder.DecodeElement(p, &start); err != nil {
			return nil, err
		}
		p.place(world, scale, p.TransformString, p.ID)
		return p, nil

	case "ellipse":
		e := &Ellipse{}
		if err := decoder.DecodeElement(e, &start); err != nil {
			return nil, err
		}
		e.place(world, scale, e.TransformString, e.ID)
		return e, nil

	case "circle":
		c := &Circle{}
		if err := decoder.DecodeElement(c, &start); err != nil {
			return nil, err
		}
		c.place(world, scale, c.TransformString, c.ID)
		return c, nil

	case "rect":
		r := &Rect{}
		if err := decoder.DecodeElement(r, &start); err != nil {
			return nil, err
		}
		r.place(world, scale, r.TransformString, r.ID)
		return r, nil
	}

	logger.Debug().Str("element", start.Name.Local).Msg("skipping unsupported element")
	return nil, decoder.Skip()
}

func newSvg(name string, scale float64) *Svg {
	svg := &Svg{Name: name, scale: 1}
	svg.Transform = mt.NewTransform()
	if scale > 0 {
		svg.Transform.Scale(scale, scale)
		svg.scale = scale
	}
	if scale < 0 {
		svg.Transform.Scale(1.0/-scale, 1.0/-scale)
		svg.scale = 1.0 / -scale
	}
	return svg
}

// ParseSvg parses an SVG string into an SVG struct
func ParseSvg(str string, name string, scale float64) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), name, scale)
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string, scale float64) (*Svg, error) {
	svg := newSvg(name, scale)
	if err := xml.NewDecoder(r).Decode(svg); err != nil {
		return nil, errors.Wrapf(err, "ParseSvg %s", name)
	}

	logger.Debug().
		Str("name", name).
		Int("elements", len(svg.Elements)).
		Msg("parsed svg")
	return svg, nil
}

// parseLength reads a number with an optional "px" unit. Anything else
// yields 0.
func parseLength(s string) float64 {
	f, err := parseTransformArgs(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if err != nil || len(f) != 1 {
		return 0
	}
	return f[0]
}
