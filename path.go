package svgicon

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// Path is an SVG XML path element
type Path struct {
	ID              string  `xml:"id,attr"`
	D               string  `xml:"d,attr"`
	Style           string  `xml:"style,attr"`
	TransformString string  `xml:"transform,attr"`
	StrokeWidth     float64 `xml:"stroke-width,attr"`
	Fill            *string `xml:"fill,attr"`
	Stroke          string  `xml:"stroke,attr"`

	placement
}

// A Segment of a path that contains a list of connected points, its
// stroke Width and if the segment forms a closed loop.  Points are
// defined in world space after any matrix transformation is applied.
type Segment struct {
	Width  float64
	Closed bool
	Points [][2]float64
}

func (s *Segment) addPoint(p [2]float64) {
	s.Points = append(s.Points, p)
}

// Tag returns "path".
func (p *Path) Tag() string { return "path" }

// Parse interprets path description, transform and style atttributes to
// create a channel of segments.
func (p *Path) Parse() chan Segment {
	segments := make(chan Segment)
	go func() {
		defer close(segments)
		pdp := p.newParser(func(*DrawingInstruction) {}, func(s Segment) { segments <- s })
		pdp.run()
	}()
	return segments
}

// ParseDrawingInstructions returns the path's drawing instructions, ending
// with a PaintInstruction that carries its stroke and fill. The channel is
// closed after the last one.
func (p *Path) ParseDrawingInstructions() chan *DrawingInstruction {
	return streamInstructions(p)
}

func (p *Path) drawInto(emit func(*DrawingInstruction)) {
	p.newParser(emit, func(Segment) {}).run()
}

func (p *Path) newParser(emit func(*DrawingInstruction), flush func(Segment)) *pathDescriptionParser {
	transform, scale := p.resolved()
	pdp := &pathDescriptionParser{
		p:         p,
		transform: transform,
		scale:     scale,
		width:     p.StrokeWidth,
		stroke:    p.Stroke,
		fill:      p.Fill,
		emit:      emit,
		flush:     flush,
	}
	pdp.applyStyle(splitStyle(p.Style))
	if pdp.width == 0 {
		pdp.width = 1
	}
	return pdp
}

// applyStyle lets the style attribute override presentation attributes.
func (pdp *pathDescriptionParser) applyStyle(properties map[string]string) {
	for key, val := range properties {
		switch key {
		case "stroke-width":
			sw, err := strconv.ParseFloat(strings.TrimSuffix(val, "px"), 64)
			if err == nil {
				pdp.width = sw
			}
		case "stroke":
			pdp.stroke = val
		case "fill":
			fill := val
			pdp.fill = &fill
		}
	}
}

type pathDescriptionParser struct {
	p              *Path
	lex            *gl.Lexer
	x, y           float64
	startX, startY float64
	transform      mt.Transform
	scale          float64
	width          float64
	stroke         string
	fill           *string
	currentsegment *Segment

	emit  func(*DrawingInstruction)
	flush func(Segment)
}

func (pdp *pathDescriptionParser) run() {
	l, items := gl.Lex(pdp.p.ID, pdp.p.D)
	// the lexer keeps sending after the first EOS or error
	defer func() {
		for range items {
		}
	}()
	pdp.lex = l

	for {
		i := pdp.lex.NextItem()
		switch i.Type {
		case gl.ItemError:
			logger.Warn().Str("id", pdp.p.ID).Str("item", i.Value).Msg("path data error")
			pdp.flushSegment()
			return
		case gl.ItemEOS:
			pdp.flushSegment()
			width := pdp.width * pdp.scale
			stroke := pdp.stroke
			pdp.emit(&DrawingInstruction{
				Kind:        PaintInstruction,
				StrokeWidth: &width,
				Stroke:      &stroke,
				Fill:        pdp.fill,
			})
			return
		case gl.ItemLetter:
			if err := pdp.parseCommand(i.Value); err != nil {
				logger.Debug().Err(err).Str("id", pdp.p.ID).Str("command", i.Value).Msg("skipping path command")
			}
		}
	}
}

func (pdp *pathDescriptionParser) parseCommand(cmd string) error {
	switch cmd {
	case "M", "m":
		return pdp.parseMoveTo(cmd == "m")
	case "L", "l":
		return pdp.parseLineTo(cmd == "l")
	case "H", "h":
		return pdp.parseAxisLineTo(cmd == "h", true)
	case "V", "v":
		return pdp.parseAxisLineTo(cmd == "v", false)
	case "C", "c":
		return pdp.parseCurveTo(cmd == "c")
	case "Q", "q":
		return pdp.parseQuadTo(cmd == "q")
	case "Z", "z":
		pdp.parseClose()
		return nil
	}
	return errors.Errorf("unsupported path command %q", cmd)
}

func (pdp *pathDescriptionParser) tuples() ([]Tuple, error) {
	var tuples []Tuple
	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		t, err := parseTuple(pdp.lex)
		if err != nil {
			return tuples, err
		}
		tuples = append(tuples, t)
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		pdp.lex.ConsumeWhiteSpace()
	}
	return tuples, nil
}

func (pdp *pathDescriptionParser) numbers() ([]float64, error) {
	var nums []float64
	pdp.lex.ConsumeWhiteSpace()
	for pdp.lex.PeekItem().Type == gl.ItemNumber {
		n, err := parseNumber(pdp.lex.NextItem())
		if err != nil {
			return nums, err
		}
		nums = append(nums, n)
		pdp.lex.ConsumeWhiteSpace()
		pdp.lex.ConsumeComma()
		pdp.lex.ConsumeWhiteSpace()
	}
	return nums, nil
}

// world maps a user space point through the path's transform.
func (pdp *pathDescriptionParser) world(x, y float64) [2]float64 {
	wx, wy := pdp.transform.Apply(x, y)
	return [2]float64{wx, wy}
}

func (pdp *pathDescriptionParser) worldTuple(x, y float64) *Tuple {
	w := Tuple(pdp.world(x, y))
	return &w
}

func (pdp *pathDescriptionParser) flushSegment() {
	if pdp.currentsegment != nil {
		pdp.flush(*pdp.currentsegment)
		pdp.currentsegment = nil
	}
}

// segment returns the open segment, starting one at the current point if
// needed.
func (pdp *pathDescriptionParser) segment() *Segment {
	if pdp.currentsegment == nil {
		pdp.currentsegment = &Segment{Width: pdp.width * pdp.scale}
		pdp.currentsegment.addPoint(pdp.world(pdp.x, pdp.y))
	}
	return pdp.currentsegment
}

func (pdp *pathDescriptionParser) lineTo(x, y float64) {
	pdp.x, pdp.y = x, y
	pdp.segment().addPoint(pdp.world(x, y))
	pdp.emit(&DrawingInstruction{Kind: LineInstruction, M: pdp.worldTuple(x, y)})
}

// parseMoveTo starts a new subpath. Extra coordinate pairs are implicit
// line-tos.
func (pdp *pathDescriptionParser) parseMoveTo(rel bool) error {
	tuples, err := pdp.tuples()
	if err != nil {
		return errors.Wrap(err, "moveto")
	}
	if len(tuples) == 0 {
		return errors.New("moveto: expected tuple")
	}

	x, y := tuples[0][0], tuples[0][1]
	if rel {
		x, y = pdp.x+x, pdp.y+y
	}
	pdp.flushSegment()
	pdp.x, pdp.y = x, y
	pdp.startX, pdp.startY = x, y
	pdp.segment()
	pdp.emit(&DrawingInstruction{Kind: MoveInstruction, M: pdp.worldTuple(x, y)})

	for _, t := range tuples[1:] {
		x, y = t[0], t[1]
		if rel {
			x, y = pdp.x+x, pdp.y+y
		}
		pdp.lineTo(x, y)
	}
	return nil
}

func (pdp *pathDescriptionParser) parseLineTo(rel bool) error {
	tuples, err := pdp.tuples()
	if err != nil {
		return errors.Wrap(err, "lineto")
	}
	for _, t := range tuples {
		x, y := t[0], t[1]
		if rel {
			x, y = pdp.x+x, pdp.y+y
		}
		pdp.lineTo(x, y)
	}
	return nil
}

func (pdp *pathDescriptionParser) parseAxisLineTo(rel, horizontal bool) error {
	nums, err := pdp.numbers()
	if err != nil {
		return errors.Wrap(err, "axis lineto")
	}
	for _, n := range nums {
		x, y := pdp.x, pdp.y
		switch {
		case horizontal && rel:
			x += n
		case horizontal:
			x = n
		case rel:
			y += n
		default:
			y = n
		}
		pdp.lineTo(x, y)
	}
	return nil
}

func (pdp *pathDescriptionParser) parseCurveTo(rel bool) error {
	tuples, err := pdp.tuples()
	if err != nil {
		return errors.Wrap(err, "curveto")
	}
	if len(tuples)%3 != 0 {
		return errors.Errorf("curveto: %d coordinate pairs is not a multiple of 3", len(tuples))
	}

	for j := 0; j < len(tuples); j += 3 {
		c1, c2, end := tuples[j], tuples[j+1], tuples[j+2]
		if rel {
			for _, t := range []*Tuple{&c1, &c2, &end} {
				t[0] += pdp.x
				t[1] += pdp.y
			}
		}

		var cb cubicBezier
		cb.controlpoints = [4][2]float64{{pdp.x, pdp.y}, c1, c2, end}
		pdp.curve(cb)

		pdp.emit(&DrawingInstruction{
			Kind: CurveInstruction,
			C1:   pdp.worldTuple(c1[0], c1[1]),
			C2:   pdp.worldTuple(c2[0], c2[1]),
			T:    pdp.worldTuple(end[0], end[1]),
		})
		pdp.x, pdp.y = end[0], end[1]
	}
	return nil
}

func (pdp *pathDescriptionParser) parseQuadTo(rel bool) error {
	tuples, err := pdp.tuples()
	if err != nil {
		return errors.Wrap(err, "quadto")
	}
	if len(tuples)%2 != 0 {
		return errors.Errorf("quadto: %d coordinate pairs is not a multiple of 2", len(tuples))
	}

	for j := 0; j < len(tuples); j += 2 {
		ctrl, end := tuples[j], tuples[j+1]
		if rel {
			ctrl[0], ctrl[1] = ctrl[0]+pdp.x, ctrl[1]+pdp.y
			end[0], end[1] = end[0]+pdp.x, end[1]+pdp.y
		}

		pdp.curve(quadToCubic([2]float64{pdp.x, pdp.y}, ctrl, end))

		pdp.emit(&DrawingInstruction{
			Kind: QuadInstruction,
			C1:   pdp.worldTuple(ctrl[0], ctrl[1]),
			T:    pdp.worldTuple(end[0], end[1]),
		})
		pdp.x, pdp.y = end[0], end[1]
	}
	return nil
}

// curve appends the flattened curve to the open segment.
func (pdp *pathDescriptionParser) curve(cb cubicBezier) {
	s := pdp.segment()
	for _, v := range cb.recursiveInterpolate(10, 0) {
		s.addPoint(pdp.world(v[0], v[1]))
	}
}

func (pdp *pathDescriptionParser) parseClose() {
	pdp.lex.ConsumeWhiteSpace()

	if pdp.currentsegment != nil {
		pdp.currentsegment.addPoint(pdp.currentsegment.Points[0])
		pdp.currentsegment.Closed = true
		pdp.flushSegment()
	}
	pdp.x, pdp.y = pdp.startX, pdp.startY

	pdp.emit(&DrawingInstruction{Kind: CloseInstruction})
}
