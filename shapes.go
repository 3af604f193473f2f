package svgicon

import (
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// placement is the world transform and scale an element was decoded under.
type placement struct {
	world  mt.Transform
	scale  float64
	placed bool
}

func (pl *placement) place(parent mt.Transform, scale float64, local, id string) {
	pl.world = placeTransform(parent, local, id)
	pl.scale = scale
	pl.placed = true
}

// resolved returns the world transform and scale, falling back to identity
// for elements decoded on their own.
func (pl *placement) resolved() (mt.Transform, float64) {
	if !pl.placed {
		return mt.Identity(), 1
	}
	return pl.world, pl.scale
}

// radii maps the radius vectors (rx, 0) and (0, ry) through the linear part
// of the world transform and returns their lengths.
func (pl *placement) radii(rx, ry float64) *Tuple {
	t, _ := pl.resolved()
	ox, oy := t.Apply(0, 0)
	xx, xy := t.Apply(rx, 0)
	yx, yy := t.Apply(0, ry)
	return &Tuple{math.Hypot(xx-ox, xy-oy), math.Hypot(yx-ox, yy-oy)}
}

func (pl *placement) point(x, y float64) *Tuple {
	t, _ := pl.resolved()
	wx, wy := t.Apply(x, y)
	return &Tuple{wx, wy}
}

// Ellipse is an SVG ellipse element
type Ellipse struct {
	ID              string  `xml:"id,attr"`
	TransformString string  `xml:"transform,attr"`
	Style           string  `xml:"style,attr"`
	Cx              float64 `xml:"cx,attr"`
	Cy              float64 `xml:"cy,attr"`
	Rx              float64 `xml:"rx,attr"`
	Ry              float64 `xml:"ry,attr"`

	placement
}

// Tag returns "ellipse".
func (e *Ellipse) Tag() string { return "ellipse" }

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface
func (e *Ellipse) ParseDrawingInstructions() chan *DrawingInstruction {
	return streamInstructions(e)
}

func (e *Ellipse) drawInto(emit func(*DrawingInstruction)) {
	emit(&DrawingInstruction{
		Kind: EllipseInstruction,
		M:    e.point(e.Cx, e.Cy),
		R:    e.radii(e.Rx, e.Ry),
	})
}

// Circle is an SVG circle element
type Circle struct {
	ID              string  `xml:"id,attr"`
	TransformString string  `xml:"transform,attr"`
	Style           string  `xml:"style,attr"`
	Cx              float64 `xml:"cx,attr"`
	Cy              float64 `xml:"cy,attr"`
	Radius          float64 `xml:"r,attr"`

	placement
}

// Tag returns "circle".
func (c *Circle) Tag() string { return "circle" }

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface
func (c *Circle) ParseDrawingInstructions() chan *DrawingInstruction {
	return streamInstructions(c)
}

func (c *Circle) drawInto(emit func(*DrawingInstruction)) {
	emit(&DrawingInstruction{
		Kind: CircleInstruction,
		M:    c.point(c.Cx, c.Cy),
		R:    c.radii(c.Radius, c.Radius),
	})
}

// Rect is an SVG rect element. Rounded corners are drawn square.
type Rect struct {
	ID              string  `xml:"id,attr"`
	TransformString string  `xml:"transform,attr"`
	Style           string  `xml:"style,attr"`
	X               float64 `xml:"x,attr"`
	Y               float64 `xml:"y,attr"`
	Width           float64 `xml:"width,attr"`
	Height          float64 `xml:"height,attr"`

	placement
}

// Tag returns "rect".
func (r *Rect) Tag() string { return "rect" }

// ParseDrawingInstructions implements the DrawingInstructionParser
// interface
func (r *Rect) ParseDrawingInstructions() chan *DrawingInstruction {
	return streamInstructions(r)
}

func (r *Rect) drawInto(emit func(*DrawingInstruction)) {
	emit(&DrawingInstruction{Kind: MoveInstruction, M: r.point(r.X, r.Y)})
	emit(&DrawingInstruction{Kind: LineInstruction, M: r.point(r.X+r.Width, r.Y)})
	emit(&DrawingInstruction{Kind: LineInstruction, M: r.point(r.X+r.Width, r.Y+r.Height)})
	emit(&DrawingInstruction{Kind: LineInstruction, M: r.point(r.X, r.Y+r.Height)})
	emit(&DrawingInstruction{Kind: CloseInstruction})
}

// streamInstructions runs e on its own goroutine. The channel is closed once
// every instruction has been sent.
func streamInstructions(e Element) chan *DrawingInstruction {
	out := make(chan *DrawingInstruction, 100)
	go func() {
		defer close(out)
		e.drawInto(func(di *DrawingInstruction) { out <- di })
	}()
	return out
}
