package svgicon

// InstructionType tells our path drawing library which function it has
// to call
type InstructionType int

// These are instruction types that we use with our path drawing library
const (
	PathInstruction InstructionType = iota
	MoveInstruction
	CircleInstruction
	CurveInstruction
	LineInstruction
	HLineInstruction
	CloseInstruction
	QuadInstruction
	EllipseInstruction
	PaintInstruction
)

var instructionNames = [...]string{
	PathInstruction:    "path",
	MoveInstruction:    "move",
	CircleInstruction:  "circle",
	CurveInstruction:   "curve",
	LineInstruction:    "line",
	HLineInstruction:   "hline",
	CloseInstruction:   "close",
	QuadInstruction:    "quad",
	EllipseInstruction: "ellipse",
	PaintInstruction:   "paint",
}

func (k InstructionType) String() string {
	if k < 0 || int(k) >= len(instructionNames) {
		return "unknown"
	}
	return instructionNames[k]
}

// DrawingInstruction contains enough information that a simple drawing
// library can draw the shapes contained in an SVG file.
//
// M is the target of moves and lines and the center of circles and
// ellipses. R holds the radii of circles and ellipses. Curves use C1 (and C2
// for cubics) as control points and T as the end point.
type DrawingInstruction struct {
	Kind InstructionType
	M    *Tuple
	C1   *Tuple
	C2   *Tuple
	T    *Tuple
	R    *Tuple

	StrokeWidth *float64
	Stroke      *string
	Fill        *string
}
