package svgicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type PathTest struct {
	Description string
	Svg         string
	Kinds       []InstructionType
	XCoords     []float64
	YCoords     []float64
}

var tests = []PathTest{
	{
		"absolute lines",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 L100.000 0.000 100.000 100.000 L0.000 100.000 Z" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, LineInstruction, CloseInstruction, PaintInstruction},
		[]float64{0, 100, 100, 0, 0},
		[]float64{0, 0, 100, 100, 0},
	},
	{
		"relative lines",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 l100.000 0.000 100.000 100.000 l0.000 100.000 Z" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, LineInstruction, CloseInstruction, PaintInstruction},
		[]float64{0, 100, 200, 200, 0},
		[]float64{0, 0, 100, 200, 0},
	},
	{
		"relative h-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 h100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, PaintInstruction},
		[]float64{0, 100, 150, 0},
		[]float64{0, 0, 0, 0},
	},
	{
		"absolute h-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 H100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, PaintInstruction},
		[]float64{0, 100, 50, 0},
		[]float64{0, 0, 0, 0},
	},
	{
		"relative v-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 v100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, PaintInstruction},
		[]float64{0, 0, 0, 0},
		[]float64{0, 100, 150, 0},
	},
	{
		"absolute v-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 V100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]InstructionType{MoveInstruction, LineInstruction, LineInstruction, PaintInstruction},
		[]float64{0, 0, 0, 0},
		[]float64{0, 100, 50, 0},
	},
	{
		"absolute quad lid",
		`<svg viewBox="0 0 40 40"><path d="M2 8 Q20 12 38 8"/></svg>`,
		[]InstructionType{MoveInstruction, QuadInstruction, PaintInstruction},
		[]float64{2},
		[]float64{8},
	},
	{
		"cubic curve",
		`<svg viewBox="0 0 40 40"><path d="M0 0 C0 10 10 10 10 0"/></svg>`,
		[]InstructionType{MoveInstruction, CurveInstruction, PaintInstruction},
		[]float64{0},
		[]float64{0},
	},
}

func collect(t *testing.T, doc string) []*DrawingInstruction {
	t.Helper()
	svg, err := ParseSvg(doc, "test", 0)
	require.NoError(t, err)

	var strux []*DrawingInstruction
	for di := range svg.ParseDrawingInstructions() {
		strux = append(strux, di)
	}
	return strux
}

func TestParsePathList(t *testing.T) {
	for _, test := range tests {
		strux := collect(t, test.Svg)

		if len(strux) != len(test.Kinds) {
			t.Fatalf("expected %d instructions for test %s, but received %d", len(test.Kinds), test.Description, len(strux))
		}

		for i, kind := range test.Kinds {
			if strux[i].Kind != kind {
				t.Fatalf("expected instruction %d for test %s to be %s, but was %s", i, test.Description, kind, strux[i].Kind)
			}
		}

		for i, x := range test.XCoords {
			if strux[i].M == nil {
				continue
			}

			if strux[i].M[0] != x {
				t.Fatalf("expected X coordinate %d for test %s to be %f, but was %f", i, test.Description, x, strux[i].M[0])
			}
		}

		for i, y := range test.YCoords {
			if strux[i].M == nil {
				continue
			}

			if strux[i].M[1] != y {
				t.Fatalf("expected Y coordinate %d for test %s to be %f, but was %f", i, test.Description, y, strux[i].M[1])
			}
		}
	}
}

func TestQuadControlPoints(t *testing.T) {
	for _, d := range []string{"M2 8 Q20 12 38 8", "M2 8 q18 4 36 0"} {
		strux := collect(t, `<svg><path d="`+d+`"/></svg>`)
		require.Len(t, strux, 3, d)

		quad := strux[1]
		require.Equal(t, QuadInstruction, quad.Kind, d)
		assert.Equal(t, Tuple{20, 12}, *quad.C1, d)
		assert.Equal(t, Tuple{38, 8}, *quad.T, d)
		assert.Nil(t, quad.C2, d)
	}
}

func TestPaintInstruction(t *testing.T) {
	strux := collect(t, `<svg><g stroke="#f00" stroke-width="3" fill="none"><path d="M0 0 L1 1"/></g></svg>`)
	paint := strux[len(strux)-1]
	require.Equal(t, PaintInstruction, paint.Kind)
	assert.Equal(t, 3.0, *paint.StrokeWidth)
	assert.Equal(t, "#f00", *paint.Stroke)
	require.NotNil(t, paint.Fill)
	assert.Equal(t, "none", *paint.Fill)

	strux = collect(t, `<svg><path d="M0 0 L1 1" stroke="#000" style="stroke-width: 4; stroke: #0f0"/></svg>`)
	paint = strux[len(strux)-1]
	assert.Equal(t, 4.0, *paint.StrokeWidth)
	assert.Equal(t, "#0f0", *paint.Stroke)
	assert.Nil(t, paint.Fill)

	strux = collect(t, `<svg><path d="M0 0 L1 1"/></svg>`)
	assert.Equal(t, 1.0, *strux[len(strux)-1].StrokeWidth)

	strux = collect(t, `<svg><g stroke="red" stroke-width="3" fill="blue"><g id="inner"><path d="M0 0 L1 1"/></g></g></svg>`)
	paint = strux[len(strux)-1]
	assert.Equal(t, 3.0, *paint.StrokeWidth)
	assert.Equal(t, "red", *paint.Stroke)
	require.NotNil(t, paint.Fill)
	assert.Equal(t, "blue", *paint.Fill)

	strux = collect(t, `<svg><g stroke="red" stroke-width="3"><g stroke="green"><path d="M0 0 L1 1"/></g></g></svg>`)
	paint = strux[len(strux)-1]
	assert.Equal(t, 3.0, *paint.StrokeWidth)
	assert.Equal(t, "green", *paint.Stroke)
}

func TestPathLexerDoesNotLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := &Path{D: "M2 8 Q20 12 38 8"}
	var kinds []InstructionType
	for di := range p.ParseDrawingInstructions() {
		kinds = append(kinds, di.Kind)
	}
	assert.Equal(t, []InstructionType{MoveInstruction, QuadInstruction, PaintInstruction}, kinds)

	for range p.Parse() {
	}
}

func TestPathMalformedMoveKeepsNextCommand(t *testing.T) {
	strux := collect(t, `<svg><path d="M1 L5 5"/></svg>`)

	require.Len(t, strux, 2)
	assert.Equal(t, LineInstruction, strux[0].Kind)
	assert.Equal(t, Tuple{5, 5}, *strux[0].M)
	assert.Equal(t, PaintInstruction, strux[1].Kind)
}

func TestPathTransform(t *testing.T) {
	strux := collect(t, `<svg><path d="M1 2 L3 4" transform="translate(10 20)"/></svg>`)

	require.Len(t, strux, 3)
	assert.Equal(t, Tuple{11, 22}, *strux[0].M)
	assert.Equal(t, Tuple{13, 24}, *strux[1].M)

	segs := segments(t, "M1 2 L3 4")
	require.Len(t, segs, 1)
	assert.Equal(t, [][2]float64{{1, 2}, {3, 4}}, segs[0].Points)
}

func segments(t *testing.T, d string) []Segment {
	t.Helper()
	p := &Path{D: d}
	var segs []Segment
	for s := range p.Parse() {
		segs = append(segs, s)
	}
	return segs
}

func TestPathSegments_QuadLid(t *testing.T) {
	segs := segments(t, "M2 8 Q20 12 38 8")
	require.Len(t, segs, 1)

	s := segs[0]
	assert.False(t, s.Closed)
	assert.Equal(t, 1.0, s.Width)
	require.Greater(t, len(s.Points), 2)
	assert.Equal(t, [2]float64{2, 8}, s.Points[0])
	assert.Equal(t, [2]float64{38, 8}, s.Points[len(s.Points)-1])
	for _, p := range s.Points {
		assert.GreaterOrEqual(t, p[1], 8.0-1e-9)
		assert.LessOrEqual(t, p[1], 10.0+1e-9)
	}
}

func TestPathSegments_Closed(t *testing.T) {
	segs := segments(t, "M0 0 L10 0 10 10 Z M20 20 L30 30")
	require.Len(t, segs, 2)

	assert.True(t, segs[0].Closed)
	assert.Equal(t, [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 0}}, segs[0].Points)

	assert.False(t, segs[1].Closed)
	assert.Equal(t, [][2]float64{{20, 20}, {30, 30}}, segs[1].Points)
}

func TestPathUnsupportedCommandIsSkipped(t *testing.T) {
	strux := collect(t, `<svg><path d="M0 0 A5 5 0 0 1 10 0 L20 0"/></svg>`)

	var kinds []InstructionType
	for _, di := range strux {
		kinds = append(kinds, di.Kind)
	}
	assert.Equal(t, []InstructionType{MoveInstruction, LineInstruction, PaintInstruction}, kinds)
}
