package svgicon

import (
	"strings"

	"github.com/pkg/errors"
	mt "github.com/rustyoz/Mtransform"
)

// ErrNotDatasetIcon is returned by VerifyDatasetIcon for markup that does
// not have the dataset icon's structure.
var ErrNotDatasetIcon = errors.New("not a dataset icon")

// ElementNames returns the tag of every element in document order. Group
// children follow their "g".
func (s *Svg) ElementNames() []string {
	var names []string
	var walk func([]Element)
	walk = func(elems []Element) {
		for _, e := range elems {
			names = append(names, e.Tag())
			if g, ok := e.(*Group); ok {
				walk(g.Elements)
			}
		}
	}
	walk(s.Elements)
	return names
}

// HasClass reports whether the root element's class list contains class.
func (s *Svg) HasClass(class string) bool {
	for _, c := range strings.Fields(s.Class) {
		if c == class {
			return true
		}
	}
	return false
}

// VerifyDatasetIcon checks that s has the dataset icon's structure: the
// fixed viewBox, the dataset-icon class, and for each of the three layers an
// ellipse followed by its lid curve, in the icon's coordinates.
func VerifyDatasetIcon(s *Svg) error {
	if got := strings.Join(strings.Fields(s.ViewBox), " "); got != DatasetViewBox {
		return errors.Wrapf(ErrNotDatasetIcon, "viewBox %q", s.ViewBox)
	}
	if !s.HasClass(DatasetClass) {
		return errors.Wrapf(ErrNotDatasetIcon, "class %q lacks %s", s.Class, DatasetClass)
	}
	if len(s.Elements) != 2*len(datasetLayers) {
		return errors.Wrapf(ErrNotDatasetIcon, "%d top-level elements, want %d", len(s.Elements), 2*len(datasetLayers))
	}

	for i, l := range datasetLayers {
		e, ok := s.Elements[2*i].(*Ellipse)
		if !ok {
			return errors.Wrapf(ErrNotDatasetIcon, "element %d is <%s>, want <ellipse>", 2*i, s.Elements[2*i].Tag())
		}
		if e.Cx != layerCx || e.Cy != l.cy || e.Rx != layerRx || e.Ry != layerRy {
			return errors.Wrapf(ErrNotDatasetIcon, "layer %d ellipse (%g,%g) r(%g,%g)", i, e.Cx, e.Cy, e.Rx, e.Ry)
		}

		p, ok := s.Elements[2*i+1].(*Path)
		if !ok {
			return errors.Wrapf(ErrNotDatasetIcon, "element %d is <%s>, want <path>", 2*i+1, s.Elements[2*i+1].Tag())
		}
		if err := verifyLid(p, l); err != nil {
			return errors.Wrapf(err, "layer %d", i)
		}
	}
	return nil
}

// verifyLid replays the path in its own user space and expects a single
// move followed by one quadratic curve across the layer.
func verifyLid(p *Path, l layer) error {
	var got []*DrawingInstruction
	lid := *p
	lid.placement = placement{world: mt.Identity(), scale: 1, placed: true}
	lid.drawInto(func(di *DrawingInstruction) { got = append(got, di) })

	want := []InstructionType{MoveInstruction, QuadInstruction, PaintInstruction}
	if len(got) != len(want) {
		return errors.Wrapf(ErrNotDatasetIcon, "lid %q has %d instructions, want %d", p.D, len(got), len(want))
	}
	for i, k := range want {
		if got[i].Kind != k {
			return errors.Wrapf(ErrNotDatasetIcon, "lid %q instruction %d is %s, want %s", p.D, i, got[i].Kind, k)
		}
	}

	move, quad := got[0], got[1]
	if *move.M != (Tuple{lidLeft, l.cy}) ||
		*quad.C1 != (Tuple{layerCx, l.cy + lidCtrlDrop}) ||
		*quad.T != (Tuple{lidRight, l.cy}) {
		return errors.Wrapf(ErrNotDatasetIcon, "lid %q does not span the layer at y=%g", p.D, l.cy)
	}
	return nil
}
