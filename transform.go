package svgicon

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	mt "github.com/rustyoz/Mtransform"
)

// parseTransform understands translate() and scale(), the two transform
// functions icon markup tends to carry. Functions are applied left to right
// as in SVG.
func parseTransform(s string) (mt.Transform, error) {
	t := mt.Identity()

	for _, fn := range strings.Split(s, ")") {
		fn = strings.TrimLeft(fn, " \t\n,")
		if fn == "" {
			continue
		}
		name, rawArgs, ok := strings.Cut(fn, "(")
		if !ok {
			return mt.Identity(), errors.Errorf("malformed transform %q", s)
		}
		args, err := parseTransformArgs(rawArgs)
		if err != nil {
			return mt.Identity(), errors.Wrapf(err, "transform %q", s)
		}

		switch name = strings.TrimSpace(name); name {
		case "translate":
			if len(args) != 1 && len(args) != 2 {
				return mt.Identity(), errors.Errorf("translate takes 1 or 2 arguments, got %d", len(args))
			}
			tr := mt.Identity()
			tr[0][2] = args[0]
			if len(args) == 2 {
				tr[1][2] = args[1]
			}
			t = mt.MultiplyTransforms(t, tr)
		case "scale":
			if len(args) != 1 && len(args) != 2 {
				return mt.Identity(), errors.Errorf("scale takes 1 or 2 arguments, got %d", len(args))
			}
			sx, sy := args[0], args[0]
			if len(args) == 2 {
				sy = args[1]
			}
			sc := mt.Identity()
			sc.Scale(sx, sy)
			t = mt.MultiplyTransforms(t, sc)
		default:
			return mt.Identity(), errors.Errorf("unsupported transform %q", name)
		}
	}

	return t, nil
}

func parseTransformArgs(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	args := make([]float64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %q", f)
		}
		args = append(args, n)
	}
	return args, nil
}

// placeTransform resolves an element's own transform attribute against its
// parent. A bad attribute is logged and treated as identity.
func placeTransform(parent mt.Transform, local, id string) mt.Transform {
	if local == "" {
		return parent
	}
	t, err := parseTransform(local)
	if err != nil {
		logger.Warn().Err(err).Str("id", id).Msg("ignoring transform")
		return parent
	}
	return mt.MultiplyTransforms(parent, t)
}
