package svgicon

import (
	"strconv"

	"github.com/pkg/errors"
	gl "github.com/rustyoz/genericlexer"
)

// Tuple is an X,Y coordinate
type Tuple [2]float64

func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, errors.Errorf("expected number, got %q", i.Value)
	}
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing number %q", i.Value)
	}
	return n, nil
}

// parseTuple reads "x y" or "x,y" from the lexer.
func parseTuple(l *gl.Lexer) (Tuple, error) {
	var t Tuple

	l.ConsumeWhiteSpace()
	x, err := nextNumber(l)
	if err != nil {
		return t, errors.Wrap(err, "tuple x")
	}

	l.ConsumeWhiteSpace()
	l.ConsumeComma()
	l.ConsumeWhiteSpace()
	y, err := nextNumber(l)
	if err != nil {
		return t, errors.Wrap(err, "tuple y")
	}

	t[0], t[1] = x, y
	return t, nil
}

// nextNumber consumes a number, leaving anything else (such as the next
// command letter) in the lexer.
func nextNumber(l *gl.Lexer) (float64, error) {
	if i := l.PeekItem(); i.Type != gl.ItemNumber {
		return 0, errors.Errorf("expected number, got %q", i.Value)
	}
	return parseNumber(l.NextItem())
}
