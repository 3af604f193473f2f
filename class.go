package svgicon

import (
	"html/template"

	"github.com/pkg/errors"
)

// ErrInvalidClass is returned when a class contains characters outside the
// set that can be placed into an attribute without escaping.
var ErrInvalidClass = errors.New("invalid icon class")

// ValidateClass reports whether class is made of ASCII letters, digits,
// '-' and '_' tokens separated by single spaces. The empty class is valid.
func ValidateClass(class string) error {
	prevSpace := false
	for i := 0; i < len(class); i++ {
		c := class[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			prevSpace = false
		case c == ' ':
			if i == 0 || prevSpace {
				return errors.Wrapf(ErrInvalidClass, "%q: unexpected space at offset %d", class, i)
			}
			prevSpace = true
		default:
			return errors.Wrapf(ErrInvalidClass, "%q: character %q at offset %d", class, c, i)
		}
	}
	if prevSpace {
		return errors.Wrapf(ErrInvalidClass, "%q: trailing space", class)
	}
	return nil
}

// SafeDatasetIcon is DatasetIcon for classes that pass ValidateClass.
func SafeDatasetIcon(class string) (string, error) {
	if err := ValidateClass(class); err != nil {
		return "", err
	}
	return DatasetIcon(class), nil
}

// DatasetIconHTML renders the dataset icon with class escaped for use inside
// an HTML attribute, ready to drop into an html/template.
func DatasetIconHTML(class string) template.HTML {
	return template.HTML(DatasetIcon(template.HTMLEscapeString(class)))
}
