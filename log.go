package svgicon

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger routes the reader's diagnostics to l. Nothing is logged by
// default.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "svgicon").Logger()
}
