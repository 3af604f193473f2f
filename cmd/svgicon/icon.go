package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vasalvit/svgicon"
)

const svgNamespace = `xmlns="http://www.w3.org/2000/svg"`

func iconCommand(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icon",
		Short: "Print the dataset icon",
		Long: "Print the dataset icon SVG with the given class added to its root element.\n" +
			"By default the class is inserted as is; use --strict or --escape for untrusted input.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			markup, err := renderIcon(s)
			if err != nil {
				return s.fail(err, "cannot render icon")
			}

			out := s.v.GetString("output")
			if out == "" || out == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), markup)
				return err
			}
			if err := os.WriteFile(out, []byte(markup+"\n"), 0o644); err != nil {
				return s.fail(err, "cannot write icon")
			}
			s.logger.Info().Str("file", out).Msg("icon written")
			return nil
		},
	}

	cmd.Flags().String("class", "", "CSS class added after dataset-icon")
	cmd.Flags().Bool("escape", false, "HTML-escape the class")
	cmd.Flags().Bool("strict", false, "Reject classes that are not plain class tokens")
	cmd.Flags().Bool("standalone", false, "Add the SVG namespace so the output is a valid .svg file")
	cmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	cmd.MarkFlagsMutuallyExclusive("strict", "escape")

	return cmd
}

func renderIcon(s *settings) (string, error) {
	class := s.v.GetString("class")
	s.logger.Debug().Str("class", class).Msg("rendering dataset icon")

	var markup string
	switch {
	case s.v.GetBool("strict"):
		var err error
		if markup, err = svgicon.SafeDatasetIcon(class); err != nil {
			return "", err
		}
	case s.v.GetBool("escape"):
		markup = string(svgicon.DatasetIconHTML(class))
	default:
		markup = svgicon.DatasetIcon(class)
	}

	if s.v.GetBool("standalone") {
		markup = strings.Replace(markup, "<svg ", "<svg "+svgNamespace+" ", 1)
	}
	return markup, nil
}
