package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vasalvit/svgicon"
)

func inspectCommand(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Describe an SVG file and optionally check it is the dataset icon",
		Long:  "Parse SVG from file, or from stdin when file is omitted or \"-\", and print its class, viewBox and elements.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}

			svg, err := parseInput(cmd.InOrStdin(), name)
			if err != nil {
				return s.fail(err, "cannot parse svg")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "class:    %s\n", svg.Class)
			fmt.Fprintf(out, "viewBox:  %s\n", svg.ViewBox)
			fmt.Fprintf(out, "elements: %s\n", strings.Join(svg.ElementNames(), " "))

			if s.v.GetBool("verify") {
				if err := svgicon.VerifyDatasetIcon(svg); err != nil {
					return s.fail(err, "verification failed")
				}
				fmt.Fprintln(out, "dataset icon: ok")
			}
			return nil
		},
	}

	cmd.Flags().Bool("verify", false, "Fail unless the input is the dataset icon")

	return cmd
}

func parseInput(stdin io.Reader, name string) (*svgicon.Svg, error) {
	if name == "-" {
		return svgicon.ParseSvgFromReader(stdin, "stdin", 0)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return svgicon.ParseSvgFromReader(f, name, 0)
}
