package main

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vasalvit/svgicon"
)

const envPrefix = "SVGICON"

// settings holds the resolved flag and environment values for one run.
type settings struct {
	v      *viper.Viper
	logger zerolog.Logger
}

func newSettings() *settings {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &settings{v: v, logger: zerolog.Nop()}
}

// bind makes every flag of cmd readable through viper, so SVGICON_<FLAG>
// can stand in for it.
func (s *settings) bind(cmd *cobra.Command) error {
	if err := s.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return s.v.BindPFlags(cmd.InheritedFlags())
}

func (s *settings) setupLogging(w io.Writer) {
	level := zerolog.InfoLevel
	if s.v.GetBool("debug") {
		level = zerolog.DebugLevel
	}
	s.logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
	svgicon.SetLogger(s.logger)
}

func rootCommand() *cobra.Command {
	s := newSettings()

	rootCmd := &cobra.Command{
		Use:          "svgicon",
		Short:        "Generate and check dataset icon SVG markup",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := s.bind(cmd); err != nil {
			return err
		}
		s.setupLogging(cmd.ErrOrStderr())
		return nil
	}

	rootCmd.AddCommand(
		iconCommand(s),
		inspectCommand(s),
	)

	return rootCmd
}

// fail logs err with context and hands it back to cobra, which prints it
// and exits non-zero.
func (s *settings) fail(err error, msg string) error {
	s.logger.Error().Err(err).Msg(msg)
	return err
}
