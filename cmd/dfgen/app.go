package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by every subcommand.
type app struct {
	cfg *viper.Viper
	log *slog.Logger
}

func newApp() *app {
	cfg := viper.New()
	cfg.SetEnvPrefix("DFGEN")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	return &app{
		cfg: cfg,
		log: slog.New(slog.DiscardHandler),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dfgen",
		Short: "Render Dockerfiles from declarative recipes",
		Long: `dfgen turns a YAML or TOML recipe into Dockerfile text.

A recipe names the base image, optional parser directives and leading ARGs,
and an ordered list of instructions. Payloads are copied verbatim.

Flags may also be set through DFGEN_* environment variables,
e.g. DFGEN_OUTPUT=Dockerfile.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			a.log = newLogger(cmd.ErrOrStderr(), a.cfg.GetBool("verbose"))
			return nil
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(a.renderCmd())
	root.AddCommand(a.initCmd())
	root.AddCommand(a.keywordsCmd())
	return root
}

// newLogger returns a slog logger backed by a charmbracelet/log handler.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return slog.New(log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "dfgen",
	}))
}
