package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tinyrange/dockerfile"
)

var keywordSummaries = map[dockerfile.Kind]string{
	dockerfile.KindAdd:         "copy files, directories or remote URLs into the image",
	dockerfile.KindArg:         "declare a build-time variable",
	dockerfile.KindCmd:         "default command for the container",
	dockerfile.KindCopy:        "copy files or directories into the image",
	dockerfile.KindDirective:   "parser directive, only valid at the top (use key \"directive\")",
	dockerfile.KindEntrypoint:  "executable the container runs",
	dockerfile.KindEnv:         "set environment variables",
	dockerfile.KindExpose:      "document listening ports",
	dockerfile.KindFrom:        "start a build stage from a base image",
	dockerfile.KindHealthcheck: "container health test",
	dockerfile.KindLabel:       "add image metadata",
	dockerfile.KindOnbuild:     "trigger instruction for downstream builds",
	dockerfile.KindRun:         "run a command in a new layer",
	dockerfile.KindShell:       "override the default shell",
	dockerfile.KindStopSignal:  "signal sent to stop the container",
	dockerfile.KindUser:        "user and group for later instructions",
	dockerfile.KindVolume:      "declare mount points",
	dockerfile.KindWorkdir:     "working directory for later instructions",
}

var keywordStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))

func (a *app) keywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the instruction keywords a recipe may use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			return writeKeywords(out, isTerminal(out))
		},
	}
}

func writeKeywords(w io.Writer, styled bool) error {
	kinds := dockerfile.Kinds()

	cells := make([]string, len(kinds))
	width := 0
	for i, k := range kinds {
		cells[i] = k.String()
		if styled {
			cells[i] = keywordStyle.Render(cells[i])
		}
		width = max(width, ansi.StringWidth(cells[i]))
	}

	for i, k := range kinds {
		pad := strings.Repeat(" ", width-ansi.StringWidth(cells[i]))
		if _, err := fmt.Fprintf(w, "%s%s  %s\n", cells[i], pad, keywordSummaries[k]); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
