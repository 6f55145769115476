package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tinyrange/dockerfile/internal/recipe"
)

var errInteractiveStdin = errors.New("refusing to read a recipe from an interactive terminal")

func (a *app) renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [recipe|-]",
		Short: "Render a recipe to Dockerfile text",
		Long: `Render a recipe to Dockerfile text.

The recipe defaults to ` + recipe.DefaultFilename + `. Use - to read it from
stdin, in which case --format is required.`,
		Example: `  dfgen render
  dfgen render build/app.toml -o Dockerfile
  cat recipe.yaml | dfgen render - --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := recipe.DefaultFilename
			if len(args) == 1 {
				path = args[0]
			}

			r, err := a.loadRecipe(cmd, path)
			if err != nil {
				return err
			}
			df, err := r.Dockerfile()
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			a.log.Debug("assembled dockerfile", "recipe", path, "instructions", df.Len())

			out := a.cfg.GetString("output")
			if out == "" || out == "-" {
				_, err := df.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(out, df.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write dockerfile: %w", err)
			}
			a.log.Info("wrote dockerfile", "path", out, "instructions", df.Len())
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "write the Dockerfile to `file` instead of stdout")
	cmd.Flags().String("format", "", "recipe format, yaml or toml (default from file extension)")
	return cmd
}

// loadRecipe reads the recipe at path, or from the command's stdin when path
// is "-". An explicit --format overrides the file extension.
func (a *app) loadRecipe(cmd *cobra.Command, path string) (*recipe.Recipe, error) {
	formatName := a.cfg.GetString("format")

	if path != "-" && formatName == "" {
		a.log.Debug("loading recipe", "path", path)
		return recipe.Load(path)
	}

	if path == "-" && formatName == "" {
		return nil, errors.New("--format is required when reading a recipe from stdin")
	}
	format, err := recipe.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	var data []byte
	if path == "-" {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, errInteractiveStdin
		}
		data, err = io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("read recipe from stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read recipe: %w", err)
		}
	}

	a.log.Debug("decoding recipe", "path", path, "format", format)
	return recipe.Decode(data, format)
}
