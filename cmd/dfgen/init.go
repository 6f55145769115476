package main

import (
	"github.com/spf13/cobra"

	"github.com/tinyrange/dockerfile/internal/recipe"
)

func (a *app) initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter recipe",
		Long: `Write a starter recipe to path (default ` + recipe.DefaultFilename + `).
The format follows the file extension: .yaml, .yml or .toml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := recipe.DefaultFilename
			if len(args) == 1 {
				path = args[0]
			}
			if err := recipe.WriteTemplate(path, a.cfg.GetBool("force")); err != nil {
				return err
			}
			a.log.Info("wrote recipe", "path", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "overwrite an existing recipe")
	return cmd
}
