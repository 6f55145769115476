// Command dfgen renders Dockerfiles from declarative YAML or TOML recipes.
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// Version is set via -ldflags at release time.
var Version = "dev"

func main() {
	if err := run(context.Background()); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return fang.Execute(ctx, newApp().rootCmd(),
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	)
}
