package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/roach88/willow/internal/cli"
)

func main() {
	root := cli.NewRootCommand()

	// Default to warnings; --verbose raises per-ball debug logging.
	level := slog.LevelWarn
	for _, arg := range os.Args[1:] {
		if arg == "--verbose" || arg == "-v" {
			level = slog.LevelDebug
		}
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
