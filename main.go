package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/mvvmgo/mvvmgen/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}
	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	dirFlag := &cli.StringFlag{
		Name:        "dir",
		Usage:       "project directory to analyze",
		Value:       ".",
		Destination: &ctrl.Flags.Dir,
	}
	patternsFlag := &cli.StringSliceFlag{
		Name:  "pattern",
		Usage: "package patterns to analyze (default ./...)",
	}

	app := &cli.Command{
		Name:    "mvvmgen",
		Usage:   "Generate observable properties and commands for marked view-model declarations.",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("MVVMGEN_LOG_LEVEL"),
				Value:       "info",
				Destination: &ctrl.Flags.LogLevel,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}
			log.Logger = log.Level(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "scaffold a new project with an example view model",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Init(ctx)
				},
			},
			{
				Name:  "generate",
				Usage: "run one generation pass and write generated files",
				Flags: []cli.Flag{
					dirFlag,
					patternsFlag,
					&cli.BoolFlag{
						Name:        "dry-run",
						Usage:       "report diagnostics without writing files",
						Destination: &ctrl.Flags.DryRun,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					ctrl.Flags.Patterns = c.StringSlice("pattern")
					return ctrl.Generate(ctx)
				},
			},
			{
				Name:  "watch",
				Usage: "generate, then regenerate on source changes",
				Flags: []cli.Flag{dirFlag, patternsFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					ctrl.Flags.Patterns = c.StringSlice("pattern")
					return ctrl.Watch(ctx)
				},
			},
			{
				Name:  "inspect",
				Usage: "dump extracted models and diagnostics as JSON",
				Flags: []cli.Flag{
					dirFlag,
					patternsFlag,
					&cli.StringFlag{
						Name:        "source",
						Usage:       "analyze a single Go file without module context",
						Destination: &ctrl.Flags.Source,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					ctrl.Flags.Patterns = c.StringSlice("pattern")
					return ctrl.Inspect(ctx)
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
