package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/mvvmgo/mvvmgen/internal/config"
	"github.com/mvvmgo/mvvmgen/internal/pipeline"
	"github.com/mvvmgo/mvvmgen/internal/semantic"
)

// Generate runs one generation pass and writes the generated files.
func (c *Controller) Generate(ctx context.Context) error {
	p := pipeline.New(log.Logger)
	results, err := c.runPass(ctx, p)
	if err != nil {
		return err
	}
	return c.report(results, !c.Flags.DryRun)
}

// runPass loads the configured packages and executes the pipeline.
func (c *Controller) runPass(ctx context.Context, p *pipeline.Pipeline) ([]*pipeline.Result, error) {
	cfg, err := config.Load(c.Flags.Dir)
	if err != nil {
		return nil, err
	}
	patterns := c.Flags.Patterns
	if len(patterns) == 0 {
		patterns = cfg.Patterns
	}

	passes, err := semantic.Load(ctx, cfg.Dir, patterns...)
	if err != nil {
		return nil, err
	}
	return p.RunAll(ctx, passes)
}

// report prints diagnostics, optionally writes files, and returns an error
// when any diagnostic is error severity.
func (c *Controller) report(results []*pipeline.Result, write bool) error {
	errors := 0
	for _, r := range results {
		for _, d := range r.Diagnostics {
			fmt.Fprintln(os.Stderr, d.String())
		}
		if r.HasErrors() {
			errors++
		}
		if !write {
			continue
		}
		written, err := pipeline.WriteFiles(r.Dir, r.Files)
		if err != nil {
			return err
		}
		log.Info().
			Str("package", r.Package).
			Int("files", len(r.Files)).
			Int("written", written).
			Msg("generated")
	}
	if errors > 0 {
		return fmt.Errorf("generation failed for %d package(s)", errors)
	}
	return nil
}
