package commands

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mvvmgo/mvvmgen/internal/config"
	"github.com/mvvmgo/mvvmgen/internal/pipeline"
	"github.com/mvvmgo/mvvmgen/internal/watch"
)

// Watch generates once, then regenerates whenever watched sources change.
// The pipeline instance is shared across passes so unchanged candidates hit
// the value cache.
func (c *Controller) Watch(ctx context.Context) error {
	cfg, err := config.Load(c.Flags.Dir)
	if err != nil {
		return err
	}

	p := pipeline.New(log.Logger)
	regenerate := func() {
		results, err := c.runPass(ctx, p)
		if err != nil {
			log.Error().Err(err).Msg("pass failed")
			return
		}
		if err := c.report(results, true); err != nil {
			log.Warn().Err(err).Msg("generation finished with errors")
		}
	}
	regenerate()

	fw, err := watch.NewFileWatcher(cfg.Watch, cfg.Exclude, 200*time.Millisecond, func(paths []string) {
		log.Info().Strs("changed", paths).Msg("source changed, regenerating")
		regenerate()
	}, log.Logger)
	if err != nil {
		return err
	}
	if err := fw.AddDirectory(cfg.Dir); err != nil {
		return err
	}

	log.Info().Str("dir", cfg.Dir).Msg("watching for changes")
	return fw.Start(ctx)
}
