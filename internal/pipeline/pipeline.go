// Package pipeline orchestrates one generation pass: discover marked
// declarations, gate on the target language version, extract models, reuse
// previously synthesized output for models that compare equal, and assemble
// the generated files. The caches are keyed by the model values themselves:
// unchanged source produces equal models and therefore cache hits, no matter
// how many times the type checker re-materializes its symbols.
package pipeline

import (
	"context"
	"go/token"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mvvmgo/mvvmgen/internal/diagnostics"
	"github.com/mvvmgo/mvvmgen/internal/extract"
	"github.com/mvvmgo/mvvmgen/internal/model"
	"github.com/mvvmgo/mvvmgen/internal/semantic"
	"github.com/mvvmgo/mvvmgen/internal/synth"
)

// Pipeline runs generation passes. It is safe for concurrent use; the value
// caches survive across passes within one process so watch mode only
// re-synthesizes candidates whose models actually changed.
type Pipeline struct {
	log zerolog.Logger

	mu            sync.Mutex
	commandCache  map[model.CommandInfo]*synth.Unit
	propertyCache map[model.PropertyInfo]*synth.Unit
}

// New creates a pipeline with empty caches.
func New(log zerolog.Logger) *Pipeline {
	return &Pipeline{
		log:           log,
		commandCache:  make(map[model.CommandInfo]*synth.Unit),
		propertyCache: make(map[model.PropertyInfo]*synth.Unit),
	}
}

// Result is the outcome of one pass over one package.
type Result struct {
	Package     string
	Dir         string
	Diagnostics []diagnostics.Diagnostic
	Units       []*synth.Unit
	Files       []File

	// Extracted models, for inspection tooling.
	Commands   []model.CommandInfo
	Properties []model.PropertyInfo

	CacheHits   int
	CacheMisses int
}

// HasErrors reports whether any diagnostic in the result is an error.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Descriptor.Severity >= diagnostics.SeverityError {
			return true
		}
	}
	return false
}

// Run executes one pass over a package. Candidate failures are isolated:
// each candidate gets its own diagnostics accumulator and a failure never
// aborts its siblings. Cancellation is honored at candidate boundaries only.
func (p *Pipeline) Run(ctx context.Context, pass *semantic.Pass) (*Result, error) {
	result := &Result{Package: pass.Pkg.Path(), Dir: pass.Dir}
	passBag := diagnostics.NewBag()

	if !semantic.SupportsGeneration(pass.GoVersion) {
		// Pass-level gate: one diagnostic for the whole package, all
		// candidates dropped.
		passBag.Add(diagnostics.New(diagnostics.UnsupportedGoVersion, token.Position{}, pass.Pkg.Path(),
			pass.Pkg.Path(), pass.GoVersion, semantic.MinGoVersion))
		result.Diagnostics = passBag.Items()
		return result, nil
	}

	for _, td := range pass.Types {
		for _, method := range td.Methods {
			marker, ok := semantic.FindMarker(method.Markers, extract.MarkerCommand)
			if !ok {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			bag := diagnostics.NewBag()
			info, extracted := extract.Command(pass, td, method, marker, bag)
			passBag.Merge(bag)
			if !extracted {
				continue
			}
			result.Commands = append(result.Commands, info)
			result.Units = append(result.Units, p.commandUnit(info, result))
		}

		for _, field := range td.Fields {
			if field.Embedded {
				continue
			}
			marker, ok := semantic.FindMarker(field.Markers, extract.MarkerObservable)
			if !ok {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			bag := diagnostics.NewBag()
			info, extracted := extract.Observable(pass, td, field, marker, bag)
			passBag.Merge(bag)
			if !extracted {
				continue
			}
			result.Properties = append(result.Properties, info)
			result.Units = append(result.Units, p.propertyUnit(info, result))
		}
	}

	result.Files = Assemble(result.Units, passBag)
	result.Diagnostics = passBag.Items()

	p.log.Debug().
		Str("package", result.Package).
		Int("units", len(result.Units)).
		Int("cacheHits", result.CacheHits).
		Int("cacheMisses", result.CacheMisses).
		Int("diagnostics", len(result.Diagnostics)).
		Msg("pass complete")
	return result, nil
}

// RunAll executes one pass per package concurrently. Candidate purity makes
// this safe; the shared caches are the only cross-package state.
func (p *Pipeline) RunAll(ctx context.Context, passes []*semantic.Pass) ([]*Result, error) {
	results := make([]*Result, len(passes))
	g, gctx := errgroup.WithContext(ctx)
	for i, pass := range passes {
		g.Go(func() error {
			r, err := p.Run(gctx, pass)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *Pipeline) commandUnit(info model.CommandInfo, result *Result) *synth.Unit {
	p.mu.Lock()
	defer p.mu.Unlock()
	if u, ok := p.commandCache[info]; ok {
		result.CacheHits++
		return u
	}
	result.CacheMisses++
	u := synth.Command(info)
	p.commandCache[info] = u
	return u
}

func (p *Pipeline) propertyUnit(info model.PropertyInfo, result *Result) *synth.Unit {
	p.mu.Lock()
	defer p.mu.Unlock()
	if u, ok := p.propertyCache[info]; ok {
		result.CacheHits++
		return u
	}
	result.CacheMisses++
	u := synth.Observable(info)
	p.propertyCache[info] = u
	return u
}
