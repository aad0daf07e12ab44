package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mvvmgo/mvvmgen/internal/pipeline"
	"github.com/mvvmgo/mvvmgen/internal/semantic"
)

// Inspect dumps the extracted models and diagnostics as JSON without
// writing any files. With --source a single file is analyzed without a
// surrounding module.
func (c *Controller) Inspect(ctx context.Context) error {
	p := pipeline.New(log.Logger)

	var results []*pipeline.Result
	var err error
	if c.Flags.Source != "" {
		results, err = c.inspectSource(ctx, p)
	} else {
		results, err = c.runPass(ctx, p)
	}
	if err != nil {
		return err
	}

	type packageReport struct {
		Package     string   `json:"package"`
		Commands    any      `json:"commands,omitempty"`
		Properties  any      `json:"properties,omitempty"`
		Diagnostics []string `json:"diagnostics,omitempty"`
		Outputs     []string `json:"outputs,omitempty"`
	}

	var report []packageReport
	for _, r := range results {
		pr := packageReport{Package: r.Package}
		if len(r.Commands) > 0 {
			pr.Commands = r.Commands
		}
		if len(r.Properties) > 0 {
			pr.Properties = r.Properties
		}
		for _, d := range r.Diagnostics {
			pr.Diagnostics = append(pr.Diagnostics, d.String())
		}
		for _, f := range r.Files {
			pr.Outputs = append(pr.Outputs, f.Name)
		}
		report = append(report, pr)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}

// inspectSource analyzes one file in isolation. The module go version is
// unknown, so the language gate assumes a current toolchain.
func (c *Controller) inspectSource(ctx context.Context, p *pipeline.Pipeline) ([]*pipeline.Result, error) {
	data, err := os.ReadFile(c.Flags.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}
	pass, err := semantic.CheckSource(filepath.Base(c.Flags.Source), string(data), "")
	if err != nil {
		return nil, err
	}
	result, err := p.Run(ctx, pass)
	if err != nil {
		return nil, err
	}
	return []*pipeline.Result{result}, nil
}
