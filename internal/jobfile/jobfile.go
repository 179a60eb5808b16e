// SPDX-License-Identifier: MIT
//
// Package jobfile decodes HCL job files describing batches of sphere graphs.
//
//	output_dir = "out/${env.USER}"
//	database   = "graphs.db"
//
//	graph "coarse" {
//	  nside = 4
//	}
//
//	graph "fine-ring" {
//	  nside      = 32
//	  nest       = false
//	  symmetrize = "maximum"
//	  html       = true
//	  spy        = true
//	}
//
// Expressions may read environment variables through env.NAME and use the
// lower, upper and format functions.
package jobfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/katalvlaran/lvsphere/internal/ctxlog"
	"github.com/katalvlaran/lvsphere/nngraph"
	"github.com/katalvlaran/lvsphere/sphere"
)

// ErrInvalidJob reports a job file that decodes but makes no sense.
var ErrInvalidJob = errors.New("jobfile: invalid job")

// Job is a decoded job file.
type Job struct {
	OutputDir string  `hcl:"output_dir,optional"`
	Database  string  `hcl:"database,optional"`
	Graphs    []Graph `hcl:"graph,block"`
}

// Graph is one graph block.
type Graph struct {
	Name       string `hcl:"name,label"`
	Nside      int    `hcl:"nside"`
	Nest       *bool  `hcl:"nest,optional"`
	Symmetrize string `hcl:"symmetrize,optional"`
	Center     bool   `hcl:"center,optional"`
	Rescale    bool   `hcl:"rescale,optional"`
	HTML       bool   `hcl:"html,optional"`
	Spy        bool   `hcl:"spy,optional"`
}

// Nested reports the ordering; NESTED unless nest = false.
func (g Graph) Nested() bool { return g.Nest == nil || *g.Nest }

// Options converts the block into sphere options.
func (g Graph) Options() ([]sphere.Option, error) {
	mode, err := nngraph.ParseSymmetrize(g.Symmetrize)
	if err != nil {
		return nil, fmt.Errorf("graph %q: %w", g.Name, err)
	}
	gopts := []nngraph.Option{nngraph.WithSymmetrize(mode)}
	if g.Center {
		gopts = append(gopts, nngraph.WithCenter())
	}
	if g.Rescale {
		gopts = append(gopts, nngraph.WithRescale())
	}

	return []sphere.Option{
		sphere.WithNside(g.Nside),
		sphere.WithNest(g.Nested()),
		sphere.WithGraphOptions(gopts...),
	}, nil
}

// evalContext exposes env.* and a few string functions to expressions.
func evalContext(env map[string]string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vars[k] = cty.StringVal(v)
	}
	envVal := cty.EmptyObjectVal
	if len(vars) > 0 {
		envVal = cty.ObjectVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envVal},
		Functions: map[string]function.Function{
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
			"format": stdlib.FormatFunc,
		},
	}
}

// Parse decodes src. filename is only used in diagnostics.
func Parse(filename string, src []byte, env map[string]string) (*Job, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("jobfile: parse %s: %w", filename, diags)
	}

	var job Job
	if diags := gohcl.DecodeBody(file.Body, evalContext(env), &job); diags.HasErrors() {
		return nil, fmt.Errorf("jobfile: decode %s: %w", filename, diags)
	}
	if err := job.validate(); err != nil {
		return nil, fmt.Errorf("jobfile: %s: %w", filename, err)
	}

	return &job, nil
}

// Load reads and decodes the job file at path with the process environment.
func Load(ctx context.Context, path string) (*Job, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jobfile: %w", err)
	}
	job, err := Parse(path, src, environ())
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("job file loaded", "path", path, "graphs", len(job.Graphs))

	return job, nil
}

func (j *Job) validate() error {
	if len(j.Graphs) == 0 {
		return fmt.Errorf("%w: no graph blocks", ErrInvalidJob)
	}
	seen := make(map[string]bool, len(j.Graphs))
	for _, g := range j.Graphs {
		if g.Name == "" {
			return fmt.Errorf("%w: graph with empty name", ErrInvalidJob)
		}
		if seen[g.Name] {
			return fmt.Errorf("%w: duplicate graph %q", ErrInvalidJob, g.Name)
		}
		seen[g.Name] = true
		if _, err := nngraph.ParseSymmetrize(g.Symmetrize); err != nil {
			return fmt.Errorf("%w: graph %q: %v", ErrInvalidJob, g.Name, err)
		}
	}

	return nil
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}

	return env
}
