package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mapforge/mapforge/pkg/generate"
	"github.com/mapforge/mapforge/pkg/graph"
	"github.com/mapforge/mapforge/pkg/grid"
	"github.com/mapforge/mapforge/pkg/lang"
	"github.com/mapforge/mapforge/pkg/render"
)

// Runner executes the compilation pipeline. It is stateless except for
// the logger, so multiple goroutines can safely share one Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → generate → render pipeline.
//
// Compilation failures surface as *lang.Error wrapped with the failing
// stage; callers can errors.As them back out for diagnostics.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts.SetDefaults()
	logger := r.logger(opts)

	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	ast, perr := lang.Parse(opts.Source)
	if perr != nil {
		return nil, fmt.Errorf("parse: %w", perr)
	}
	result.Stats.ParseTime = time.Since(parseStart)

	logger.Info("parsed description",
		"statements", len(ast.Nodes),
		"duration", result.Stats.ParseTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Generate
	generateStart := time.Now()
	m, gerr := generate.Map(ast)
	if gerr != nil {
		return nil, fmt.Errorf("generate: %w", gerr)
	}
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.NodeCount = m.Graph().Len()
	result.Stats.EdgeCount = edgeCount(m.Graph())
	result.Stats.EntityCount = len(m.Entities())

	logger.Info("generated map",
		"width", m.Width(),
		"height", m.Height(),
		"edges", result.Stats.EdgeCount,
		"entities", result.Stats.EntityCount,
		"duration", result.Stats.GenerateTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	result.SVG = renderMap(m, opts)
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Info("rendered svg",
		"bytes", len(result.SVG),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// renderMap applies the option set to the renderer.
func renderMap(m *grid.Map, opts Options) string {
	renderOpts := []render.Option{render.WithCellSize(opts.CellSize)}
	if opts.Theme != nil {
		renderOpts = append(renderOpts, render.WithTheme(*opts.Theme))
	}
	return render.Map(m, renderOpts...)
}

// edgeCount sums degrees over all nodes; each edge is stored twice.
func edgeCount[T any](g *graph.Graph[T]) int {
	total := 0
	for i := 0; i < g.Len(); i++ {
		total += g.Degree(graph.Handle(i))
	}
	return total / 2
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
