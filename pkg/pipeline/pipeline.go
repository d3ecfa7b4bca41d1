// Package pipeline provides the core compilation pipeline for Mapforge.
//
// This package implements the complete parse → generate → render pipeline
// that is shared by the CLI and the HTTP server. Centralizing it keeps
// behavior identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Lex and parse the map description into an AST
//  2. Generate: Apply the AST to a grid map, connecting walls and placing entities
//  3. Render: Emit the map as an SVG document
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Source: source})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.SVG
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mapforge/mapforge/pkg/render"
)

// DefaultCellSize is the default pixel edge length of one grid cell.
const DefaultCellSize = render.DefaultCellSize

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Source is the map description to compile.
	Source string `json:"source"`

	// CellSize is the pixel dimension of one grid cell. Zero means
	// DefaultCellSize.
	CellSize int `json:"cell_size,omitempty"`

	// Theme overrides the output colours. Nil means the default theme.
	Theme *render.Theme `json:"theme,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// SVG is the rendered document.
	SVG string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	EntityCount  int
	ParseTime    time.Duration
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// SetDefaults applies defaults for unset fields. It is idempotent.
func (o *Options) SetDefaults() {
	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
