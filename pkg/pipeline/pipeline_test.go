package pipeline

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mapforge/mapforge/pkg/lang"
	"github.com/mapforge/mapforge/pkg/render"
)

const sample = `grid 10, 6
rect at 1,1 width 4 height 3
line along bottom from 5,2 length 3
entity circle within 2,2`

func testRunner() *Runner {
	return NewRunner(log.New(io.Discard))
}

func TestExecuteCompilesMap(t *testing.T) {
	result, err := testRunner().Execute(context.Background(), Options{Source: sample})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !strings.HasPrefix(result.SVG, "<svg") {
		t.Errorf("output is not an SVG document: %q", result.SVG)
	}
	if !strings.Contains(result.SVG, `width="100" height="60"`) {
		t.Error("document not sized from grid dimensions")
	}
	if result.Stats.NodeCount != 11*7 {
		t.Errorf("NodeCount = %d, want %d", result.Stats.NodeCount, 11*7)
	}
	if result.Stats.EdgeCount == 0 {
		t.Error("EdgeCount = 0, want walls")
	}
	if result.Stats.EntityCount != 1 {
		t.Errorf("EntityCount = %d, want 1", result.Stats.EntityCount)
	}
}

func TestExecuteSurfacesCompileErrors(t *testing.T) {
	_, err := testRunner().Execute(context.Background(), Options{Source: "grid 2, 2\nrect at 5,5 width 1 height 1"})
	if err == nil {
		t.Fatal("expected error for out-of-bounds rect")
	}

	var cerr *lang.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("error %v does not wrap *lang.Error", err)
	}
	if got := cerr.Error(); got != "[2,1] ERROR: Out-of-bounds point" {
		t.Errorf("diagnostic = %q", got)
	}
}

func TestExecuteSurfacesParseErrors(t *testing.T) {
	_, err := testRunner().Execute(context.Background(), Options{Source: "grid 2"})
	var cerr *lang.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("error %v does not wrap *lang.Error", err)
	}
	if cerr.Kind != lang.UnexpectedEOF {
		t.Errorf("Kind = %v, want UnexpectedEOF", cerr.Kind)
	}
}

func TestExecuteHonorsCellSizeAndTheme(t *testing.T) {
	theme := render.Theme{GridFill: "white", Stroke: "darkred"}
	result, err := testRunner().Execute(context.Background(), Options{
		Source:   "grid 2, 2\nrect at 0,0 width 1 height 1",
		CellSize: 25,
		Theme:    &theme,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(result.SVG, `width="50" height="50"`) {
		t.Error("cell size not applied")
	}
	if !strings.Contains(result.SVG, `stroke="darkred"`) {
		t.Error("theme not applied")
	}
}

func TestExecuteStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testRunner().Execute(ctx, Options{Source: sample})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
