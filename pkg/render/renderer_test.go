package render

import (
	"strings"
	"testing"

	"github.com/mapforge/mapforge/pkg/generate"
	"github.com/mapforge/mapforge/pkg/geometry"
	"github.com/mapforge/mapforge/pkg/grid"
	"github.com/mapforge/mapforge/pkg/lang"
)

func TestEmptyGridRendersOnlyCells(t *testing.T) {
	svg := Map(compile(t, "grid 4, 3"))

	if got := strings.Count(svg, "<rect"); got != 12 {
		t.Errorf("cell rect count = %d, want 12", got)
	}
	if strings.Contains(svg, "<polygon") || strings.Contains(svg, "<path") || strings.Contains(svg, "<circle") {
		t.Error("empty grid should have no polygons, paths or circles")
	}
	if !strings.Contains(svg, `width="40" height="30"`) {
		t.Error("root should be sized 40x30 at 10 pixels per cell")
	}
	if !strings.Contains(svg, `xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("root should declare the SVG namespace")
	}
}

func TestSingleCellRoomRendersOnePolygon(t *testing.T) {
	svg := Map(compile(t, "grid 1, 1\nrect at 0,0 width 1 height 1"))

	if got := strings.Count(svg, "<polygon"); got != 1 {
		t.Fatalf("polygon count = %d, want 1", got)
	}
	start := strings.Index(svg, `<polygon points="`)
	end := strings.Index(svg[start:], `"`+` stroke`)
	points := strings.Fields(svg[start+len(`<polygon points="`) : start+end])
	if len(points) != 4 {
		t.Errorf("polygon has %d points, want 4", len(points))
	}
}

func TestDisjointRoomsRenderTwoPolygons(t *testing.T) {
	svg := Map(compile(t, "grid 10, 10\nrect at 0,0 width 2 height 2\nrect at 5,5 width 3 height 2"))
	if got := strings.Count(svg, "<polygon"); got != 2 {
		t.Errorf("polygon count = %d, want 2", got)
	}
}

func TestCorridorRendersAnchoredPath(t *testing.T) {
	// A dangling chain (1,1)-(1,2)-(1,3): the anchor is the point farthest
	// from the origin, so the path runs top-down from (1,3).
	svg := Map(compile(t, "grid 3, 3\nline along left from 1,1 length 2"))

	if got := strings.Count(svg, "<path"); got != 1 {
		t.Fatalf("path count = %d, want 1", got)
	}
	if !strings.Contains(svg, `d="M10 30 L10 20 L10 10"`) {
		t.Errorf("unexpected path ordering in %q", svg)
	}
}

func TestRoomWithStubRendersPolygonAndPath(t *testing.T) {
	// A room plus a two-segment tail sharing one corner: the tail points
	// outside the cycle become an open path.
	svg := Map(compile(t, "grid 5, 5\nrect at 0,0 width 2 height 2\nline along left from 2,2 length 2"))

	if got := strings.Count(svg, "<polygon"); got != 1 {
		t.Errorf("polygon count = %d, want 1", got)
	}
	if got := strings.Count(svg, "<path"); got != 1 {
		t.Errorf("path count = %d, want 1", got)
	}
}

func TestCircleWithinCell(t *testing.T) {
	svg := Map(compile(t, "grid 2, 2\nentity circle within 0,0"))
	if !strings.Contains(svg, `<circle cx="5" cy="5" r="4"`) {
		t.Errorf("missing centered circle in %q", svg)
	}
}

func TestCircleAtPoint(t *testing.T) {
	svg := Map(compile(t, "grid 4, 4\nentity circle at 2,2 radius 1"))
	if !strings.Contains(svg, `<circle cx="20" cy="20" r="10"`) {
		t.Errorf("missing anchored circle in %q", svg)
	}
}

func TestSquareGlyph(t *testing.T) {
	svg := Map(compile(t, "grid 2, 2\nentity square within 1,1"))
	// 60% of a 10px cell is 6px, inset 2px on each side.
	if !strings.Contains(svg, `<rect x="12" y="12" width="6" height="6" fill="black"/>`) {
		t.Errorf("missing square glyph in %q", svg)
	}
}

func TestStairGlyph(t *testing.T) {
	svg := Map(compile(t, "grid 2, 2\nentity stair within 0,0"))
	if got := strings.Count(svg, "<polygon"); got != 1 {
		t.Fatalf("polygon count = %d, want 1", got)
	}
	if !strings.Contains(svg, `<polygon points="2,6 2,8 8,8 8,2 6,2 6,4 4,4 4,6"`) {
		t.Errorf("unexpected stair geometry in %q", svg)
	}
}

func TestLadderGlyphHasTwoRailsAndTwoRungs(t *testing.T) {
	svg := Map(compile(t, "grid 2, 2\nentity ladder within 0,0"))
	if got := strings.Count(svg, "<path"); got != 4 {
		t.Fatalf("path count = %d, want 4", got)
	}
	// Rails span 20%..80% of the cell at 20% and 80% across.
	if !strings.Contains(svg, `d="M2 2 L2 8"`) || !strings.Contains(svg, `d="M8 2 L8 8"`) {
		t.Errorf("missing ladder rails in %q", svg)
	}
	if !strings.Contains(svg, `d="M2 4 L8 4"`) || !strings.Contains(svg, `d="M2 6 L8 6"`) {
		t.Errorf("missing ladder rungs in %q", svg)
	}
}

func TestXGlyphHasTwoDiagonals(t *testing.T) {
	svg := Map(compile(t, "grid 2, 2\nentity x within 1,0"))
	if got := strings.Count(svg, "<path"); got != 2 {
		t.Fatalf("path count = %d, want 2", got)
	}
	if !strings.Contains(svg, `d="M12 2 L18 8"`) || !strings.Contains(svg, `d="M18 2 L12 8"`) {
		t.Errorf("missing diagonals in %q", svg)
	}
}

func TestCustomCellSizeScalesDocument(t *testing.T) {
	svg := Map(compile(t, "grid 2, 3"), WithCellSize(20))
	if !strings.Contains(svg, `width="40" height="60"`) {
		t.Errorf("root not scaled by cell size: %q", svg)
	}
}

func TestCustomTheme(t *testing.T) {
	theme := Theme{GridFill: "rgb(230, 230, 230)", Stroke: "midnightblue"}
	svg := Map(compile(t, "grid 1, 1\nrect at 0,0 width 1 height 1"), WithTheme(theme))
	if !strings.Contains(svg, `fill="rgb(230, 230, 230)"`) {
		t.Error("theme grid fill not applied")
	}
	if !strings.Contains(svg, `stroke="midnightblue"`) {
		t.Error("theme stroke not applied")
	}
}

func TestEntitiesRenderInInsertionOrder(t *testing.T) {
	m := grid.New(2, 2)
	m.AddEntity(grid.Entity{Shape: geometry.Circle(0), Point: geometry.Pt(0, 0), Position: grid.Within})
	m.AddEntity(grid.Entity{Shape: geometry.Shape{Kind: geometry.ShapeSquare}, Point: geometry.Pt(1, 1), Position: grid.Within})

	svg := Map(m)
	circle := strings.Index(svg, "<circle")
	square := strings.LastIndex(svg, "<rect")
	if circle == -1 || square == -1 || circle > square {
		t.Errorf("entities out of order in %q", svg)
	}
}

func compile(t *testing.T, source string) *grid.Map {
	t.Helper()
	ast, err := lang.Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m, err2 := generate.Map(ast)
	if err2 != nil {
		t.Fatalf("generate: %v", err2)
	}
	return m
}
