package render

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Theme holds the document's colours. Themes load from small TOML files so
// map authors can restyle output without touching source descriptions:
//
//	grid_fill = "rgb(230, 230, 230)"
//	stroke    = "midnightblue"
//
// Missing keys keep their defaults.
type Theme struct {
	// GridFill fills the background cell rectangles.
	GridFill string `toml:"grid_fill"`
	// Stroke draws walls, corridors and entity glyphs.
	Stroke string `toml:"stroke"`
}

// DefaultTheme returns light-gray cells with black strokes.
func DefaultTheme() Theme {
	return Theme{
		GridFill: "rgb(200, 200, 200)",
		Stroke:   "black",
	}
}

// LoadTheme reads a TOML theme file, filling unset keys from the default.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if _, err := toml.DecodeFile(path, &theme); err != nil {
		return Theme{}, fmt.Errorf("load theme %s: %w", path, err)
	}
	return theme, nil
}
