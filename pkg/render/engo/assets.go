// pkg/render/engo/assets.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/engo/common"
)

// Style holds the colors and shapes used to draw a match. Everything is
// drawn with engo's built-in shapes so no texture files are needed.
type Style struct {
	Background color.Color
	Sun        color.Color
	Projectile color.Color // used once the owning rocket is gone
	Players    []color.Color
	Neutral    color.Color
}

// DefaultStyle returns the standard palette
func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{5, 5, 20, 255},
		Sun:        color.RGBA{255, 200, 40, 255},
		Projectile: color.RGBA{255, 255, 255, 255},
		Players: []color.Color{
			color.RGBA{255, 80, 80, 255},  // Red
			color.RGBA{80, 160, 255, 255}, // Blue
			color.RGBA{80, 255, 120, 255}, // Green
			color.RGBA{255, 255, 0, 255},  // Yellow
		},
		Neutral: color.RGBA{128, 128, 128, 255},
	}
}

// PlayerColor returns the color for the player at index
func (s Style) PlayerColor(index int) color.Color {
	if index >= 0 && index < len(s.Players) {
		return s.Players[index]
	}
	return s.Neutral
}

// Projectile sprites are drawn at a fixed size in world units
const projectileSize = 6

func rocketShape() common.Drawable {
	return common.Triangle{}
}

func sunShape() common.Drawable {
	return common.Circle{}
}

func projectileShape() common.Drawable {
	return common.Circle{}
}
