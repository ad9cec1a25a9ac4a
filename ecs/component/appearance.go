package component

import "image/color"

// Appearance is what the frontends draw for an entity.
type Appearance struct {
	Color  color.RGBA
	Glyph  rune
	Radius float64
	Layer  int
}

var AppearanceComponent = NewComponent[Appearance]()
