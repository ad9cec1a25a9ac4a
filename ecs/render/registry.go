package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var images = map[string]*ebiten.Image{}

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

const (
	pixelKey = "pixel"
	discKey  = "disc"
	// discSize is the cached disc's diameter; draws scale it to any radius.
	discSize = 128
)

// pixel is a 1x1 white image, scaled and tinted to draw boxes.
func pixel() *ebiten.Image {
	if img := GetImage(pixelKey); img != nil {
		return img
	}
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	RegisterImage(pixelKey, img)
	return img
}

// disc is a white anti-aliased circle, scaled and tinted to draw round
// entities.
func disc() *ebiten.Image {
	if img := GetImage(discKey); img != nil {
		return img
	}
	img := ebiten.NewImage(discSize, discSize)
	vector.DrawFilledCircle(img, discSize/2, discSize/2, discSize/2, color.White, true)
	RegisterImage(discKey, img)
	return img
}
