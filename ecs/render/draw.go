// Package render draws the world for the window frontend.
package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/raindrop/common"
	"github.com/milk9111/raindrop/ecs"
	"github.com/milk9111/raindrop/ecs/component"
	"github.com/milk9111/raindrop/ecs/system"
)

type drawable struct {
	look *component.Appearance
	tf   *component.Transform
	box  float64
}

// DrawWorld draws every entity with an Appearance, lowest layer first, then
// health bars on top.
func DrawWorld(screen *ebiten.Image, w *ecs.World, cam *component.Camera) {
	if screen == nil || w == nil || cam == nil {
		return
	}
	var items []drawable
	ecs.ForEach2(w, component.AppearanceComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, look *component.Appearance, tf *component.Transform) {
		d := drawable{look: look, tf: tf}
		if phys, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && phys.Width > 0 {
			d.box = phys.Width
		}
		items = append(items, d)
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].look.Layer < items[j].look.Layer })

	for _, d := range items {
		sx, sy := system.WorldToScreen(cam, d.tf.X, d.tf.Y)
		if d.box > 0 {
			drawBox(screen, sx, sy, d.box, d.tf.Rotation, d.look.Color)
			continue
		}
		drawDisc(screen, sx, sy, d.look.Radius, d.look.Color)
	}

	ecs.ForEach2(w, component.HealthBarComponent.Kind(), component.ParentComponent.Kind(), func(_ ecs.Entity, bar *component.HealthBar, parent *component.Parent) {
		if bar.Hidden {
			return
		}
		tf, ok := ecs.Get(w, ecs.Entity(parent.Entity), component.TransformComponent.Kind())
		if !ok {
			return
		}
		sx, sy := system.WorldToScreen(cam, tf.X, tf.Y+bar.OffsetY)
		x := float32(sx - bar.Width/2)
		vector.DrawFilledRect(screen, x, float32(sy), float32(bar.Width), 6, color.RGBA{40, 40, 40, 220}, false)
		vector.DrawFilledRect(screen, x, float32(sy), float32(bar.Width*bar.Fill), 6, color.RGBA{220, 50, 50, 255}, false)
	})
}

// DrawVignette tints the screen red as the player shrinks.
func DrawVignette(screen *ebiten.Image, radius float64) {
	alpha := VignetteAlpha(radius)
	if alpha <= 0 {
		return
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{R: uint8(160 * alpha), A: uint8(255 * alpha)}, false)
}

// VignetteAlpha is clamp(0.8 - radius/50, 0, 1).
func VignetteAlpha(radius float64) float64 {
	return common.Clamp(0.8-radius/50, 0, 1)
}

func drawDisc(screen *ebiten.Image, sx, sy, radius float64, clr color.RGBA) {
	if radius <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := radius * 2 / discSize
	op.GeoM.Translate(-discSize/2, -discSize/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(disc(), op)
}

// drawBox draws a size×size square rotated by the world angle. Screen Y is
// flipped, so the angle is negated.
func drawBox(screen *ebiten.Image, sx, sy, size, rotation float64, clr color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(size, size)
	op.GeoM.Rotate(-rotation)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(pixel(), op)

	// Mark the face that takes damage.
	face := &ebiten.DrawImageOptions{}
	face.GeoM.Translate(-0.5, 0)
	face.GeoM.Scale(size*0.8, size*0.1)
	face.GeoM.Translate(0, -size*0.45)
	face.GeoM.Rotate(-rotation)
	face.GeoM.Translate(sx, sy)
	face.ColorScale.ScaleWithColor(color.RGBA{255, 255, 255, 255})
	screen.DrawImage(pixel(), face)
}
