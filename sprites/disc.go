// Package sprites renders body discs procedurally. There is no texture
// pipeline; every sprite is a shaded sphere built on the CPU and
// uploaded once.
package sprites

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	discPixels = 96
	glowFactor = 2 // glow image is this many disc diameters wide
)

// WorldSize returns the world-unit diameter a generated image spans,
// which is larger than the body for glowing bodies because of the halo.
func WorldSize(radius float64, glow bool) float64 {
	if glow {
		return 2 * radius * glowFactor
	}
	return 2 * radius
}

// Disc builds a shaded sphere sprite. Glowing bodies are drawn at full
// brightness with a radial halo instead of lambertian shading.
func Disc(c color.RGBA, glow bool) *ebiten.Image {
	size := discPixels
	if glow {
		size = discPixels * glowFactor
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size) / 2
	discR := float64(discPixels) / 2

	// Light from the upper left, matching the fixed highlight every
	// body shares.
	lx, ly, lz := -0.5, -0.55, 0.67

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			d := math.Sqrt(dx*dx + dy*dy)

			switch {
			case d <= discR:
				px := c
				if !glow {
					nx := dx / discR
					ny := dy / discR
					nz := math.Sqrt(math.Max(0, 1-nx*nx-ny*ny))
					lit := nx*lx + ny*ly + nz*lz
					if lit < 0 {
						lit = 0
					}
					shade := 0.25 + 0.75*lit
					px = color.RGBA{
						R: uint8(float64(c.R) * shade),
						G: uint8(float64(c.G) * shade),
						B: uint8(float64(c.B) * shade),
						A: 0xff,
					}
				}
				// Soften the rim to avoid a hard aliased edge. color.RGBA
				// is alpha-premultiplied, so the channels scale with A.
				if edge := discR - d; edge < 1.5 {
					a := edge / 1.5
					px.R = uint8(float64(px.R) * a)
					px.G = uint8(float64(px.G) * a)
					px.B = uint8(float64(px.B) * a)
					px.A = uint8(255 * a)
				}
				img.SetRGBA(x, y, px)

			case glow:
				falloff := 1 - (d-discR)/(center-discR)
				if falloff <= 0 {
					continue
				}
				a := falloff * falloff * 0.55
				img.SetRGBA(x, y, color.RGBA{
					R: uint8(float64(c.R) * a),
					G: uint8(float64(c.G) * a),
					B: uint8(float64(c.B) * a),
					A: uint8(255 * a),
				})
			}
		}
	}

	return ebiten.NewImageFromImage(img)
}
