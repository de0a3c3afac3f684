// Package mask builds single-channel rounded-rectangle masks used as
// alpha stencils when compositing icon backgrounds.
package mask

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// scale is the supersampling factor: the shape is rendered at scale×
// the requested resolution and downsampled for anti-aliasing.
const scale = 4

// RoundedRect returns a size×size alpha mask that is fully opaque
// inside a rectangle with rounded corners of the given radius and
// fully transparent outside, with a smooth boundary.
//
// A radius larger than size/2 is clamped, which degenerates into a
// circle clipped by the square bounds. size must be positive.
func RoundedRect(size, radius int) *image.Alpha {
	if radius > size/2 {
		radius = size / 2
	}

	large := size * scale
	dc := gg.NewContext(large, large)
	dc.DrawRoundedRectangle(0, 0, float64(large), float64(large), float64(radius*scale))
	dc.SetRGB(1, 1, 1)
	dc.Fill()

	m := image.NewAlpha(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(m, m.Bounds(), dc.Image(), dc.Image().Bounds(), draw.Src, nil)
	return m
}
