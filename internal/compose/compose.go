// Package compose renders a single fully-composed icon image: a solid
// rounded-rectangle background with the source logo centered on top.
package compose

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"

	"github.com/Mavwarf/mkicons/internal/mask"
)

// Background is the fill color behind the logo (#1e293b).
var Background = color.NRGBA{R: 30, G: 41, B: 59, A: 255}

const (
	// CornerRadiusRatio sets the corner radius relative to the icon
	// size (~iOS/macOS style rounding).
	CornerRadiusRatio = 0.164

	// LogoPaddingRatio sets the padding around the logo relative to
	// the icon size.
	LogoPaddingRatio = 0.05
)

// Icon composes one size×size RGBA icon: the rounded background with
// logo resized to fit inside the padding and alpha-blended on top.
// It is a pure function of the logo and size.
func Icon(logo image.Image, size int) *image.NRGBA {
	padding := int(math.Round(float64(size) * LogoPaddingRatio))

	bg := background(size)

	logoSize := size - 2*padding
	resized := imaging.Resize(logo, logoSize, logoSize, imaging.Lanczos)

	return imaging.Overlay(bg, resized, image.Pt(padding, padding), 1.0)
}

// background returns a size×size canvas that is transparent outside
// the rounded rectangle and Background-colored inside it.
func background(size int) *image.NRGBA {
	radius := int(math.Round(float64(size) * CornerRadiusRatio))

	bg := image.NewNRGBA(image.Rect(0, 0, size, size))
	m := mask.RoundedRect(size, radius)
	draw.DrawMask(bg, bg.Bounds(), image.NewUniform(Background), image.Point{}, m, image.Point{}, draw.Over)
	return bg
}
