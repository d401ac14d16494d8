package render

import (
	"image/color"
	"math"
)

// Sequential yellow-green-blue ramp. Anchors are evenly spaced over [0, 1]
// and shades in between are linearly interpolated.
var ratioAnchors = []color.RGBA{
	{R: 255, G: 255, B: 217, A: 255},
	{R: 199, G: 233, B: 180, A: 255},
	{R: 65, G: 182, B: 196, A: 255},
	{R: 34, G: 94, B: 168, A: 255},
	{R: 8, G: 29, B: 88, A: 255},
}

// undefinedShade fills regions whose ratio is NaN: no expressed ballots, or
// a boundary with no matching result row.
var undefinedShade = color.RGBA{R: 211, G: 211, B: 211, A: 255}

// shade maps a ratio in [0, 1] onto the ramp. Values outside the range are
// clamped; NaN gets the neutral shade.
func shade(ratio float64) color.Color {
	if math.IsNaN(ratio) {
		return undefinedShade
	}
	if ratio <= 0 {
		return ratioAnchors[0]
	}
	if ratio >= 1 {
		return ratioAnchors[len(ratioAnchors)-1]
	}

	segments := float64(len(ratioAnchors) - 1)
	pos := ratio * segments
	i := int(pos)
	frac := pos - float64(i)

	lo, hi := ratioAnchors[i], ratioAnchors[i+1]
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + frac*(float64(b)-float64(a))))
	}
	return color.RGBA{
		R: lerp(lo.R, hi.R),
		G: lerp(lo.G, hi.G),
		B: lerp(lo.B, hi.B),
		A: 255,
	}
}
