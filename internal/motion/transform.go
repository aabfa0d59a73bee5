// SPDX-License-Identifier: MIT
// Package motion maps the page's vertical scroll offset to the visual
// parameters of the sticky product image.
package motion

import "math"

// Range is the scroll window over which the effect runs, in CSS pixels
type Range struct {
	Start float64
	End   float64
}

// DefaultRange starts the dissolve after 50px and completes it at 400px
var DefaultRange = Range{Start: 50, End: 400}

// Params are the image's visual parameters at a given scroll offset
type Params struct {
	Blur       float64 // px
	Opacity    float64
	Scale      float64
	Saturation float64
}

// From and To are the parameter values at the start and end of the range
var (
	From = Params{Blur: 0, Opacity: 1, Scale: 1, Saturation: 1}
	To   = Params{Blur: 15, Opacity: 0.15, Scale: 0.8, Saturation: 0}
)

// Progress returns how far y is through r, clamped to [0, 1]
func (r Range) Progress(y float64) float64 {
	if math.IsNaN(y) || y <= r.Start {
		return 0
	}
	if y >= r.End || r.End <= r.Start {
		return 1
	}
	return (y - r.Start) / (r.End - r.Start)
}

// Lerp interpolates linearly between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// At returns the parameters at progress t in [0, 1]
func At(t float64) Params {
	return Params{
		Blur:       Lerp(From.Blur, To.Blur, t),
		Opacity:    Lerp(From.Opacity, To.Opacity, t),
		Scale:      Lerp(From.Scale, To.Scale, t),
		Saturation: Lerp(From.Saturation, To.Saturation, t),
	}
}

// Transform returns the parameters for scroll offset y in r
func (r Range) Transform(y float64) Params {
	return At(r.Progress(y))
}

// Transform returns the parameters for scroll offset y in DefaultRange
func Transform(y float64) Params {
	return DefaultRange.Transform(y)
}
