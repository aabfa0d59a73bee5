// SPDX-License-Identifier: MIT
package motion

import (
	"math"
	"strings"
	"testing"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestOpacityAtOrBelowStart(t *testing.T) {
	for _, y := range []float64{-100, 0, 25, 50} {
		if p := Transform(y); p.Opacity != 1 {
			t.Errorf("y=%v: expected opacity 1, got %v", y, p.Opacity)
		}
	}
}

func TestOpacityAtOrAboveEnd(t *testing.T) {
	for _, y := range []float64{400, 401, 5000} {
		if p := Transform(y); !approx(p.Opacity, To.Opacity) {
			t.Errorf("y=%v: expected opacity %v, got %v", y, To.Opacity, p.Opacity)
		}
	}
}

func TestLinearBetween(t *testing.T) {
	// Midpoint of [50, 400]
	p := Transform(225)
	if !approx(p.Opacity, 0.575) {
		t.Errorf("expected opacity 0.575, got %v", p.Opacity)
	}
	if !approx(p.Blur, 7.5) {
		t.Errorf("expected blur 7.5, got %v", p.Blur)
	}
	if !approx(p.Scale, 0.9) {
		t.Errorf("expected scale 0.9, got %v", p.Scale)
	}
	if !approx(p.Saturation, 0.5) {
		t.Errorf("expected saturation 0.5, got %v", p.Saturation)
	}

	// Strictly between endpoints for every interior offset
	for y := 51.0; y < 400; y += 7 {
		p := Transform(y)
		if !(p.Opacity < 1 && p.Opacity > To.Opacity) {
			t.Errorf("y=%v: opacity %v not strictly between endpoints", y, p.Opacity)
		}
	}
}

func TestMonotonic(t *testing.T) {
	prev := Transform(0)
	for y := 1.0; y <= 450; y++ {
		p := Transform(y)
		if p.Blur < prev.Blur || p.Opacity > prev.Opacity || p.Scale > prev.Scale || p.Saturation > prev.Saturation {
			t.Fatalf("mapping not monotonic at y=%v: %+v after %+v", y, p, prev)
		}
		prev = p
	}
}

func TestProgressDegenerateRange(t *testing.T) {
	r := Range{Start: 100, End: 100}
	if r.Progress(50) != 0 {
		t.Error("below start should be 0")
	}
	if r.Progress(150) != 1 {
		t.Error("above end should be 1")
	}
	if DefaultRange.Progress(math.NaN()) != 0 {
		t.Error("NaN offset should map to start")
	}
}

func TestKeyframes(t *testing.T) {
	css := DefaultRange.Keyframes("hero-image", 4)

	if !strings.Contains(css, "@keyframes hero-image-dissolve") {
		t.Error("missing keyframes block")
	}
	if !strings.Contains(css, "animation-range: 50px 400px") {
		t.Errorf("missing animation range, got:\n%s", css)
	}
	if !strings.Contains(css, "0% { filter: blur(0px) saturate(1); opacity: 1; transform: scale(1); }") {
		t.Errorf("unexpected first keyframe:\n%s", css)
	}
	if !strings.Contains(css, "100% { filter: blur(15px) saturate(0); opacity: 0.15; transform: scale(0.8); }") {
		t.Errorf("unexpected last keyframe:\n%s", css)
	}
	if strings.Count(css, "% {") != 5 {
		t.Errorf("expected 5 keyframes, got %d", strings.Count(css, "% {"))
	}
}

func TestScriptCarriesRange(t *testing.T) {
	js := Range{Start: 10, End: 20}.Script("x")
	if !strings.Contains(js, "var s = 10, e = 20") {
		t.Errorf("script does not carry range constants:\n%s", js)
	}
	if !strings.Contains(js, `querySelectorAll(".x")`) {
		t.Error("script does not target class")
	}
}
