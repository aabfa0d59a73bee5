// SPDX-License-Identifier: MIT
package view

import (
	"testing"

	"github.com/harishsolar/solarsite/internal/catalog"
)

const placeholder = "https://via.placeholder.com/600x600?text=Solar+Light"

func TestDetailStartsOnFrontLoading(t *testing.T) {
	p := &catalog.Product{ID: "a", Image: "/images/a.png", BackImage: "/images/a-back.png"}
	d := NewDetail(p)

	if d.Face != Front || !d.Loading {
		t.Errorf("expected front and loading, got %+v", d)
	}
	if d.CurrentImage(placeholder) != p.Image {
		t.Errorf("expected front image, got %s", d.CurrentImage(placeholder))
	}
}

func TestDetailFaceChangeResetsLoading(t *testing.T) {
	p := &catalog.Product{ID: "a", Image: "/images/a.png", BackImage: "/images/a-back.png"}
	d := NewDetail(p)
	d.ImageLoaded()

	d.SetFace(Back)
	if !d.Loading {
		t.Error("expected loading after face change")
	}
	if d.CurrentImage(placeholder) != p.BackImage {
		t.Errorf("expected rear image, got %s", d.CurrentImage(placeholder))
	}

	d.ImageLoaded()
	d.SetFace(Back)
	if d.Loading {
		t.Error("selecting the current face should not reset loading")
	}
}

func TestDetailBackDisabledWithoutRearImage(t *testing.T) {
	p := &catalog.Product{ID: "a", Image: "/images/a.png"}
	d := NewDetail(p)
	d.ImageLoaded()

	if d.CanShowBack() {
		t.Fatal("back should be disabled without a rear image")
	}

	d.SetFace(Back)
	if d.Face != Front {
		t.Errorf("expected face to stay front, got %s", d.Face)
	}
	if d.Loading {
		t.Error("ignored toggle should not reset loading")
	}
}

func TestDetailImageFailureUsesPlaceholder(t *testing.T) {
	p := &catalog.Product{ID: "a", Image: "/images/missing.png"}
	d := NewDetail(p)

	d.ImageFailed()
	if d.Loading {
		t.Error("expected loading cleared after failure")
	}
	if d.CurrentImage(placeholder) != placeholder {
		t.Errorf("expected placeholder, got %s", d.CurrentImage(placeholder))
	}
}

func TestDetailProductChangeResets(t *testing.T) {
	a := &catalog.Product{ID: "a", Image: "/images/a.png", BackImage: "/images/a-back.png"}
	b := &catalog.Product{ID: "b", Image: "/images/b.png"}
	d := NewDetail(a)
	d.SetFace(Back)
	d.ImageFailed()

	d.SetProduct(b)
	if d.Face != Front || !d.Loading || d.Failed {
		t.Errorf("expected fresh state for new product, got %+v", d)
	}
	if d.CurrentImage(placeholder) != b.Image {
		t.Errorf("expected %s, got %s", b.Image, d.CurrentImage(placeholder))
	}
}

func TestParseFace(t *testing.T) {
	if ParseFace("back") != Back {
		t.Error("expected back")
	}
	for _, s := range []string{"", "front", "top", "BACK"} {
		if ParseFace(s) != Front {
			t.Errorf("%q: expected front", s)
		}
	}
}
