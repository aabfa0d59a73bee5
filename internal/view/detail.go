// SPDX-License-Identifier: MIT
package view

import "github.com/harishsolar/solarsite/internal/catalog"

// Face is the side of the product shown on the detail page
type Face string

const (
	Front Face = "front"
	Back  Face = "back"
)

// ParseFace maps a query value to a Face, defaulting to Front
func ParseFace(s string) Face {
	if Face(s) == Back {
		return Back
	}
	return Front
}

// Detail is the state of the product detail page
type Detail struct {
	Product *catalog.Product
	Face    Face
	Loading bool
	Failed  bool
}

// NewDetail returns the initial detail state for p
func NewDetail(p *catalog.Product) *Detail {
	d := &Detail{}
	d.SetProduct(p)
	return d
}

// SetProduct shows a different product, starting from its front face
func (d *Detail) SetProduct(p *catalog.Product) {
	d.Product = p
	d.Face = Front
	d.Loading = true
	d.Failed = false
}

// CanShowBack reports whether the back toggle is enabled
func (d *Detail) CanShowBack() bool {
	return d.Product != nil && d.Product.HasBackImage()
}

// SetFace switches faces. Back without a rear image is ignored.
func (d *Detail) SetFace(f Face) {
	if f == Back && !d.CanShowBack() {
		return
	}
	if f == d.Face {
		return
	}
	d.Face = f
	d.Loading = true
	d.Failed = false
}

// ImageLoaded clears the loading state
func (d *Detail) ImageLoaded() {
	d.Loading = false
}

// ImageFailed clears the loading state and switches to the placeholder
func (d *Detail) ImageFailed() {
	d.Loading = false
	d.Failed = true
}

// CurrentImage returns the image reference for the current face, or
// placeholder after a load failure
func (d *Detail) CurrentImage(placeholder string) string {
	if d.Failed {
		return placeholder
	}
	if d.Face == Back {
		return d.Product.BackImage
	}
	return d.Product.Image
}
