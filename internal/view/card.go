// SPDX-License-Identifier: MIT
package view

import "github.com/harishsolar/solarsite/internal/catalog"

// Card is the hover state of a catalog card
type Card struct {
	Product *catalog.Product
	Index   int
	Hovered bool
}

// Enter marks the pointer as over the card
func (c *Card) Enter() { c.Hovered = true }

// Leave marks the pointer as having left the card
func (c *Card) Leave() { c.Hovered = false }

// ShowsBack reports whether the rear image is displayed
func (c *Card) ShowsBack() bool {
	return c.Hovered && c.Product.HasBackImage()
}

// VisibleImage returns the image reference currently displayed
func (c *Card) VisibleImage() string {
	if c.ShowsBack() {
		return c.Product.BackImage
	}
	return c.Product.Image
}

// Faces returns the image shown at rest and the image shown while hovered.
// flips is false when hovering changes nothing.
func (c Card) Faces() (rest, hover string, flips bool) {
	c.Leave()
	rest = c.VisibleImage()
	c.Enter()
	return rest, c.VisibleImage(), c.ShowsBack()
}

// Cards builds the card states for every product, in catalog order
func Cards(c *catalog.Catalog) []Card {
	cards := make([]Card, len(c.Products))
	for i := range c.Products {
		cards[i] = Card{Product: &c.Products[i], Index: i}
	}
	return cards
}
