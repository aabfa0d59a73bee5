// SPDX-License-Identifier: MIT
// Package catalog holds the static product, feature and contact data shown on the site.
package catalog

// Detail is a single row of a product's technical specification table
type Detail struct {
	Feature string `yaml:"feature" validate:"required"`
	Value   string `yaml:"value" validate:"required"`
}

// Product represents a solar light in the catalog
type Product struct {
	ID          string   `yaml:"id" validate:"required,product_id"`
	Name        string   `yaml:"name" validate:"required"`
	Image       string   `yaml:"image" validate:"required,startswith=/images/"`
	BackImage   string   `yaml:"back_image" validate:"omitempty,startswith=/images/"`
	Description string   `yaml:"description"`
	Specs       []string `yaml:"specs" validate:"dive,required"`
	Details     []Detail `yaml:"details" validate:"dive"`
}

// CardSpecSize is the number of specs shown on a catalog card
const CardSpecSize = 3

// CardSpecs returns the specs shown on the product's catalog card
func (p *Product) CardSpecs() []string {
	if len(p.Specs) <= CardSpecSize {
		return p.Specs
	}
	return p.Specs[:CardSpecSize]
}

// HasBackImage reports whether a rear view is configured
func (p *Product) HasBackImage() bool {
	return p.BackImage != ""
}

// Model returns the upper-case model code, e.g. "HS-60"
func (p *Product) Model() string {
	b := []byte(p.ID)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// Feature is a technology highlight
type Feature struct {
	ID          string `yaml:"id" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon" validate:"required"`
}

// Application is a deployment scenario (streets, parks, ...)
type Application struct {
	ID    string `yaml:"id" validate:"required"`
	Title string `yaml:"title" validate:"required"`
	Icon  string `yaml:"icon" validate:"required"`
}

// ContactInfo holds the live contact channels
type ContactInfo struct {
	Phone   string `yaml:"phone" validate:"required"`
	Email   string `yaml:"email" validate:"required,email"`
	Address string `yaml:"address"`
}

// Catalog is the immutable set of site content
type Catalog struct {
	Products     []Product     `yaml:"products" validate:"required,min=1,unique=ID,dive"`
	Features     []Feature     `yaml:"features" validate:"unique=ID,dive"`
	Applications []Application `yaml:"applications" validate:"unique=ID,dive"`
	Contact      ContactInfo   `yaml:"contact"`
}

// Product looks up a product by ID. The returned pointer refers into the catalog.
func (c *Catalog) Product(id string) (*Product, bool) {
	i := c.Index(id)
	if i < 0 {
		return nil, false
	}
	return &c.Products[i], true
}

// Index returns the position of a product in the catalog, or -1
func (c *Catalog) Index(id string) int {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return i
		}
	}
	return -1
}
