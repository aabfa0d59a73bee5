// SPDX-License-Identifier: MIT
package catalog

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	productIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

// validatorInstance returns the shared validator used for catalog files
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Product IDs become URL path segments and hash fragments
		_ = v.RegisterValidation("product_id", func(fl validator.FieldLevel) bool {
			return productIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Load reads a catalog from a YAML file. An empty path returns the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML catalog. Sections missing from the
// document keep their built-in values.
func Parse(data []byte) (*Catalog, error) {
	def := Default()

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if len(c.Features) == 0 {
		c.Features = def.Features
	}
	if len(c.Applications) == 0 {
		c.Applications = def.Applications
	}
	if c.Contact == (ContactInfo{}) {
		c.Contact = def.Contact
	}

	if err := Validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks a catalog for missing fields and duplicate IDs
func Validate(c *Catalog) error {
	if err := validatorInstance().Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}
