// SPDX-License-Identifier: MIT
// Package inquiries validates, sanitizes and stores contact form submissions.
package inquiries

import (
	"errors"
	"html"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	phonePattern     = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,18}$`)
	productIDPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
	strictPolicy     = bluemonday.StrictPolicy()
)

// Submission is a contact form post. Tags are read by gin's binding.
type Submission struct {
	Name    string `form:"name" binding:"required,max=100"`
	Phone   string `form:"phone" binding:"required,phone"`
	Message string `form:"message" binding:"max=2000"`
	Product string `form:"product" binding:"omitempty,product_id"`
}

// RegisterValidators adds the phone and product_id rules to v and makes
// errors report form field names
func RegisterValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("product_id", func(fl validator.FieldLevel) bool {
		return productIDPattern.MatchString(fl.Field().String())
	})
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")
		RegisterValidators(validate)
	})
	return validate
}

// Normalize trims whitespace and strips any markup from the submission
func (s *Submission) Normalize() {
	s.Name = Sanitize(s.Name)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Message = Sanitize(s.Message)
	s.Product = strings.TrimSpace(s.Product)
}

// Validate checks s outside of a gin request
func (s *Submission) Validate() error {
	return validatorInstance().Struct(s)
}

// Sanitize strips HTML from user input and returns plain text
func Sanitize(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

var fieldMessages = map[string]string{
	"name":    "Please enter your name (up to 100 characters)",
	"phone":   "Please enter a valid phone number",
	"message": "Message must be at most 2000 characters",
	"product": "Unknown product",
}

// FieldErrors maps a validation error to a message per form field. Errors
// that are not validation errors are reported under "form".
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": "Please check the form and try again"}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = "Invalid value"
		}
		out[fe.Field()] = msg
	}
	return out
}
