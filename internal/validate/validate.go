// Package validate wraps go-playground/validator with readable error messages
// shared by configuration and catalog documents.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("validation failed")

// Validator is a wrapper around go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports field names as written in the yaml
// or mapstructure tag, falling back to the Go field name.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"yaml", "mapstructure"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return f.Name
	})

	return &Validator{validate: v}
}

// Struct validates s using its validate tags.
func (v *Validator) Struct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		return format(err)
	}

	return nil
}

// format converts validator errors into one readable message.
func format(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	messages := make([]string, 0, len(verrs))
	for _, e := range verrs {
		messages = append(messages, fmt.Sprintf(
			"field '%s' failed validation: %s (value: '%v')",
			e.Namespace(),
			e.Tag(),
			e.Value(),
		))
	}

	return fmt.Errorf("%w:\n  %s", ErrInvalid, strings.Join(messages, "\n  "))
}
