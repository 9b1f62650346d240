package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"

	"github.com/idelchi/apdec/internal/keystream"
)

// maxBufferSize caps --buffer-size so the parsed value always fits an int.
const maxBufferSize = 1 << 30

// registerValidations adds the custom rules used by Config's struct tags.
func registerValidations(validate *validator.Validate) error {
	rules := map[string]validator.Func{
		"exclusive": validateExclusive,
		"variant":   validateVariant,
		"bytesize":  validateByteSize,
	}

	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("registering %s validation: %w", tag, err)
		}
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", splitSize)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateExclusive checks that a field and the one named in its parameter are not both set.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	otherField := fl.Parent().FieldByName(fl.Param())

	if !field.IsValid() || !otherField.IsValid() {
		return true
	}

	return field.IsZero() || otherField.IsZero()
}

// validateVariant checks that a compiled-in table exists under the given name.
func validateVariant(fl validator.FieldLevel) bool {
	_, err := keystream.Lookup(fl.Field().String())

	return err == nil
}

// validateByteSize checks for a positive human-readable size no larger than maxBufferSize.
func validateByteSize(fl validator.FieldLevel) bool {
	size, err := humanize.ParseBytes(fl.Field().String())
	if err != nil {
		return false
	}

	return size > 0 && size <= maxBufferSize
}
