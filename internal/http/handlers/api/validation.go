package api

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FlexUint is an unsigned integer that also accepts a quoted number, so
// clients sending `"categoryId": "3"` still validate.
type FlexUint uint

// UnmarshalJSON parses a number or a numeric string.
func (f *FlexUint) UnmarshalJSON(b []byte) error {
	trimmed := strings.Trim(string(b), `"`)
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	value, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return err
	}
	*f = FlexUint(value)
	return nil
}

// Uint converts to the plain type.
func (f FlexUint) Uint() uint {
	return uint(f)
}

// FlexInt is the signed counterpart of FlexUint.
type FlexInt int

// UnmarshalJSON parses a number or a numeric string.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	trimmed := strings.Trim(string(b), `"`)
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return err
	}
	*f = FlexInt(value)
	return nil
}

// Int converts to the plain type.
func (f FlexInt) Int() int {
	return int(f)
}

// bindingDetails turns a binding failure into the per-field issue map used
// in 400 bodies. Non-validator errors (malformed JSON, bad coercion) yield a
// single body-level entry.
func bindingDetails(err error) map[string]string {
	details := map[string]string{}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			field := fieldError.Field()
			if field == "" {
				field = fieldError.StructField()
			}
			details[lowerFirst(field)] = fieldError.Tag()
		}
		return details
	}

	var unmarshalError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalError) {
		details[unmarshalError.Field] = "invalid type"
		return details
	}

	details["body"] = err.Error()
	return details
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
