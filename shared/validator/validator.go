package validator

import (
	"encoding/json"
	"fmt"
	"io"

	val "github.com/go-playground/validator/v10"

	"hus/shared/constant"
	"hus/shared/failure"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("businessdate", func(fl val.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return isBusinessDate(str)
	})
	if err != nil {
		panic(err)
	}
}

// isBusinessDate reports whether the string is a fixed-width, zero-padded
// YYYY-MM-DD date. The booking engine relies on this shape for its
// lexicographic date comparisons.
func isBusinessDate(str string) bool {
	if len(str) != len(constant.DateFormat) {
		return false
	}

	for i, r := range str {
		if i == 4 || i == 7 {
			if r != '-' {
				return false
			}

			continue
		}

		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
