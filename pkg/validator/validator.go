package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance. Field names in messages come
// from json tags so they match what the client actually sent.
func New() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation and flattens failures into one
// client-facing message
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.v.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, f := range verrs {
			switch f.Tag() {
			case "required":
				msgs = append(msgs, fmt.Sprintf("%s is required", f.Field()))
			case "max":
				msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", f.Field(), f.Param()))
			case "min":
				msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", f.Field(), f.Param()))
			default:
				msgs = append(msgs, fmt.Sprintf("%s is invalid", f.Field()))
			}
		}
		return errors.New(strings.Join(msgs, ", "))
	}
	return err
}
