package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// monthYearRegex matches the certificate date format "MM/YYYY". The month
// must be zero-padded; "3/2024" and "03/99" do not match.
var monthYearRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{4}$`)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterValidation("monthyear", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return monthYearRegex.MatchString(value)
	})

	return &Validator{v: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

func (v *Validator) ValidationErrors(err error) validator.ValidationErrors {
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		return ve
	}
	return nil
}
