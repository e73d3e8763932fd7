package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		_, err := ParseAmount(fl.Field().String())
		return err == nil
	})
	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		digits := 0
		for _, r := range fl.Field().String() {
			switch {
			case r >= '0' && r <= '9':
				digits++
			case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
			default:
				return false
			}
		}
		return digits >= 7 && digits <= 15
	})
}

// Struct validates s and returns field errors keyed by json name, nil when s
// is valid.
func Struct(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"": err.Error()}
	}

	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			fields[e.Field()] = "This field is required"
		case "min":
			fields[e.Field()] = "Value is too short (min: " + e.Param() + ")"
		case "max":
			fields[e.Field()] = "Value is too long (max: " + e.Param() + ")"
		case "oneof":
			fields[e.Field()] = "Must be one of: " + e.Param()
		case "amount":
			fields[e.Field()] = ErrInvalidAmount.Error()
		case "phone":
			fields[e.Field()] = "Invalid phone number"
		default:
			fields[e.Field()] = "Invalid value"
		}
	}
	return fields
}
