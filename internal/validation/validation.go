package validation

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	// Report fields under their JSON (or form) name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Details flattens validator errors into field -> failed tag, for the error envelope.
// Non-validator errors yield nil.
func Details(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fieldErr := range verrs {
		out[fieldErr.Field()] = fieldErr.Tag()
	}
	return out
}

// Summary renders validator errors as one human readable line.
func Summary(err error) string {
	details := Details(err)
	if len(details) == 0 {
		return "Invalid input"
	}
	fields := make([]string, 0, len(details))
	for f := range details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "Invalid or missing fields: " + strings.Join(fields, ", ")
}
