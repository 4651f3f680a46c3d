package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	// Use a singleton validator instance to avoid recreating it
	validatorInstance *validator.Validate
	validatorOnce     sync.Once
)

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInstance = validator.New()

		// register function to get tag name from json tags.
		validatorInstance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

			if name == "_" {
				return ""
			}

			return name
		})
	})

	return validatorInstance
}

// Validate an input struct and map any failures to the provided messages. The
// message keys follow the "field.tag" convention, e.g. "port.numeric". A nil
// return value means the input is valid.
func Validate(input any, messages map[string]string) map[string][]string {
	v := getValidator()

	err := v.Struct(input)

	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)

	if !ok {
		return map[string][]string{
			"_": {err.Error()},
		}
	}

	e := make(map[string][]string)

	for _, fieldError := range validationErrors {
		fieldKey := fieldError.Field()
		messageKey := fmt.Sprintf("%s.%s", fieldKey, fieldError.Tag())

		message := messages[messageKey]

		if message == "" {
			message = fmt.Sprintf("The %s field is invalid.", fieldKey)
		}

		e[fieldKey] = append(e[fieldKey], message)
	}

	return e
}
