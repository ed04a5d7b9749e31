package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const sep = " and "

type Error struct {
	FailedField string
	Tag         string
	Value       interface{}
}

type XValidator struct {
	validator *validator.Validate
}

func NewXValidator(v *validator.Validate) *XValidator {
	for key, function := range valid {
		v.RegisterValidation(key, function)
	}

	return &XValidator{validator: v}
}

func (x *XValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, Error{
				FailedField: err.Field(),
				Tag:         err.Tag(),
				Value:       err.Value(),
			})
		}
	}

	return validationErrors
}

func (x *XValidator) ErrorMessage(errs []Error) string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, fmt.Sprintf("%s is invalid", err.FailedField))
	}

	return strings.Join(messages, sep)
}
