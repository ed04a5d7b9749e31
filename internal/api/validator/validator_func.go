package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const NotBlankTag = "notblank"

var valid = map[string]func(fl validator.FieldLevel) bool{
	NotBlankTag: ValidateNotBlank,
}

func ValidateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
