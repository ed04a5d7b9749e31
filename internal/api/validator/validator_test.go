package validator_test

import (
	"testing"

	playground "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	apivalidator "github.com/ty05/booking-remind-sms/internal/api/validator"
)

type sample struct {
	Name  string `validate:"required,notblank,max=10"`
	Phone string `validate:"required,min=8,max=32"`
}

func TestXValidator_Validate(t *testing.T) {
	xv := apivalidator.NewXValidator(playground.New())

	t.Run("passes valid input", func(t *testing.T) {
		errs := xv.Validate(sample{Name: "Aiko", Phone: "+819012345678"})
		assert.Empty(t, errs)
	})

	t.Run("flags blank name", func(t *testing.T) {
		errs := xv.Validate(sample{Name: "   ", Phone: "+819012345678"})
		assert.Len(t, errs, 1)
		assert.Equal(t, "Name", errs[0].FailedField)
		assert.Equal(t, apivalidator.NotBlankTag, errs[0].Tag)
	})

	t.Run("flags short phone", func(t *testing.T) {
		errs := xv.Validate(sample{Name: "Aiko", Phone: "+8190"})
		assert.Len(t, errs, 1)
		assert.Equal(t, "Phone", errs[0].FailedField)
	})

	t.Run("joins failure messages", func(t *testing.T) {
		errs := xv.Validate(sample{})
		msg := xv.ErrorMessage(errs)
		assert.Contains(t, msg, "Name is invalid")
		assert.Contains(t, msg, "Phone is invalid")
	})
}
