package validation_test

import (
	"testing"

	"jobdesk-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type registerForm struct {
	Email     string  `validate:"required,email"`
	Password  string  `validate:"required,min=8"`
	Role      string  `validate:"required,oneof=seeker employer"`
	SalaryMax float64 `validate:"omitempty,gtefield=SalaryMin"`
	SalaryMin float64
}

func TestFormatErrorsFieldList(t *testing.T) {
	v := validator.New()

	err := v.Struct(registerForm{Email: "not-an-email", Password: "short", Role: "wizard"})
	assert.Error(t, err)

	msgs := validation.FormatErrors(err)
	assert.Len(t, msgs, 3)
	assert.Contains(t, msgs[0], "Email must be a valid email address")
	assert.Contains(t, msgs[1], "Password must be at least 8 characters")
	assert.Contains(t, msgs[2], "Role must be one of: seeker, employer")
}

func TestFormatErrorsCrossField(t *testing.T) {
	v := validator.New()

	err := v.Struct(registerForm{
		Email:     "a@b.com",
		Password:  "longenough",
		Role:      "seeker",
		SalaryMin: 100,
		SalaryMax: 50,
	})
	assert.Error(t, err)

	msgs := validation.FormatErrors(err)
	assert.Len(t, msgs, 1)
	assert.Equal(t, "Maximum salary must not be less than Minimum salary", msgs[0])
}

func TestFormatErrorsNonValidationError(t *testing.T) {
	msgs := validation.FormatErrors(assert.AnError)
	assert.Equal(t, []string{assert.AnError.Error()}, msgs)
}
