package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `validate:"omitempty,valid_name"`
	Phone    string `validate:"omitempty,valid_phone"`
	Headline string `validate:"no_emoji"`
	Status   string `validate:"profile_status"`
}

func valid() sample {
	return sample{Name: "Anna-Lena O'Brien", Phone: "+49 151 2345678", Headline: "Pflegefachkraft", Status: "new"}
}

func TestCustomTags(t *testing.T) {
	v := New()
	require.NoError(t, v.Struct(valid()))

	cases := map[string]func(*sample){
		"digits in name": func(s *sample) { s.Name = "Anna 2" },
		"short phone":    func(s *sample) { s.Phone = "+4912" },
		"emoji headline": func(s *sample) { s.Headline = "Nurse 🚑" },
		"unknown status": func(s *sample) { s.Status = "hired" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := valid()
			mutate(&s)
			assert.Error(t, v.Struct(s))
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	type input struct {
		FirstName            string `validate:"required"`
		Password             string `validate:"min=8"`
		PasswordConfirmation string `validate:"eqfield=Password"`
		Status               string `validate:"profile_status"`
	}
	err := New().Struct(input{Password: "short", PasswordConfirmation: "other", Status: "x"})
	require.Error(t, err)

	msgs := FormatValidationErrors(err)
	assert.Equal(t, []string{
		"First name: is required",
		"Password: must be at least 8 characters",
		"Password confirmation: must match password",
		"Status: must be one of: new, reviewed, eligible",
	}, msgs)
}

func TestFormatValidationErrorsPassesThroughOtherErrors(t *testing.T) {
	assert.Equal(t, []string{"boom"}, FormatValidationErrors(errors.New("boom")))
}
