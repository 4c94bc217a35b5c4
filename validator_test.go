package ask

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringValidators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		validator StringValidator
		input     string
		valid     bool
		message   string
	}{
		{"required accepts text", ValidateRequired(""), "x", true, ""},
		{"required rejects empty", ValidateRequired(""), "", false, "A response is required."},
		{"required custom message", ValidateRequired("needed"), "", false, "needed"},
		{"min length counts runes", ValidateMinLength(3, ""), "ção", true, ""},
		{"min length rejects", ValidateMinLength(3, ""), "jo", false, "The length of the response should be at least 3"},
		{"max length accepts", ValidateMaxLength(3, ""), "joe", true, ""},
		{"max length rejects", ValidateMaxLength(3, "too long"), "joey", false, "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := tt.validator(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.IsValid())
			assert.Equal(t, tt.message, res.Message())
		})
	}
}

func TestValidateMinSelected(t *testing.T) {
	t.Parallel()

	v := ValidateMinSelected[string](2, "")

	res, err := v([]ListOption[string]{{0, "A"}})
	require.NoError(t, err)
	assert.False(t, res.IsValid())
	assert.Equal(t, "Select at least 2 options", res.Message())

	res, err = v([]ListOption[string]{{0, "A"}, {3, "D"}})
	require.NoError(t, err)
	assert.True(t, res.IsValid())
}

func TestValidateRunsInOrder(t *testing.T) {
	t.Parallel()

	calls := 0
	counting := func(string) (Validation, error) {
		calls++
		return Valid(), nil
	}

	res, err := validate([]StringValidator{ValidateRequired("first"), counting}, "")
	require.NoError(t, err)
	assert.Equal(t, "first", res.Message())
	assert.Zero(t, calls, "validators after a rejection are not run")

	res, err = validate([]StringValidator{counting, ValidateMinLength(2, "second")}, "a")
	require.NoError(t, err)
	assert.Equal(t, "second", res.Message())
	assert.Equal(t, 1, calls)

	res, err = validate[string](nil, "")
	require.NoError(t, err)
	assert.True(t, res.IsValid())
}

func TestValidateWrapsErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("database unavailable")
	failing := func(string) (Validation, error) { return Validation{}, boom }

	_, err := validate([]StringValidator{failing}, "x")

	var custom *CustomError
	require.ErrorAs(t, err, &custom)
	assert.ErrorIs(t, err, boom)
}
