package ask

import (
	"fmt"
	"unicode/utf8"
)

// Validation is the outcome of a validator: the answer is either accepted
// or rejected with a message shown to the user.
type Validation struct {
	invalid bool
	message string
}

// Valid accepts the answer.
func Valid() Validation {
	return Validation{}
}

// Invalid rejects the answer with a message. An empty message falls back
// to the render config's default error message.
func Invalid(message string) Validation {
	return Validation{invalid: true, message: message}
}

// IsValid reports whether the answer was accepted.
func (v Validation) IsValid() bool { return !v.invalid }

// Message returns the rejection message.
func (v Validation) Message() string { return v.message }

// Validator checks a draft answer before it is accepted. Returning an error
// aborts the prompt with a *CustomError; returning Invalid keeps the prompt
// open and shows the message.
type Validator[T any] func(T) (Validation, error)

// StringValidator validates text answers.
type StringValidator = Validator[string]

// validate runs validators in order and reports the first rejection.
func validate[T any](validators []Validator[T], value T) (Validation, error) {
	for _, v := range validators {
		res, err := v(value)
		if err != nil {
			return Validation{}, &CustomError{Err: err}
		}
		if !res.IsValid() {
			return res, nil
		}
	}
	return Valid(), nil
}

// ValidateRequired rejects empty input.
func ValidateRequired(message string) StringValidator {
	if message == "" {
		message = "A response is required."
	}
	return func(s string) (Validation, error) {
		if s == "" {
			return Invalid(message), nil
		}
		return Valid(), nil
	}
}

// ValidateMinLength rejects input shorter than n characters.
func ValidateMinLength(n int, message string) StringValidator {
	if message == "" {
		message = fmt.Sprintf("The length of the response should be at least %d", n)
	}
	return func(s string) (Validation, error) {
		if utf8.RuneCountInString(s) < n {
			return Invalid(message), nil
		}
		return Valid(), nil
	}
}

// ValidateMaxLength rejects input longer than n characters.
func ValidateMaxLength(n int, message string) StringValidator {
	if message == "" {
		message = fmt.Sprintf("The length of the response should be at most %d", n)
	}
	return func(s string) (Validation, error) {
		if utf8.RuneCountInString(s) > n {
			return Invalid(message), nil
		}
		return Valid(), nil
	}
}

// ValidateMinSelected rejects multi selections with fewer than n options.
func ValidateMinSelected[T any](n int, message string) Validator[[]ListOption[T]] {
	if message == "" {
		message = fmt.Sprintf("Select at least %d options", n)
	}
	return func(opts []ListOption[T]) (Validation, error) {
		if len(opts) < n {
			return Invalid(message), nil
		}
		return Valid(), nil
	}
}
