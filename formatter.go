package ask

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Formatter renders an accepted answer as the text echoed after the prompt.
type Formatter[T any] func(T) string

// DefaultStringFormatter echoes text answers unchanged.
func DefaultStringFormatter(s string) string { return s }

// DefaultBoolFormatter echoes Yes or No.
func DefaultBoolFormatter(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// DefaultDateFormatter echoes dates like "August 1, 2021".
func DefaultDateFormatter(t time.Time) string {
	return t.Format("January 2, 2006")
}

// DefaultOptionFormatter echoes the chosen option.
func DefaultOptionFormatter[T any](o ListOption[T]) string {
	return fmt.Sprint(o.Value)
}

// DefaultMultiOptionFormatter echoes the chosen options separated by commas.
func DefaultMultiOptionFormatter[T any](opts []ListOption[T]) string {
	parts := make([]string, 0, len(opts))
	for _, o := range opts {
		parts = append(parts, fmt.Sprint(o.Value))
	}
	return joinAnswers(parts)
}

func joinAnswers(parts []string) string {
	return strings.Join(parts, ", ")
}

// defaultPasswordFormatter never echoes the secret.
func defaultPasswordFormatter(string) string { return "********" }

// defaultEditorFormatter echoes a placeholder instead of the whole text.
func defaultEditorFormatter(string) string { return "<received>" }

// defaultFormatter returns a formatter for types with an obvious textual
// form: fmt.Stringer implementations, strings, booleans and numbers.
func defaultFormatter[T any]() (Formatter[T], bool) {
	var zero T
	if _, ok := any(zero).(fmt.Stringer); ok {
		return func(v T) string { return fmt.Sprint(v) }, true
	}
	if _, ok := any(&zero).(fmt.Stringer); ok {
		return func(v T) string { return fmt.Sprint(&v) }, true
	}
	switch reflect.TypeFor[T]().Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return func(v T) string { return fmt.Sprint(v) }, true
	}
	return nil, false
}
