package ask

import (
	"errors"
	"strconv"
	"strings"
)

// Parser converts the text typed by the user into an answer. A returned
// error means the text is not a valid answer; the prompt stays open.
type Parser[T any] func(string) (T, error)

var errUnparsable = errors.New("unparsable input")

// DefaultBoolParser accepts y, yes, n and no in any letter case.
func DefaultBoolParser(s string) (bool, error) {
	if len(s) > 3 {
		return false, errUnparsable
	}
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, errUnparsable
}

// defaultParser returns a parser for strings, booleans and the common
// numeric types. Surrounding whitespace is ignored for numbers.
func defaultParser[T any]() (Parser[T], bool) {
	var zero T
	var p any
	switch any(zero).(type) {
	case string:
		p = Parser[string](func(s string) (string, error) { return s, nil })
	case bool:
		p = Parser[bool](DefaultBoolParser)
	case int:
		p = Parser[int](func(s string) (int, error) { return strconv.Atoi(strings.TrimSpace(s)) })
	case int64:
		p = Parser[int64](func(s string) (int64, error) { return strconv.ParseInt(strings.TrimSpace(s), 10, 64) })
	case uint:
		p = Parser[uint](func(s string) (uint, error) {
			n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 0)
			return uint(n), err
		})
	case uint64:
		p = Parser[uint64](func(s string) (uint64, error) { return strconv.ParseUint(strings.TrimSpace(s), 10, 64) })
	case float64:
		p = Parser[float64](func(s string) (float64, error) { return strconv.ParseFloat(strings.TrimSpace(s), 64) })
	case float32:
		p = Parser[float32](func(s string) (float32, error) {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
			return float32(f), err
		})
	default:
		return nil, false
	}
	parser, ok := p.(Parser[T])
	return parser, ok
}
