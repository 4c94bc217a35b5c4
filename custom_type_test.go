package ask

import (
	"errors"
	"fmt"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomTypeNumbers(t *testing.T) {
	t.Parallel()

	t.Run("float with default parser", func(t *testing.T) {
		t.Parallel()

		keys := append(StringKeys("abc\n"), CtrlChar('u'))
		keys = append(keys, StringKeys("10.5\n")...)
		m := NewMockTerminal(keys...)
		amount := NewCustomType[float64]("Amount", mockOptions(m)...)
		amount.ErrorMessage = "Please type a valid number"

		v, err := amount.Prompt()
		require.NoError(t, err)
		assert.InDelta(t, 10.5, v, 1e-9)
		assert.Equal(t, 1, framesContaining(m, "# Please type a valid number"))
		assert.Contains(t, m.Output(), "? Amount 10.5")
	})

	t.Run("default value", func(t *testing.T) {
		t.Parallel()

		m := NewMockTerminal(Key{Type: KeyEnter})
		port := NewCustomType[int]("Port", mockOptions(m)...)
		def := 8080
		port.Default = &def

		v, err := port.Prompt()
		require.NoError(t, err)
		assert.Equal(t, 8080, v)
		assert.Equal(t, []string{"? Port (8080)  "}, plainLines(m.Frames()[0]))
	})

	t.Run("empty error message uses the default", func(t *testing.T) {
		t.Parallel()

		m := NewMockTerminal(append(StringKeys("x\n"), Key{Type: KeyBackspace}, Char('1'), Key{Type: KeyEnter})...)
		v, err := NewCustomType[uint]("Count", mockOptions(m)...).Prompt()
		require.NoError(t, err)
		assert.Equal(t, uint(1), v)
		assert.Equal(t, 1, framesContaining(m, "# Invalid input."))
	})

	t.Run("validators see the parsed value", func(t *testing.T) {
		t.Parallel()

		m := NewMockTerminal(append(StringKeys("70000\n"), CtrlChar('u'), Char('8'), Key{Type: KeyEnter})...)
		port := NewCustomType[int]("Port", mockOptions(m)...)
		port.Validators = []Validator[int]{func(p int) (Validation, error) {
			if p > 65535 {
				return Invalid(fmt.Sprintf("%d is not a port", p)), nil
			}
			return Valid(), nil
		}}

		v, err := port.Prompt()
		require.NoError(t, err)
		assert.Equal(t, 8, v)
		assert.Equal(t, 1, framesContaining(m, "# 70000 is not a port"))
	})
}

func TestCustomTypeWithParser(t *testing.T) {
	t.Parallel()

	m := NewMockTerminal(StringKeys("10.0.0.1\n")...)
	addr := NewCustomType[netip.Addr]("Address", mockOptions(m)...)
	addr.Parser = netip.ParseAddr
	addr.Placeholder = "127.0.0.1"

	v, err := addr.Prompt()
	require.NoError(t, err)
	assert.Equal(t, netip.MustParseAddr("10.0.0.1"), v)
	assert.Equal(t, []string{"? Address 127.0.0.1 "}, plainLines(m.Frames()[0]))
	assert.Contains(t, m.Output(), "? Address 10.0.0.1", "netip.Addr is a Stringer")
}

func TestCustomTypeStartingInput(t *testing.T) {
	t.Parallel()

	m := NewMockTerminal(Char('0'), Key{Type: KeyEnter})
	c := NewCustomType[int]("Timeout", mockOptions(m)...)
	c.StartingInput = "3"

	v, err := c.Prompt()
	require.NoError(t, err)
	assert.Equal(t, 30, v)
}

func TestCustomTypeInvalidConfig(t *testing.T) {
	t.Parallel()

	type pair struct{ A, B int }

	t.Run("missing parser", func(t *testing.T) {
		t.Parallel()

		m := NewMockTerminal()
		_, err := NewCustomType[pair]("Pair", mockOptions(m)...).Prompt()
		var cfgErr *InvalidConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, "set Parser")
		assert.Zero(t, m.SetRawCalls())
	})

	t.Run("missing formatter", func(t *testing.T) {
		t.Parallel()

		m := NewMockTerminal()
		c := NewCustomType[pair]("Pair", mockOptions(m)...)
		c.Parser = func(string) (pair, error) { return pair{}, nil }
		_, err := c.Prompt()
		var cfgErr *InvalidConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Reason, "set Formatter")
	})
}

func TestCustomTypeValidatorError(t *testing.T) {
	t.Parallel()

	boom := errors.New("quota service down")
	m := NewMockTerminal(StringKeys("5\n")...)
	c := NewCustomType[int]("Quota", mockOptions(m)...)
	c.Validators = []Validator[int]{func(int) (Validation, error) { return Validation{}, boom }}

	_, err := c.Prompt()
	require.ErrorIs(t, err, boom)
	assertRestored(t, m)
}
