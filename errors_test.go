package bitconv

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKind_Text(t *testing.T) {
	for kind, name := range kindNames {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, kind.String())

			b, err := kind.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, name, string(b))

			var got ErrorKind
			require.NoError(t, got.UnmarshalText(b))
			assert.Equal(t, kind, got)
		})
	}

	assert.Equal(t, "ErrorKind(0)", ErrorKind(0).String())
	_, err := ErrorKind(0).MarshalText()
	assert.Error(t, err)

	var k ErrorKind
	assert.Error(t, k.UnmarshalText([]byte("Boom")))
}

func TestConversionError_Wrapping(t *testing.T) {
	_, err := Encode("2", 1, Binary)
	require.Error(t, err)

	wrapped := fmt.Errorf("convert field: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidFormat))

	ce, ok := AsConversionError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindInvalidFormat, ce.Kind)
	assert.Equal(t, Binary, ce.Notation)

	_, ok = AsConversionError(errors.New("other"))
	assert.False(t, ok)
}
