package otp

import (
	"bytes"
	"crypto/rand"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode_SixDigitsInRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := NewCode(rand.Reader)
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestNewCode_DeterministicReader(t *testing.T) {
	// An all-zero entropy source always draws 0, the lowest code.
	code, err := NewCode(bytes.NewReader(make([]byte, 64)))
	require.NoError(t, err)
	assert.Equal(t, "100000", code)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestNewCode_ReaderFailure(t *testing.T) {
	_, err := NewCode(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate otp code")
}
