package otp

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

var codeRange = big.NewInt(900000)

// NewCode draws a uniformly random 6-digit passcode (100000–999999) from r.
// Callers pass crypto/rand.Reader in production and a deterministic reader
// in tests.
func NewCode(r io.Reader) (string, error) {
	n, err := rand.Int(r, codeRange)
	if err != nil {
		return "", fmt.Errorf("generate otp code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
