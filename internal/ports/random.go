package ports

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomSource produces cryptographically secure random material. Injectable
// so tests can substitute deterministic sequences; production callers use
// CryptoRand.
type RandomSource interface {
	// Bytes returns n random bytes.
	Bytes(n int) ([]byte, error)
	// Text returns a uniform random alphanumeric [A-Za-z0-9] string of
	// length n.
	Text(n int) (string, error)
}

const textAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// CryptoRand is the production RandomSource backed by crypto/rand.
type CryptoRand struct{}

var _ RandomSource = CryptoRand{}

func (CryptoRand) Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return buf, nil
}

func (CryptoRand) Text(n int) (string, error) {
	alphabetLen := big.NewInt(int64(len(textAlphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("read random index: %w", err)
		}
		out[i] = textAlphabet[idx.Int64()]
	}
	return string(out), nil
}
