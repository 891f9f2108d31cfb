package id

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/cockroachdb/errors"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return hex.EncodeToString(buf), nil
}

// Prefixed returns an ID with a short type tag, e.g. "shift_3fa4...".
func Prefixed(g Generator, prefix string) (string, error) {
	raw, err := g.NewID()
	if err != nil {
		return "", err
	}
	if prefix == "" {
		return raw, nil
	}
	return prefix + "_" + raw, nil
}
