// Package displayid generates the short cart codes shown to customers and shops.
package displayid

import (
	"crypto/rand"
	"math/big"

	"surplus/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	// Ambiguous glyphs (0/O, 1/I/L) are excluded.
	alphabet      = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"
	defaultLength = 8
)

type randomGenerator struct {
	length int
}

// NewGenerator returns a generator of uppercase codes of the default length.
func NewGenerator() service.DisplayIDGenerator {
	return &randomGenerator{length: defaultLength}
}

func (g *randomGenerator) Generate() (string, error) {
	limit := big.NewInt(int64(len(alphabet)))
	code := make([]byte, g.length)

	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}
