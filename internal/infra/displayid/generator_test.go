package displayid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[string]struct{})

	for range 200 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, defaultLength)

		for _, r := range code {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected rune %q", r)
		}
		seen[code] = struct{}{}
	}

	// 31^8 possible codes; collisions in 200 draws would point at a broken source.
	assert.Len(t, seen, 200)
}
