package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		tok, err := NewChangeToken()
		require.NoError(t, err)
		assert.Len(t, tok, 32)
		assert.False(t, seen[tok], "token collision")
		seen[tok] = true
	}
}
