package token

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducesUrlSafeToken(t *testing.T) {
	tok, err := New()
	require.NoError(t, err)

	decoded, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, decoded, entropyBytes)

	assert.NotContains(t, tok, "+")
	assert.NotContains(t, tok, "/")
	assert.NotContains(t, tok, "=")
}

func TestNewProducesDistinctTokens(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		tok, err := New()
		require.NoError(t, err)

		_, exists := seen[tok]
		assert.False(t, exists, "token generated twice")
		seen[tok] = struct{}{}
	}
}
