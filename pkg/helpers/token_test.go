package helpers

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIKey(t *testing.T) {
	key, err := NewAPIKey()
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(key)
	require.NoError(t, err, "key must be URL-safe base64")
	assert.Len(t, raw, APIKeyBytes)
}

func TestNewAPIKey_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		key, err := NewAPIKey()
		require.NoError(t, err)
		_, dup := seen[key]
		require.False(t, dup, "generated a duplicate key")
		seen[key] = struct{}{}
	}
}
