package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	require.True(t, CompareHashAndPassword(hash, "secret1"))
	require.False(t, CompareHashAndPassword(hash, "secret2"))
}
