package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	b := NewWithCost(4)

	hash, err := b.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, b.ComparePassword(hash, "hunter22"))
	assert.Error(t, b.ComparePassword(hash, "wrong"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	b := NewWithCost(4)

	first, err := b.HashPassword("hunter22")
	require.NoError(t, err)
	second, err := b.HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
