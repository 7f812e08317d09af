package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("2388")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "", "2388"))
	assert.False(t, CheckPassword(hash, "", "2389"))
	assert.False(t, CheckPassword(hash, "wrong", "wrong"), "hash wins over legacy plaintext")

	assert.True(t, CheckPassword("", "1234", "1234"))
	assert.False(t, CheckPassword("", "1234", "12345"))
	assert.False(t, CheckPassword("", "", ""))
}
