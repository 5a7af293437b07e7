package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtract(t *testing.T) {
	token, err := GenerateToken("admin-local", "admin@bau.koon", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-local", sub)
}

func TestExtractRejectsExpired(t *testing.T) {
	token, err := GenerateToken("admin-local", "admin@bau.koon", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestExtractRejectsGarbage(t *testing.T) {
	_, err := ExtractIDFromToken("not.a.jwt")
	assert.Error(t, err)

	_, err = ExtractIDFromToken("")
	assert.Error(t, err)
}

func TestHashToken(t *testing.T) {
	// Hash must be stable: session validation compares stored hashes.
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
