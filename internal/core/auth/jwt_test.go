package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "udaan", TTL: time.Hour}

	tok, err := j.Issue("u-123", "student")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	c, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-123", c.UID)
	assert.Equal(t, "student", c.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "udaan", TTL: time.Hour}
	tok, err := j.Issue("u-123", "student")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("another-secret"), Issuer: "udaan", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "someone-else", TTL: time.Hour}
	tok, err := j.Issue("u-123", "student")
	require.NoError(t, err)

	mine := &JWTer{Secret: []byte("test-secret"), Issuer: "udaan", TTL: time.Hour}
	_, err = mine.Parse(tok)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "udaan", TTL: -2 * time.Minute}
	tok, err := j.Issue("u-123", "student")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}
