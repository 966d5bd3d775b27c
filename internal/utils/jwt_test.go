package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClaims struct {
	Note string `json:"note"`
	jwt.RegisteredClaims
}

func TestSignAndParse(t *testing.T) {
	raw, err := SignHS256("s3cret", testClaims{Note: "hi", RegisteredClaims: ExpiringClaims(time.Now(), time.Minute)})
	require.NoError(t, err)

	var got testClaims
	require.NoError(t, ParseHS256("s3cret", raw, &got))
	assert.Equal(t, "hi", got.Note)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	raw, err := SignHS256("a", testClaims{Note: "x"})
	require.NoError(t, err)
	assert.ErrorIs(t, ParseHS256("b", raw, &testClaims{}), ErrInvalidToken)
}

func TestParseRejectsExpired(t *testing.T) {
	raw, err := SignHS256("a", testClaims{RegisteredClaims: ExpiringClaims(time.Now().Add(-time.Hour), time.Minute)})
	require.NoError(t, err)
	assert.ErrorIs(t, ParseHS256("a", raw, &testClaims{}), ErrInvalidToken)
}

func TestParseRejectsNone(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, testClaims{Note: "x"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	assert.ErrorIs(t, ParseHS256("a", raw, &testClaims{}), ErrInvalidToken)
}

func TestSignRequiresSecret(t *testing.T) {
	_, err := SignHS256("", testClaims{})
	assert.Error(t, err)
}
