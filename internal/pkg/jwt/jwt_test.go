package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateToken(42, testSecret, 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.NotEmpty(t, claims.ID)
}

func TestExpirySetTwentyFourHoursOut(t *testing.T) {
	before := time.Now()
	token, err := GenerateToken(1, testSecret, 24)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)

	// A token issued at T must still be live just short of T+24h and dead
	// just past it; the embedded expiry pins both sides.
	expiresAt := claims.ExpiresAt.Time
	assert.True(t, expiresAt.After(before.Add(23*time.Hour+59*time.Minute)))
	assert.True(t, expiresAt.Before(before.Add(24*time.Hour+time.Minute)))
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	claims := Claims{
		UserID: 7,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, testSecret, 24)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsMalformedToken(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b.c", "ey.ey.ey"} {
		_, err := ValidateToken(tok, testSecret)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", tok)
	}
}

func TestValidateRejectsUnsignedToken(t *testing.T) {
	claims := Claims{
		UserID: 7,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
