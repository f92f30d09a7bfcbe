package authentication

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func signClaims(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()

	tokenString, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return tokenString
}

func TestGenerateToken(t *testing.T) {
	t.Run("creates valid token with correct claims", func(t *testing.T) {
		tokenString, jti, err := GenerateToken(testSecret, 123, 15*time.Minute)

		require.NoError(t, err)
		assert.NotEmpty(t, jti)

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		assert.True(t, token.Valid)

		claims, ok := token.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, float64(123), claims["id"])
		assert.Equal(t, jti, claims["jti"])

		exp := int64(claims["exp"].(float64))
		iat := int64(claims["iat"].(float64))
		assert.InDelta(t, int64((15 * time.Minute).Seconds()), exp-iat, 1)
	})

	t.Run("generates unique JTI for each token", func(t *testing.T) {
		_, jti1, err := GenerateToken(testSecret, 1, time.Minute)
		require.NoError(t, err)

		_, jti2, err := GenerateToken(testSecret, 1, time.Minute)
		require.NoError(t, err)

		assert.NotEqual(t, jti1, jti2)
	})
}

func TestParseToken(t *testing.T) {
	t.Run("extracts user ID with or without Bearer prefix", func(t *testing.T) {
		tokenString, _, err := GenerateToken(testSecret, 456, 15*time.Minute)
		require.NoError(t, err)

		userID, err := ParseToken(testSecret, tokenString)
		require.NoError(t, err)
		assert.Equal(t, uint(456), userID)

		userID, err = ParseToken(testSecret, "Bearer "+tokenString)
		require.NoError(t, err)
		assert.Equal(t, uint(456), userID)
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		tokenString, _, err := GenerateToken(testSecret, 789, -1*time.Hour)
		require.NoError(t, err)

		_, err = ParseToken(testSecret, tokenString)
		assert.ErrorContains(t, err, "expired")
	})

	t.Run("rejects tokens with invalid signature", func(t *testing.T) {
		tokenString, _, err := GenerateToken("different-secret", 321, 15*time.Minute)
		require.NoError(t, err)

		_, err = ParseToken(testSecret, tokenString)
		assert.Error(t, err)
	})

	t.Run("rejects unsigned tokens", func(t *testing.T) {
		tokenString := signClaims(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{
			"id":  float64(1),
			"exp": time.Now().Add(time.Minute).Unix(),
		})

		_, err := ParseToken(testSecret, tokenString)
		assert.Error(t, err)
	})

	t.Run("rejects missing, empty or zero user ID", func(t *testing.T) {
		for _, id := range []interface{}{nil, "", float64(0)} {
			claims := jwt.MapClaims{"exp": time.Now().Add(time.Minute).Unix()}
			if id != nil {
				claims["id"] = id
			}

			_, err := ParseToken(testSecret, signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
			assert.ErrorIs(t, err, ErrInvalidToken, "id claim %v", id)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, invalidToken := range []string{"", "random-string", "Bearer ", "not.a.valid.jwt", strings.Repeat("a", 1000)} {
			_, err := ParseToken(testSecret, invalidToken)
			assert.Error(t, err, "should reject %q", invalidToken)
		}
	})
}
