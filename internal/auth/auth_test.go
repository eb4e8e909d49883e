package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenManager(t *testing.T) {
	t.Run("выпуск и проверка токена", func(t *testing.T) {
		m := NewTokenManager("secret", time.Hour)

		token, err := m.Generate("user-1")
		require.NoError(t, err)

		userID, err := m.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("ошибка: истекший токен", func(t *testing.T) {
		m := NewTokenManager("secret", time.Hour)
		issued := time.Now().Add(-2 * time.Hour)
		m.now = func() time.Time { return issued }

		token, err := m.Generate("user-1")
		require.NoError(t, err)

		m.now = time.Now
		_, err = m.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("ошибка: чужая подпись", func(t *testing.T) {
		token, err := NewTokenManager("other", time.Hour).Generate("user-1")
		require.NoError(t, err)

		_, err = NewTokenManager("secret", time.Hour).Verify(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("ошибка: мусор вместо токена", func(t *testing.T) {
		_, err := NewTokenManager("secret", time.Hour).Verify("not-a-token")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("ошибка: токен без userId", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		signed, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = NewTokenManager("secret", time.Hour).Verify(signed)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, h.Compare(hash, "secret1"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), ErrPasswordMismatch)
}
