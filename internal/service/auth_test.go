package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sibaq/festival-api/internal/domain"
)

func TestAuthServiceLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("festival2026"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubUserRepo{users: []domain.User{
		{ID: 1, Username: "admin", Password: string(hash), Role: domain.RoleAdmin},
	}}
	svc := NewAuthService(repo)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(context.Background(), "admin", "festival2026")

		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ghost", "festival2026")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "admin", "wrong")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})
}
