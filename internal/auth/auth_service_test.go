package auth_test

import (
	"context"
	"errors"
	"testing"

	"go-sitebooks/internal/auth"
	autherrors "go-sitebooks/internal/auth/errors"
	authMock "go-sitebooks/internal/auth/mock"
	"go-sitebooks/internal/auth/token"
	"go-sitebooks/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newUser(t *testing.T, password string) *auth.User {
	t.Helper()
	pw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &auth.User{
		ID:        uuid.New(),
		CompanyID: uuid.New(),
		Email:     "owner@example.com",
		Name:      "Owner",
		Password:  string(pw),
		Role:      domain.RoleOwner,
		IsActive:  true,
	}
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	ctrl := gomock.NewController(t)

	repo := authMock.NewMockRepository(ctrl)
	policy := authMock.NewMockPolicyLoader(ctrl)
	svc := auth.NewService(repo, policy)
	ctx := context.Background()

	user := newUser(t, "password123")

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
		policy.EXPECT().LoadCompanyPolicy(ctx, user.CompanyID.String()).Return(nil)

		pair, resp, err := svc.Login(ctx, user.Email, "password123")
		assert.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
		assert.Equal(t, domain.RoleOwner, resp.Role)

		claims, err := token.Parse([]byte(testSecret), pair.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims["user_id"])
		assert.Equal(t, user.CompanyID.String(), claims["company_id"])
		assert.Equal(t, token.TypeAccess, claims["type"])
	})

	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)

		_, _, err := svc.Login(ctx, user.Email, "nope")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, errors.New("record not found"))

		_, _, err := svc.Login(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		inactive := *user
		inactive.IsActive = false
		repo.EXPECT().GetByEmail(ctx, user.Email).Return(&inactive, nil)

		_, _, err := svc.Login(ctx, user.Email, "password123")
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	ctrl := gomock.NewController(t)

	repo := authMock.NewMockRepository(ctrl)
	policy := authMock.NewMockPolicyLoader(ctrl)
	svc := auth.NewService(repo, policy)
	ctx := context.Background()
	user := newUser(t, "password123")

	repo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
	policy.EXPECT().LoadCompanyPolicy(ctx, gomock.Any()).Return(nil)
	pair, _, err := svc.Login(ctx, user.Email, "password123")
	assert.NoError(t, err)

	t.Run("refresh token accepted", func(t *testing.T) {
		repo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)

		next, resp, err := svc.RefreshToken(ctx, pair.RefreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, next.AccessToken)
		assert.Equal(t, user.Email, resp.Email)
	})

	t.Run("access token rejected", func(t *testing.T) {
		_, _, err := svc.RefreshToken(ctx, pair.AccessToken)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, _, err := svc.RefreshToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestService_GetMe(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	ctrl := gomock.NewController(t)

	repo := authMock.NewMockRepository(ctrl)
	svc := auth.NewService(repo, nil)
	ctx := context.Background()
	user := newUser(t, "pw")

	repo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	resp, err := svc.GetMe(ctx, user.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), resp.ID)

	_, err = svc.GetMe(ctx, "bad-id")
	assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
}
