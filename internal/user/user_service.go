package user

import (
	"context"
	"strings"

	"go-sitebooks/internal/domain"
	"go-sitebooks/internal/shared/contextutil"
	usererrors "go-sitebooks/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, companyID string) ([]UserResponse, error)
	GetByID(ctx context.Context, companyID, id string) (UserResponse, error)
	Create(ctx context.Context, companyID string, req CreateUserRequest) (UserResponse, error)
	UpdateRole(ctx context.Context, companyID, actorID, id, role string) (UserResponse, error)
	ToggleStatus(ctx context.Context, companyID, actorID, id string, isActive bool) error
	ChangePassword(ctx context.Context, companyID, userID, currentPassword, newPassword string) error
	ResetPassword(ctx context.Context, companyID, userID, newPassword string) error
}

type service struct {
	repo   Repository
	cost   int
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, cost: bcrypt.DefaultCost, logger: l}
}

// NewServiceWithCost lets tests trade hash strength for speed.
func NewServiceWithCost(repo Repository, cost int) Service {
	return &service{repo: repo, cost: cost, logger: zap.NewNop()}
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]UserResponse, error) {
	users, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = mapToResponse(&users[i])
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(u), nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidCompanyID
	}
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if !domain.IsValidRole(role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		CompanyID: companyUUID,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  string(hashed),
		Role:      role,
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		l.Error("failed to create user", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	l.Info("user created", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return mapToResponse(u), nil
}

func (s *service) UpdateRole(ctx context.Context, companyID, actorID, id, role string) (UserResponse, error) {
	role = strings.ToUpper(strings.TrimSpace(role))
	if !domain.IsValidRole(role) {
		return UserResponse{}, usererrors.ErrInvalidRole
	}
	if actorID == id {
		return UserResponse{}, usererrors.ErrCannotModifySelf
	}

	u, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	u.Role = role
	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("user role changed", zap.String("user_id", id), zap.String("role", role))
	return mapToResponse(u), nil
}

func (s *service) ToggleStatus(ctx context.Context, companyID, actorID, id string, isActive bool) error {
	if actorID == id {
		return usererrors.ErrCannotModifySelf
	}
	u, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	u.IsActive = isActive
	if err := s.repo.Update(ctx, u); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to update user status", zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}

func (s *service) ChangePassword(ctx context.Context, companyID, userID, currentPassword, newPassword string) error {
	u, err := s.repo.FindByID(ctx, companyID, userID)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(currentPassword)); err != nil {
		return usererrors.ErrWrongPassword
	}
	return s.setPassword(ctx, u, newPassword)
}

func (s *service) ResetPassword(ctx context.Context, companyID, userID, newPassword string) error {
	u, err := s.repo.FindByID(ctx, companyID, userID)
	if err != nil {
		return mapRepositoryError(err)
	}
	return s.setPassword(ctx, u, newPassword)
}

func (s *service) setPassword(ctx context.Context, u *User, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to hash new password", zap.Error(err))
		return err
	}
	u.Password = string(hashed)
	return mapRepositoryError(s.repo.Update(ctx, u))
}

func mapToResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
