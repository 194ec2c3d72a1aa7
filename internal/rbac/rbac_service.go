package rbac

import (
	"context"
	"sort"
	"sync"

	"go-sitebooks/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadCompanyPolicy(ctx context.Context, companyID string) error
	Enforce(req domain.EnforceRequest) (bool, error)
	Roles() []domain.RoleResponse
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{repo: repo, enforcer: enforcer, logger: l}
}

func (s *service) LoadCompanyPolicy(ctx context.Context, companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadCompanyPolicyUnlocked(ctx, companyID)
}

// The enforcer only ever holds one company's policy; it is rebuilt on
// every check so role changes apply immediately.
func (s *service) loadCompanyPolicyUnlocked(ctx context.Context, companyID string) error {
	s.enforcer.ClearPolicy()

	userRoles, err := s.repo.GetUserRoles(ctx, companyID)
	if err != nil {
		return err
	}
	for _, ur := range userRoles {
		if _, err := s.enforcer.AddGroupingPolicy(ur.UserID, ur.Role, companyID); err != nil {
			return err
		}
	}

	for role, perms := range DefaultPolicy() {
		for _, p := range perms {
			if _, err := s.enforcer.AddPolicy(role, companyID, p.Resource, p.Action); err != nil {
				return err
			}
		}
	}

	extra, err := s.repo.GetRolePermissions(ctx, companyID)
	if err != nil {
		return err
	}
	for _, rp := range extra {
		// AddPolicy reports false for duplicates of the defaults; that is fine.
		if _, err := s.enforcer.AddPolicy(rp.Role, companyID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	if err := s.enforcer.BuildRoleLinks(); err != nil {
		return err
	}

	s.logger.Debug("rbac policy loaded",
		zap.String("company_id", companyID),
		zap.Int("user_roles", len(userRoles)),
		zap.Int("extra_permissions", len(extra)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicyUnlocked(context.Background(), req.CompanyID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.UserID, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("user_id", req.UserID),
			zap.String("company_id", req.CompanyID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("user_id", req.UserID),
		zap.String("company_id", req.CompanyID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// Roles describes the built-in permission matrix.
func (s *service) Roles() []domain.RoleResponse {
	policy := DefaultPolicy()
	out := make([]domain.RoleResponse, 0, len(domain.Roles))
	for _, role := range domain.Roles {
		perms := make([]string, 0, len(policy[role]))
		for _, p := range policy[role] {
			perms = append(perms, p.Resource+":"+p.Action)
		}
		sort.Strings(perms)
		out = append(out, domain.RoleResponse{Name: role, Permissions: perms})
	}
	return out
}
