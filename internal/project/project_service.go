package project

import (
	"context"
	"database/sql"
	"strings"

	projecterrors "go-sitebooks/internal/project/errors"
	"go-sitebooks/internal/shared/apperror"
	"go-sitebooks/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateProjectRequest) (ProjectResponse, error)
	GetAll(ctx context.Context, companyID string, status string) ([]ProjectResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ProjectResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateProjectRequest) (ProjectResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ProjectResponse{}, apperror.InvalidField("company_id")
	}
	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = StatusActive
	}
	if !IsValidStatus(status) {
		return ProjectResponse{}, projecterrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p := &Project{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		Name:        strings.TrimSpace(req.Name),
		Status:      status,
		Description: req.Description,
	}
	if err := qtx.Create(ctx, p); err != nil {
		l.Warn("create project failed", zap.Error(err))
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}

	l.Info("project created", zap.String("project_id", p.ID.String()))
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, status string) ([]ProjectResponse, error) {
	if status != "" && !IsValidStatus(status) {
		return nil, projecterrors.ErrInvalidStatus
	}
	projects, err := s.repo.FindAllByCompany(ctx, companyID, status)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ProjectResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidProjectID
	}
	p, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateProjectRequest) (ProjectResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ProjectResponse{}, projecterrors.ErrInvalidProjectID
	}
	if req.Status != "" && !IsValidStatus(req.Status) {
		return ProjectResponse{}, projecterrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProjectResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	p.Name = strings.TrimSpace(req.Name)
	if req.Status != "" {
		p.Status = req.Status
	}
	p.Description = req.Description

	if err := qtx.Update(ctx, p); err != nil {
		return ProjectResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return ProjectResponse{}, err
	}
	return mapToResponse(*p), nil
}

// Delete refuses projects that still carry ledger records; those must be
// removed first so the daily summaries stay consistent.
func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return projecterrors.ErrInvalidProjectID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	used, err := qtx.HasLedgerRecords(ctx, companyID, id)
	if err != nil {
		return err
	}
	if used {
		return projecterrors.ErrProjectHasLedger
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	return tx.Commit()
}

func mapToResponse(p Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID.String(),
		CompanyID:   p.CompanyID.String(),
		Name:        p.Name,
		Status:      p.Status,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
