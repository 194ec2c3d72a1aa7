package worker

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"go-sitebooks/internal/shared/apperror"
	"go-sitebooks/internal/shared/contextutil"
	"go-sitebooks/internal/shared/money"
	"go-sitebooks/internal/shared/phone"
	workererrors "go-sitebooks/internal/worker/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	WorkerOptionsKeyPrefix = "workers:options:"
	optionsCacheTTL        = time.Hour
)

func GetWorkerOptionsKey(companyID string) string {
	return WorkerOptionsKeyPrefix + companyID
}

//go:generate mockgen -source=worker_service.go -destination=mock/worker_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateWorkerRequest) (WorkerResponse, error)
	GetAll(ctx context.Context, companyID string) ([]WorkerResponse, error)
	GetOptions(ctx context.Context, companyID string) ([]WorkerOption, error)
	GetByID(ctx context.Context, companyID, id string) (WorkerResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateWorkerRequest) (WorkerResponse, error)
	ToggleActive(ctx context.Context, companyID, id string, isActive bool) (WorkerResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	region string
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("worker.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("worker.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		region: phone.DefaultRegion(),
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateWorkerRequest) (WorkerResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return WorkerResponse{}, apperror.InvalidField("company_id")
	}
	if !money.Positive(req.DailyWage) {
		return WorkerResponse{}, workererrors.ErrInvalidDailyWage
	}
	phoneNumber, err := phone.NormalizeOptional(req.Phone, s.region)
	if err != nil {
		return WorkerResponse{}, workererrors.ErrInvalidPhone
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("create worker begin tx failed", zap.Error(err))
		return WorkerResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w := &Worker{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Name:      strings.TrimSpace(req.Name),
		Type:      strings.TrimSpace(req.Type),
		DailyWage: money.Round(req.DailyWage),
		Phone:     phoneNumber,
		IsActive:  req.IsActive == nil || *req.IsActive,
	}
	if err := qtx.Create(ctx, w); err != nil {
		l.Warn("create worker persist failed", zap.Error(err))
		return WorkerResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return WorkerResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	l.Info("worker created", zap.String("worker_id", w.ID.String()))
	return mapToResponse(*w), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]WorkerResponse, error) {
	workers, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(workers), nil
}

func (s *service) GetOptions(ctx context.Context, companyID string) ([]WorkerOption, error) {
	cacheKey := GetWorkerOptionsKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []WorkerOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		workers, err := s.repo.FindActiveByCompany(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]WorkerOption, len(workers))
		for i, w := range workers {
			resp[i] = WorkerOption{ID: w.ID.String(), Name: w.Name, Type: w.Type, DailyWage: w.DailyWage}
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, data, optionsCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]WorkerOption), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (WorkerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return WorkerResponse{}, workererrors.ErrInvalidWorkerID
	}
	w, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return WorkerResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*w), nil
}

// Update changes the master data only. Attendance rows keep the wage
// snapshot they were recorded with.
func (s *service) Update(ctx context.Context, companyID, id string, req UpdateWorkerRequest) (WorkerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return WorkerResponse{}, workererrors.ErrInvalidWorkerID
	}
	if !money.Positive(req.DailyWage) {
		return WorkerResponse{}, workererrors.ErrInvalidDailyWage
	}
	phoneNumber, err := phone.NormalizeOptional(req.Phone, s.region)
	if err != nil {
		return WorkerResponse{}, workererrors.ErrInvalidPhone
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkerResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return WorkerResponse{}, mapRepositoryError(err)
	}
	w.Name = strings.TrimSpace(req.Name)
	w.Type = strings.TrimSpace(req.Type)
	w.DailyWage = money.Round(req.DailyWage)
	w.Phone = phoneNumber

	if err := qtx.Update(ctx, w); err != nil {
		return WorkerResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return WorkerResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	return mapToResponse(*w), nil
}

func (s *service) ToggleActive(ctx context.Context, companyID, id string, isActive bool) (WorkerResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return WorkerResponse{}, workererrors.ErrInvalidWorkerID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkerResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return WorkerResponse{}, mapRepositoryError(err)
	}
	w.IsActive = isActive
	if err := qtx.Update(ctx, w); err != nil {
		return WorkerResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return WorkerResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	return mapToResponse(*w), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return workererrors.ErrInvalidWorkerID
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
		return workererrors.ErrWorkerHasLedger
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateOptions(ctx, companyID)
	return nil
}

func (s *service) invalidateOptions(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetWorkerOptionsKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate worker options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:        w.ID.String(),
		Name:      w.Name,
		Type:      w.Type,
		DailyWage: w.DailyWage,
		Phone:     w.Phone,
		IsActive:  w.IsActive,
		CreatedAt: w.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapToListResponse(workers []Worker) []WorkerResponse {
	res := make([]WorkerResponse, len(workers))
	for i, w := range workers {
		res[i] = mapToResponse(w)
	}
	return res
}
