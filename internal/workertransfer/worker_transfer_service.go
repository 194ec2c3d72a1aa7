package workertransfer

import (
	"context"
	"database/sql"
	"strings"

	"go-sitebooks/internal/ledger"
	"go-sitebooks/internal/shared/apperror"
	"go-sitebooks/internal/shared/contextutil"
	"go-sitebooks/internal/shared/dateutil"
	"go-sitebooks/internal/shared/money"
	"go-sitebooks/internal/shared/phone"
	workertransfererrors "go-sitebooks/internal/workertransfer/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=worker_transfer_service.go -destination=mock/worker_transfer_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req TransferRequest) (TransferResponse, error)
	GetAll(ctx context.Context, companyID string, f Filter) ([]TransferResponse, error)
	GetByID(ctx context.Context, companyID, id string) (TransferResponse, error)
	Update(ctx context.Context, companyID, id string, req TransferRequest) (TransferResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	publisher ledger.Publisher
	region    string
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, publisher ledger.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("workertransfer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workertransfer.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		publisher: publisher,
		region:    phone.DefaultRegion(),
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req TransferRequest) (TransferResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return TransferResponse{}, apperror.InvalidField("company_id")
	}
	t := &WorkerTransfer{ID: uuid.New(), CompanyID: companyUUID}
	if err := s.apply(t, req); err != nil {
		return TransferResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("create worker transfer begin tx failed", zap.Error(err))
		return TransferResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.ensureRefs(ctx, qtx, companyID, req.WorkerID, req.ProjectID); err != nil {
		return TransferResponse{}, err
	}
	if err := qtx.Create(ctx, t); err != nil {
		return TransferResponse{}, mapRepositoryError(err)
	}
	if err := s.publisher.Publish(ctx, tx, []ledger.Change{changeOf(t)}); err != nil {
		return TransferResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return TransferResponse{}, err
	}

	l.Info("worker transfer created",
		zap.String("transfer_id", t.ID.String()),
		zap.String("worker_id", req.WorkerID),
		zap.String("amount", t.Amount.String()),
	)
	return mapToResponse(TransferView{WorkerTransfer: *t}), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, f Filter) ([]TransferResponse, error) {
	rows, err := s.repo.FindAll(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	res := make([]TransferResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (TransferResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TransferResponse{}, workertransfererrors.ErrTransferNotFound
	}
	t, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return TransferResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(TransferView{WorkerTransfer: *t}), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req TransferRequest) (TransferResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TransferResponse{}, workertransfererrors.ErrTransferNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TransferResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, companyID, id)
	if err != nil {
		return TransferResponse{}, mapRepositoryError(err)
	}
	before := changeOf(t)

	if err := s.apply(t, req); err != nil {
		return TransferResponse{}, err
	}
	if err := s.ensureRefs(ctx, qtx, companyID, req.WorkerID, req.ProjectID); err != nil {
		return TransferResponse{}, err
	}
	if err := qtx.Update(ctx, t); err != nil {
		return TransferResponse{}, mapRepositoryError(err)
	}
	if err := s.publisher.Publish(ctx, tx, []ledger.Change{before, changeOf(t)}); err != nil {
		return TransferResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return TransferResponse{}, err
	}
	return mapToResponse(TransferView{WorkerTransfer: *t}), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return workertransfererrors.ErrTransferNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.publisher.Publish(ctx, tx, []ledger.Change{changeOf(t)}); err != nil {
		return err
	}
	return tx.Commit()
}

// apply validates req and copies it onto t.
func (s *service) apply(t *WorkerTransfer, req TransferRequest) error {
	workerID, err := uuid.Parse(req.WorkerID)
	if err != nil {
		return workertransfererrors.ErrWorkerNotFound
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return workertransfererrors.ErrProjectNotFound
	}
	amount := money.Round(req.Amount)
	if !money.Positive(amount) {
		return workertransfererrors.ErrInvalidAmount
	}
	name := strings.TrimSpace(req.RecipientName)
	if name == "" {
		return apperror.RequiredField("Recipient Name")
	}
	method := strings.ToLower(strings.TrimSpace(req.TransferMethod))
	if !IsValidMethod(method) {
		return workertransfererrors.ErrInvalidMethod
	}
	phoneNumber, err := phone.NormalizeOptional(req.RecipientPhone, s.region)
	if err != nil {
		return workertransfererrors.ErrInvalidPhone
	}
	date, err := dateutil.Parse("transfer_date", req.TransferDate)
	if err != nil {
		return err
	}

	t.WorkerID = workerID
	t.ProjectID = projectID
	t.Amount = amount
	t.RecipientName = name
	t.RecipientPhone = phoneNumber
	t.TransferMethod = method
	t.TransferNumber = req.TransferNumber
	t.TransferDate = date
	t.Notes = req.Notes
	return nil
}

func (s *service) ensureRefs(ctx context.Context, repo Repository, companyID, workerID, projectID string) error {
	ok, err := repo.WorkerExists(ctx, companyID, workerID)
	if err != nil {
		return err
	}
	if !ok {
		return workertransfererrors.ErrWorkerNotFound
	}
	ok, err = repo.ProjectExists(ctx, companyID, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return workertransfererrors.ErrProjectNotFound
	}
	return nil
}

func changeOf(t *WorkerTransfer) ledger.Change {
	return ledger.Change{
		CompanyID: t.CompanyID.String(),
		ProjectID: t.ProjectID.String(),
		Date:      t.TransferDate,
		Source:    ledger.SourceWorkerTransfer,
		SourceID:  t.ID.String(),
	}
}

func mapToResponse(v TransferView) TransferResponse {
	t := v.WorkerTransfer
	return TransferResponse{
		ID:             t.ID.String(),
		WorkerID:       t.WorkerID.String(),
		WorkerName:     v.WorkerName,
		ProjectID:      t.ProjectID.String(),
		ProjectName:    v.ProjectName,
		Amount:         t.Amount,
		RecipientName:  t.RecipientName,
		RecipientPhone: t.RecipientPhone,
		TransferMethod: t.TransferMethod,
		TransferNumber: t.TransferNumber,
		TransferDate:   dateutil.Format(t.TransferDate),
		Notes:          t.Notes,
	}
}
