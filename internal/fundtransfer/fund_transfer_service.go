package fundtransfer

import (
	"context"
	"database/sql"
	"strings"

	fundtransfererrors "go-sitebooks/internal/fundtransfer/errors"
	"go-sitebooks/internal/ledger"
	"go-sitebooks/internal/shared/apperror"
	"go-sitebooks/internal/shared/contextutil"
	"go-sitebooks/internal/shared/dateutil"
	"go-sitebooks/internal/shared/money"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=fund_transfer_service.go -destination=mock/fund_transfer_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req FundTransferRequest) (FundTransferResponse, error)
	GetAll(ctx context.Context, companyID string, f Filter) ([]FundTransferResponse, error)
	GetByID(ctx context.Context, companyID, id string) (FundTransferResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	CreateProjectTransfer(ctx context.Context, companyID string, req ProjectTransferRequest) (ProjectTransferResponse, error)
	GetProjectTransfers(ctx context.Context, companyID string, f Filter) ([]ProjectTransferResponse, error)
	GetProjectTransferByID(ctx context.Context, companyID, id string) (ProjectTransferResponse, error)
	DeleteProjectTransfer(ctx context.Context, companyID, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	publisher ledger.Publisher
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, publisher ledger.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("fundtransfer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("fundtransfer.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		publisher: publisher,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req FundTransferRequest) (FundTransferResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return FundTransferResponse{}, apperror.InvalidField("company_id")
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return FundTransferResponse{}, fundtransfererrors.ErrProjectNotFound
	}
	amount := money.Round(req.Amount)
	if !money.Positive(amount) {
		return FundTransferResponse{}, fundtransfererrors.ErrInvalidAmount
	}
	date, err := dateutil.Parse("transfer_date", req.TransferDate)
	if err != nil {
		return FundTransferResponse{}, err
	}

	t := &FundTransfer{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		ProjectID:      projectID,
		Amount:         amount,
		SenderName:     trimmed(req.SenderName),
		TransferType:   strings.ToLower(req.TransferType),
		TransferNumber: trimmed(req.TransferNumber),
		TransferDate:   date,
		Notes:          req.Notes,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("create fund transfer begin tx failed", zap.Error(err))
		return FundTransferResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := ensureProject(ctx, qtx, companyID, req.ProjectID); err != nil {
		return FundTransferResponse{}, err
	}
	if err := qtx.Create(ctx, t); err != nil {
		return FundTransferResponse{}, mapRepositoryError(err, fundtransfererrors.ErrFundTransferNotFound)
	}
	if err := s.publisher.Publish(ctx, tx, []ledger.Change{fundChange(t)}); err != nil {
		return FundTransferResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return FundTransferResponse{}, err
	}

	l.Info("fund transfer created",
		zap.String("transfer_id", t.ID.String()),
		zap.String("project_id", req.ProjectID),
		zap.String("amount", amount.String()),
	)
	return mapFundTransfer(FundTransferView{FundTransfer: *t}), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, f Filter) ([]FundTransferResponse, error) {
	rows, err := s.repo.FindAll(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	res := make([]FundTransferResponse, len(rows))
	for i, r := range rows {
		res[i] = mapFundTransfer(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (FundTransferResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return FundTransferResponse{}, fundtransfererrors.ErrFundTransferNotFound
	}
	t, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return FundTransferResponse{}, mapRepositoryError(err, fundtransfererrors.ErrFundTransferNotFound)
	}
	return mapFundTransfer(FundTransferView{FundTransfer: *t}), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fundtransfererrors.ErrFundTransferNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err, fundtransfererrors.ErrFundTransferNotFound)
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err, fundtransfererrors.ErrFundTransferNotFound)
	}
	if err := s.publisher.Publish(ctx, tx, []ledger.Change{fundChange(t)}); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) CreateProjectTransfer(ctx context.Context, companyID string, req ProjectTransferRequest) (ProjectTransferResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ProjectTransferResponse{}, apperror.InvalidField("company_id")
	}
	fromID, err := uuid.Parse(req.FromProjectID)
	if err != nil {
		return ProjectTransferResponse{}, fundtransfererrors.ErrProjectNotFound
	}
	toID, err := uuid.Parse(req.ToProjectID)
	if err != nil {
		return ProjectTransferResponse{}, fundtransfererrors.ErrProjectNotFound
	}
	if fromID == toID {
		return ProjectTransferResponse{}, fundtransfererrors.ErrSameProject
	}
	amount := money.Round(req.Amount)
	if !money.Positive(amount) {
		return ProjectTransferResponse{}, fundtransfererrors.ErrInvalidAmount
	}
	date, err := dateutil.Parse("transfer_date", req.TransferDate)
	if err != nil {
		return ProjectTransferResponse{}, err
	}

	t := &ProjectTransfer{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		FromProjectID: fromID,
		ToProjectID:   toID,
		Amount:        amount,
		Reason:        trimmed(req.Reason),
		TransferDate:  date,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("create project transfer begin tx failed", zap.Error(err))
		return ProjectTransferResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	for _, id := range []string{req.FromProjectID, req.ToProjectID} {
		if err := ensureProject(ctx, qtx, companyID, id); err != nil {
			return ProjectTransferResponse{}, err
		}
	}
	if err := qtx.CreateProjectTransfer(ctx, t); err != nil {
		return ProjectTransferResponse{}, mapRepositoryError(err, fundtransfererrors.ErrProjectTransferNotFound)
	}
	if err := s.publisher.Publish(ctx, tx, projectChanges(t)); err != nil {
		return ProjectTransferResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ProjectTransferResponse{}, err
	}

	l.Info("project transfer created",
		zap.String("transfer_id", t.ID.String()),
		zap.String("from_project_id", req.FromProjectID),
		zap.String("to_project_id", req.ToProjectID),
		zap.String("amount", amount.String()),
	)
	return mapProjectTransfer(ProjectTransferView{ProjectTransfer: *t}), nil
}

func (s *service) GetProjectTransfers(ctx context.Context, companyID string, f Filter) ([]ProjectTransferResponse, error) {
	rows, err := s.repo.FindProjectTransfers(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	res := make([]ProjectTransferResponse, len(rows))
	for i, r := range rows {
		res[i] = mapProjectTransfer(r)
	}
	return res, nil
}

func (s *service) GetProjectTransferByID(ctx context.Context, companyID, id string) (ProjectTransferResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ProjectTransferResponse{}, fundtransfererrors.ErrProjectTransferNotFound
	}
	t, err := s.repo.FindProjectTransferByID(ctx, companyID, id)
	if err != nil {
		return ProjectTransferResponse{}, mapRepositoryError(err, fundtransfererrors.ErrProjectTransferNotFound)
	}
	return mapProjectTransfer(ProjectTransferView{ProjectTransfer: *t}), nil
}

func (s *service) DeleteProjectTransfer(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fundtransfererrors.ErrProjectTransferNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindProjectTransferByID(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err, fundtransfererrors.ErrProjectTransferNotFound)
	}
	if err := qtx.DeleteProjectTransfer(ctx, companyID, id); err != nil {
		return mapRepositoryError(err, fundtransfererrors.ErrProjectTransferNotFound)
	}
	if err := s.publisher.Publish(ctx, tx, projectChanges(t)); err != nil {
		return err
	}
	return tx.Commit()
}

func ensureProject(ctx context.Context, repo Repository, companyID, projectID string) error {
	ok, err := repo.ProjectExists(ctx, companyID, projectID)
	if err != nil {
		return err
	}
	if !ok {
		return fundtransfererrors.ErrProjectNotFound
	}
	return nil
}

func fundChange(t *FundTransfer) ledger.Change {
	return ledger.Change{
		CompanyID: t.CompanyID.String(),
		ProjectID: t.ProjectID.String(),
		Date:      t.TransferDate,
		Source:    ledger.SourceFundTransfer,
		SourceID:  t.ID.String(),
	}
}

// projectChanges touches both sides of the transfer.
func projectChanges(t *ProjectTransfer) []ledger.Change {
	base := ledger.Change{
		CompanyID: t.CompanyID.String(),
		Date:      t.TransferDate,
		Source:    ledger.SourceProjectFundTransfer,
		SourceID:  t.ID.String(),
	}
	from, to := base, base
	from.ProjectID = t.FromProjectID.String()
	to.ProjectID = t.ToProjectID.String()
	return []ledger.Change{from, to}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func mapFundTransfer(v FundTransferView) FundTransferResponse {
	t := v.FundTransfer
	return FundTransferResponse{
		ID:             t.ID.String(),
		ProjectID:      t.ProjectID.String(),
		ProjectName:    v.ProjectName,
		Amount:         t.Amount,
		SenderName:     t.SenderName,
		TransferType:   t.TransferType,
		TransferNumber: t.TransferNumber,
		TransferDate:   dateutil.Format(t.TransferDate),
		Notes:          t.Notes,
	}
}

func mapProjectTransfer(v ProjectTransferView) ProjectTransferResponse {
	t := v.ProjectTransfer
	return ProjectTransferResponse{
		ID:              t.ID.String(),
		FromProjectID:   t.FromProjectID.String(),
		FromProjectName: v.FromProjectName,
		ToProjectID:     t.ToProjectID.String(),
		ToProjectName:   v.ToProjectName,
		Amount:          t.Amount,
		Reason:          t.Reason,
		TransferDate:    dateutil.Format(t.TransferDate),
	}
}
