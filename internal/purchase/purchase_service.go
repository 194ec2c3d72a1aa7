package purchase

import (
	"context"
	"database/sql"
	"strings"

	"go-sitebooks/internal/ledger"
	purchaseerrors "go-sitebooks/internal/purchase/errors"
	"go-sitebooks/internal/shared/apperror"
	"go-sitebooks/internal/shared/contextutil"
	"go-sitebooks/internal/shared/counter"
	"go-sitebooks/internal/shared/dateutil"
	"go-sitebooks/internal/shared/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=purchase_service.go -destination=mock/purchase_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req PurchaseRequest) (PurchaseResponse, error)
	GetAll(ctx context.Context, companyID string, f Filter) ([]PurchaseResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PurchaseResponse, error)
	Update(ctx context.Context, companyID, id string, req PurchaseRequest) (PurchaseResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	counter   counter.Repository
	publisher ledger.Publisher
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, publisher ledger.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("purchase.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("purchase.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		counter:   counterRepo,
		publisher: publisher,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req PurchaseRequest) (PurchaseResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PurchaseResponse{}, apperror.InvalidField("company_id")
	}
	p := &Purchase{ID: uuid.New(), CompanyID: companyUUID}
	if err := applyRequest(p, req); err != nil {
		return PurchaseResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		l.Error("create purchase begin tx failed", zap.Error(err))
		return PurchaseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.ensureRefs(ctx, qtx, companyID, p); err != nil {
		return PurchaseResponse{}, err
	}

	next, err := s.counter.WithTx(tx).GetNextValue(ctx, companyID, counter.TypePurchaseNumber)
	if err != nil {
		l.Error("purchase number allocation failed", zap.Error(err))
		return PurchaseResponse{}, err
	}
	p.PurchaseNumber = counter.DocumentNumber(numberPrefix, next)

	if err := qtx.Create(ctx, p); err != nil {
		return PurchaseResponse{}, mapRepositoryError(err)
	}
	if err := s.publisher.Publish(ctx, tx, []ledger.Change{changeOf(p)}); err != nil {
		return PurchaseResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PurchaseResponse{}, err
	}

	l.Info("purchase created",
		zap.String("purchase_id", p.ID.String()),
		zap.String("purchase_number", p.PurchaseNumber),
		zap.String("total", p.TotalAmount.String()),
	)
	return mapToResponse(PurchaseView{Purchase: *p}), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, f Filter) ([]PurchaseResponse, error) {
	rows, err := s.repo.FindAll(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	res := make([]PurchaseResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PurchaseResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PurchaseResponse{}, purchaseerrors.ErrPurchaseNotFound
	}
	p, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return PurchaseResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(PurchaseView{Purchase: *p}), nil
}

// Update recomputes totals. The paid amount may not fall below what
// supplier payments have already settled against the purchase.
func (s *service) Update(ctx context.Context, companyID, id string, req PurchaseRequest) (PurchaseResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PurchaseResponse{}, purchaseerrors.ErrPurchaseNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PurchaseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.LockByID(ctx, companyID, id)
	if err != nil {
		return PurchaseResponse{}, mapRepositoryError(err)
	}
	before := changeOf(p)
	prevSupplier, prevType := p.SupplierID, p.PurchaseType

	if err := applyRequest(p, req); err != nil {
		return PurchaseResponse{}, err
	}
	if err := s.ensureRefs(ctx, qtx, companyID, p); err != nil {
		return PurchaseResponse{}, err
	}

	settled, err := qtx.LinkedPaymentsTotal(ctx, companyID, id)
	if err != nil {
		return PurchaseResponse{}, err
	}
	if settled.IsPositive() && (p.PurchaseType != prevType || !sameSupplier(prevSupplier, p.SupplierID)) {
		return PurchaseResponse{}, purchaseerrors.ErrPaymentsLinked
	}
	if p.PaidAmount.LessThan(settled) {
		return PurchaseResponse{}, purchaseerrors.ErrPaidBelowPayments
	}

	if err := qtx.Update(ctx, p); err != nil {
		return PurchaseResponse{}, mapRepositoryError(err)
	}
	if err := s.publisher.Publish(ctx, tx, []ledger.Change{before, changeOf(p)}); err != nil {
		return PurchaseResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PurchaseResponse{}, err
	}
	return mapToResponse(PurchaseView{Purchase: *p}), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return purchaseerrors.ErrPurchaseNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.LockByID(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	settled, err := qtx.LinkedPaymentsTotal(ctx, companyID, id)
	if err != nil {
		return err
	}
	if settled.IsPositive() {
		return purchaseerrors.ErrPurchaseHasPayments
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.publisher.Publish(ctx, tx, []ledger.Change{changeOf(p)}); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) ensureRefs(ctx context.Context, repo Repository, companyID string, p *Purchase) error {
	ok, err := repo.ProjectExists(ctx, companyID, p.ProjectID.String())
	if err != nil {
		return err
	}
	if !ok {
		return purchaseerrors.ErrProjectNotFound
	}
	if p.SupplierID == nil {
		return nil
	}
	ok, err = repo.SupplierExists(ctx, companyID, p.SupplierID.String())
	if err != nil {
		return err
	}
	if !ok {
		return purchaseerrors.ErrSupplierNotFound
	}
	return nil
}

// applyRequest validates req and sets the derived amounts on p.
func sameSupplier(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func applyRequest(p *Purchase, req PurchaseRequest) error {
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return purchaseerrors.ErrProjectNotFound
	}
	var supplierID *uuid.UUID
	if req.SupplierID != nil && strings.TrimSpace(*req.SupplierID) != "" {
		id, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			return purchaseerrors.ErrSupplierNotFound
		}
		supplierID = &id
	}
	if !money.Positive(req.Quantity) {
		return purchaseerrors.ErrInvalidQuantity
	}
	if req.UnitPrice.IsNegative() {
		return purchaseerrors.ErrInvalidUnitPrice
	}
	date, err := dateutil.Parse("purchase_date", req.PurchaseDate)
	if err != nil {
		return err
	}

	unitPrice := money.Round(req.UnitPrice)
	total := money.Round(req.Quantity.Mul(unitPrice))
	purchaseType := strings.ToLower(strings.TrimSpace(req.PurchaseType))

	var paid decimal.Decimal
	switch purchaseType {
	case TypeCash:
		paid = total
	case TypeCredit:
		if supplierID == nil {
			return purchaseerrors.ErrSupplierRequired
		}
		if req.PaidAmount != nil {
			paid = money.Round(*req.PaidAmount)
		}
		if paid.IsNegative() || paid.GreaterThan(total) {
			return purchaseerrors.ErrInvalidPaidAmount
		}
	default:
		return purchaseerrors.ErrInvalidPurchaseType
	}

	p.ProjectID = projectID
	p.SupplierID = supplierID
	p.MaterialName = strings.TrimSpace(req.MaterialName)
	p.MaterialCategory = req.MaterialCategory
	p.Unit = strings.TrimSpace(req.Unit)
	p.Quantity = req.Quantity
	p.UnitPrice = unitPrice
	p.TotalAmount = total
	p.PurchaseType = purchaseType
	p.PaidAmount = paid
	p.RemainingAmount = total.Sub(paid)
	p.InvoiceNumber = req.InvoiceNumber
	p.PurchaseDate = date
	p.Notes = req.Notes
	return nil
}

func changeOf(p *Purchase) ledger.Change {
	return ledger.Change{
		CompanyID: p.CompanyID.String(),
		ProjectID: p.ProjectID.String(),
		Date:      p.PurchaseDate,
		Source:    ledger.SourcePurchase,
		SourceID:  p.ID.String(),
	}
}

// Totals sums a list of purchases.
func Totals(items []PurchaseResponse) PurchaseTotals {
	return PurchaseTotals{
		Count:           len(items),
		TotalAmount:     money.Sum(items, func(p PurchaseResponse) decimal.Decimal { return p.TotalAmount }),
		PaidAmount:      money.Sum(items, func(p PurchaseResponse) decimal.Decimal { return p.PaidAmount }),
		RemainingAmount: money.Sum(items, func(p PurchaseResponse) decimal.Decimal { return p.RemainingAmount }),
	}
}

func mapToResponse(v PurchaseView) PurchaseResponse {
	p := v.Purchase
	var supplierID *string
	if p.SupplierID != nil {
		id := p.SupplierID.String()
		supplierID = &id
	}
	return PurchaseResponse{
		ID:               p.ID.String(),
		PurchaseNumber:   p.PurchaseNumber,
		ProjectID:        p.ProjectID.String(),
		ProjectName:      v.ProjectName,
		SupplierID:       supplierID,
		SupplierName:     v.SupplierName,
		MaterialName:     p.MaterialName,
		MaterialCategory: p.MaterialCategory,
		Unit:             p.Unit,
		Quantity:         p.Quantity,
		UnitPrice:        p.UnitPrice,
		TotalAmount:      p.TotalAmount,
		PurchaseType:     p.PurchaseType,
		PaidAmount:       p.PaidAmount,
		RemainingAmount:  p.RemainingAmount,
		InvoiceNumber:    p.InvoiceNumber,
		PurchaseDate:     dateutil.Format(p.PurchaseDate),
		Notes:            p.Notes,
	}
}
