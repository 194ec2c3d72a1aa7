package supplier

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go-sitebooks/internal/ledger"
	"go-sitebooks/internal/shared/apperror"
	"go-sitebooks/internal/shared/contextutil"
	"go-sitebooks/internal/shared/dateutil"
	"go-sitebooks/internal/shared/money"
	"go-sitebooks/internal/shared/phone"
	suppliererrors "go-sitebooks/internal/supplier/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=supplier_service.go -destination=mock/supplier_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req SupplierRequest) (SupplierResponse, error)
	GetAll(ctx context.Context, companyID string) ([]SupplierResponse, error)
	GetByID(ctx context.Context, companyID, id string) (SupplierResponse, error)
	Update(ctx context.Context, companyID, id string, req SupplierRequest) (SupplierResponse, error)
	Delete(ctx context.Context, companyID, id string) error

	CreatePayment(ctx context.Context, companyID, supplierID string, req PaymentRequest) (PaymentResponse, error)
	GetPayments(ctx context.Context, companyID string, f PaymentFilter) ([]PaymentResponse, error)
	DeletePayment(ctx context.Context, companyID, id string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	publisher ledger.Publisher
	region    string
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, publisher ledger.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("supplier.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("supplier.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		publisher: publisher,
		region:    phone.DefaultRegion(),
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req SupplierRequest) (SupplierResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SupplierResponse{}, apperror.InvalidField("company_id")
	}
	phoneNumber, err := phone.NormalizeOptional(req.Phone, s.region)
	if err != nil {
		return SupplierResponse{}, suppliererrors.ErrInvalidPhone
	}

	sup := &Supplier{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		Name:          strings.TrimSpace(req.Name),
		ContactPerson: req.ContactPerson,
		Phone:         phoneNumber,
		Address:       req.Address,
		PaymentTerms:  req.PaymentTerms,
		IsActive:      req.IsActive == nil || *req.IsActive,
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		l.Warn("create supplier failed", zap.Error(err))
		return SupplierResponse{}, mapRepositoryError(err)
	}

	l.Info("supplier created", zap.String("supplier_id", sup.ID.String()))
	return mapToResponse(SupplierBalance{Supplier: *sup}), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]SupplierResponse, error) {
	rows, err := s.repo.FindAllWithBalance(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	res := make([]SupplierResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (SupplierResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SupplierResponse{}, suppliererrors.ErrInvalidSupplierID
	}
	sup, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return SupplierResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(SupplierBalance{Supplier: *sup}), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req SupplierRequest) (SupplierResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return SupplierResponse{}, suppliererrors.ErrInvalidSupplierID
	}
	phoneNumber, err := phone.NormalizeOptional(req.Phone, s.region)
	if err != nil {
		return SupplierResponse{}, suppliererrors.ErrInvalidPhone
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SupplierResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	sup, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return SupplierResponse{}, mapRepositoryError(err)
	}
	sup.Name = strings.TrimSpace(req.Name)
	sup.ContactPerson = req.ContactPerson
	sup.Phone = phoneNumber
	sup.Address = req.Address
	sup.PaymentTerms = req.PaymentTerms
	if req.IsActive != nil {
		sup.IsActive = *req.IsActive
	}

	if err := qtx.Update(ctx, sup); err != nil {
		return SupplierResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return SupplierResponse{}, err
	}
	return mapToResponse(SupplierBalance{Supplier: *sup}), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return suppliererrors.ErrInvalidSupplierID
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
		return suppliererrors.ErrSupplierHasLedger
	}
	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}
	return tx.Commit()
}

// CreatePayment records a payment to the supplier. A payment tied to a
// purchase settles part of that purchase's remaining amount in the same
// transaction.
func (s *service) CreatePayment(ctx context.Context, companyID, supplierID string, req PaymentRequest) (PaymentResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PaymentResponse{}, apperror.InvalidField("company_id")
	}
	supplierUUID, err := uuid.Parse(supplierID)
	if err != nil {
		return PaymentResponse{}, suppliererrors.ErrInvalidSupplierID
	}
	projectUUID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return PaymentResponse{}, suppliererrors.ErrProjectNotFound
	}
	amount := money.Round(req.Amount)
	if !money.Positive(amount) {
		return PaymentResponse{}, suppliererrors.ErrInvalidAmount
	}
	date, err := dateutil.Parse("payment_date", req.PaymentDate)
	if err != nil {
		return PaymentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PaymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndCompany(ctx, companyID, supplierID); err != nil {
		return PaymentResponse{}, mapRepositoryError(err)
	}
	ok, err := qtx.ProjectExists(ctx, companyID, req.ProjectID)
	if err != nil {
		return PaymentResponse{}, err
	}
	if !ok {
		return PaymentResponse{}, suppliererrors.ErrProjectNotFound
	}

	p := &Payment{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		SupplierID:      supplierUUID,
		ProjectID:       projectUUID,
		Amount:          amount,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		PaymentDate:     date,
		Notes:           req.Notes,
	}

	if req.PurchaseID != nil && *req.PurchaseID != "" {
		purchaseUUID, err := uuid.Parse(*req.PurchaseID)
		if err != nil {
			return PaymentResponse{}, suppliererrors.ErrPurchaseNotFound
		}
		if err := s.settlePurchase(ctx, qtx, companyID, supplierUUID, *req.PurchaseID, amount); err != nil {
			return PaymentResponse{}, err
		}
		p.PurchaseID = &purchaseUUID
	}

	if err := qtx.CreatePayment(ctx, p); err != nil {
		return PaymentResponse{}, mapPaymentError(err)
	}
	if err := s.publisher.Publish(ctx, tx, []ledger.Change{paymentChange(p)}); err != nil {
		return PaymentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PaymentResponse{}, err
	}

	l.Info("supplier payment recorded",
		zap.String("payment_id", p.ID.String()),
		zap.String("supplier_id", supplierID),
		zap.String("amount", amount.String()),
	)
	return mapPaymentResponse(PaymentView{Payment: *p}), nil
}

func (s *service) GetPayments(ctx context.Context, companyID string, f PaymentFilter) ([]PaymentResponse, error) {
	rows, err := s.repo.FindPayments(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	res := make([]PaymentResponse, len(rows))
	for i, r := range rows {
		res[i] = mapPaymentResponse(r)
	}
	return res, nil
}

// DeletePayment removes the payment and gives its amount back to the
// purchase it settled.
func (s *service) DeletePayment(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return suppliererrors.ErrPaymentNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindPaymentByID(ctx, companyID, id)
	if err != nil {
		return mapPaymentError(err)
	}

	if p.PurchaseID != nil {
		purchase, err := qtx.LockPurchase(ctx, companyID, p.PurchaseID.String())
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// purchase already gone, nothing to restore
		case err != nil:
			return err
		default:
			paid := purchase.PaidAmount.Sub(p.Amount)
			if paid.IsNegative() {
				paid = decimal.Zero
			}
			remaining := purchase.TotalAmount.Sub(paid)
			if err := qtx.UpdatePurchaseBalance(ctx, p.PurchaseID.String(), paid, remaining); err != nil {
				return err
			}
		}
	}

	if err := qtx.DeletePayment(ctx, companyID, id); err != nil {
		return mapPaymentError(err)
	}
	if err := s.publisher.Publish(ctx, tx, []ledger.Change{paymentChange(p)}); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) settlePurchase(ctx context.Context, repo Repository, companyID string, supplierID uuid.UUID, purchaseID string, amount decimal.Decimal) error {
	purchase, err := repo.LockPurchase(ctx, companyID, purchaseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return suppliererrors.ErrPurchaseNotFound
	}
	if err != nil {
		return err
	}
	if purchase.SupplierID == nil || *purchase.SupplierID != supplierID {
		return suppliererrors.ErrPurchaseNotFound
	}
	if amount.GreaterThan(purchase.RemainingAmount) {
		return suppliererrors.ErrPaymentExceedsRemaining
	}
	paid := purchase.PaidAmount.Add(amount)
	return repo.UpdatePurchaseBalance(ctx, purchaseID, paid, purchase.TotalAmount.Sub(paid))
}

func paymentChange(p *Payment) ledger.Change {
	return ledger.Change{
		CompanyID: p.CompanyID.String(),
		ProjectID: p.ProjectID.String(),
		Date:      p.PaymentDate,
		Source:    ledger.SourceSupplierPayment,
		SourceID:  p.ID.String(),
	}
}

func mapToResponse(b SupplierBalance) SupplierResponse {
	return SupplierResponse{
		ID:             b.ID.String(),
		Name:           b.Name,
		ContactPerson:  b.ContactPerson,
		Phone:          b.Phone,
		Address:        b.Address,
		PaymentTerms:   b.PaymentTerms,
		IsActive:       b.IsActive,
		TotalPurchases: b.TotalPurchases,
		TotalPaid:      b.TotalPaid,
		Outstanding:    b.TotalPurchases.Sub(b.TotalPaid),
		CreatedAt:      b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func mapPaymentResponse(v PaymentView) PaymentResponse {
	p := v.Payment
	var purchaseID *string
	if p.PurchaseID != nil {
		id := p.PurchaseID.String()
		purchaseID = &id
	}
	return PaymentResponse{
		ID:              p.ID.String(),
		SupplierID:      p.SupplierID.String(),
		SupplierName:    v.SupplierName,
		ProjectID:       p.ProjectID.String(),
		ProjectName:     v.ProjectName,
		PurchaseID:      purchaseID,
		PurchaseNumber:  v.PurchaseNumber,
		Amount:          p.Amount,
		PaymentMethod:   p.PaymentMethod,
		ReferenceNumber: p.ReferenceNumber,
		PaymentDate:     dateutil.Format(p.PaymentDate),
		Notes:           p.Notes,
	}
}
