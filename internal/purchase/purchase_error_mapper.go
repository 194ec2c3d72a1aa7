package purchase

import (
	"errors"

	purchaseerrors "go-sitebooks/internal/purchase/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return purchaseerrors.ErrPurchaseNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_purchase_number" {
		return purchaseerrors.ErrPurchaseNumberExists
	}
	return err
}
