package workertransfer

import (
	"errors"

	workertransfererrors "go-sitebooks/internal/workertransfer/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return workertransfererrors.ErrTransferNotFound
	}
	return err
}
