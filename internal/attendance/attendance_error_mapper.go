package attendance

import (
	"errors"
	"strings"

	attendanceerrors "go-sitebooks/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueConstraint = "uq_attendance_worker_date_project"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendanceerrors.ErrAttendanceNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == uniqueConstraint {
		return attendanceerrors.ErrAttendanceExists
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") && strings.Contains(msg, uniqueConstraint) {
		return attendanceerrors.ErrAttendanceExists
	}
	return err
}
