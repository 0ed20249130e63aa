package schedule

import (
	"errors"
	"strings"

	scheduleerrors "github.com/abangiyan/hongwei-crew-manager/internal/schedule/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return scheduleerrors.ErrScheduleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_schedule_assignment" {
			return scheduleerrors.ErrDuplicateAssignment
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_schedule_assignment") {
		return scheduleerrors.ErrDuplicateAssignment
	}

	return err
}
