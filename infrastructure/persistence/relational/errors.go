package relational

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	apperrors "survey-backend/pkg/errors"
)

// classify turns a driver error into an AppError. A server-side error means
// the database answered; anything else means it could not be reached.
func classify(op string, err error) error {
	if apperrors.IsAppError(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 08 is connection exceptions, 57P0x is shutdown
		if strings.HasPrefix(pgErr.Code, "08") || pgErr.Code == "57P01" || pgErr.Code == "57P03" {
			return apperrors.NewStoreUnavailableError("relational", err)
		}
		return apperrors.NewDatabaseError(op, err).WithCode(pgErr.Code)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewStoreUnavailableError("relational", err).WithCode("TIMEOUT")
	}
	return apperrors.NewStoreUnavailableError("relational", err)
}
