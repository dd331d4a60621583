package dynamodb

import (
	"context"
	"errors"

	"github.com/aws/smithy-go"

	apperrors "survey-backend/pkg/errors"
)

// unavailableCodes are service errors that mean "try later", not "bad call".
var unavailableCodes = map[string]bool{
	"ProvisionedThroughputExceededException": true,
	"RequestLimitExceeded":                   true,
	"ThrottlingException":                    true,
	"ServiceUnavailable":                     true,
	"InternalServerError":                    true,
}

// classify turns an SDK error into an AppError. Errors without a service
// error code never reached DynamoDB (network, credentials, cancellation) and
// count as the store being unavailable.
func classify(op string, err error) error {
	if apperrors.IsAppError(err) {
		return err
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if unavailableCodes[apiErr.ErrorCode()] {
			return apperrors.NewStoreUnavailableError("dynamodb", err)
		}
		return apperrors.NewDatabaseError(op, err).WithCode(apiErr.ErrorCode())
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewStoreUnavailableError("dynamodb", err).WithCode("TIMEOUT")
	}
	return apperrors.NewStoreUnavailableError("dynamodb", err)
}

// isResourceNotFound reports a missing table.
func isResourceNotFound(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "ResourceNotFoundException"
}
