package ports

import (
	"context"

	"survey-backend/domain/core/entities"
)

// Store persists one entity type in one named collection. The DynamoDB,
// relational and in-memory backends all implement it, and all of them report
// failures as *errors.AppError (UNAVAILABLE, DATABASE, CONFLICT, NOT_FOUND).
type Store[T any] interface {
	// Name is the collection name, used in logs and metrics.
	Name() string

	// Get returns nil and no error when id does not exist.
	Get(ctx context.Context, id string) (*T, error)

	// Scan reads the whole collection in the backend's natural order.
	Scan(ctx context.Context) ([]*T, error)

	// Create fails with CONFLICT when the identity is already taken.
	Create(ctx context.Context, entity *T) error

	// Replace overwrites an existing record and fails with NOT_FOUND when
	// there is nothing to overwrite.
	Replace(ctx context.Context, entity *T) error

	// Delete physically removes the record and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}

// Stores is one Store per collection.
type Stores struct {
	Customers           Store[entities.Customer]
	Townships           Store[entities.Township]
	Properties          Store[entities.Property]
	Surveys             Store[entities.Survey]
	SurveyTypes         Store[entities.SurveyType]
	SurveyStatuses      Store[entities.SurveyStatus]
	UserSettings        Store[entities.UserSettings]
	BoardConfigurations Store[entities.BoardConfiguration]
}

// HealthChecker reports whether the backing store can serve requests.
type HealthChecker interface {
	Check(ctx context.Context) error
}
