package graphql

import (
	"context"
	"net/http"

	gql "github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"go.uber.org/zap"

	"survey-backend/application/services"
)

// NewHandler serves GraphiQL on GET from a browser and executes queries
// sent by POST (or GET with a query parameter).
func NewHandler(svc *services.Services, logger *zap.Logger) (http.Handler, error) {
	schema, err := NewSchema(svc)
	if err != nil {
		return nil, err
	}
	h := handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
		ResultCallbackFn: func(ctx context.Context, params *gql.Params, result *gql.Result, responseBody []byte) {
			if result.HasErrors() {
				logger.Warn("GraphQL request returned errors",
					zap.String("operation", params.OperationName),
					zap.Any("errors", result.Errors),
				)
			}
		},
	})
	return h, nil
}
