package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// MetricPublisher is the part of the CloudWatch client the reporter uses.
type MetricPublisher interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// UnavailableReporter publishes a StoreUnavailable data point to CloudWatch
// so an alarm can fire when the backend cannot be reached.
type UnavailableReporter struct {
	namespace string
	client    MetricPublisher
	timeout   time.Duration
	logger    *zap.Logger
}

// NewUnavailableReporter creates a reporter. A nil client disables it.
func NewUnavailableReporter(namespace string, client MetricPublisher, logger *zap.Logger) *UnavailableReporter {
	return &UnavailableReporter{
		namespace: namespace,
		client:    client,
		timeout:   5 * time.Second,
		logger:    logger,
	}
}

// Report publishes one data point for backend. It is shaped to be passed to
// storage.Connection.OnUnavailable, which gives it no context.
func (r *UnavailableReporter) Report(backend string, cause error) {
	if r.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	input := &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(r.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String("StoreUnavailable"),
				Dimensions: []types.Dimension{
					{
						Name:  aws.String("Backend"),
						Value: aws.String(backend),
					},
				},
				Value:     aws.Float64(1),
				Unit:      types.StandardUnitCount,
				Timestamp: aws.Time(time.Now()),
			},
		},
	}

	if _, err := r.client.PutMetricData(ctx, input); err != nil {
		// Log error but don't fail the caller
		r.logger.Warn("Failed to publish StoreUnavailable metric",
			zap.String("backend", backend),
			zap.NamedError("cause", cause),
			zap.Error(err),
		)
		return
	}
	r.logger.Info("Published StoreUnavailable metric", zap.String("backend", backend))
}
