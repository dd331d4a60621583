package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*cloudwatch.PutMetricDataOutput)
	return out, args.Error(1)
}

func TestUnavailableReporter_Report(t *testing.T) {
	// Arrange
	publisher := &mockPublisher{}
	publisher.On("PutMetricData", mock.Anything, mock.MatchedBy(func(in *cloudwatch.PutMetricDataInput) bool {
		if aws.ToString(in.Namespace) != "SurveyManagement/dev" || len(in.MetricData) != 1 {
			return false
		}
		datum := in.MetricData[0]
		return aws.ToString(datum.MetricName) == "StoreUnavailable" &&
			aws.ToString(datum.Dimensions[0].Value) == "dynamodb" &&
			aws.ToFloat64(datum.Value) == 1
	})).Return(&cloudwatch.PutMetricDataOutput{}, nil).Once()
	reporter := NewUnavailableReporter("SurveyManagement/dev", publisher, zap.NewNop())

	// Act
	reporter.Report("dynamodb", errors.New("no route to host"))

	// Assert
	publisher.AssertExpectations(t)
}

func TestUnavailableReporter_PublishFailureIsSwallowed(t *testing.T) {
	publisher := &mockPublisher{}
	publisher.On("PutMetricData", mock.Anything, mock.Anything).Return(nil, errors.New("throttled")).Once()
	reporter := NewUnavailableReporter("ns", publisher, zap.NewNop())

	assert.NotPanics(t, func() { reporter.Report("relational", errors.New("refused")) })
	publisher.AssertExpectations(t)
}

func TestUnavailableReporter_NilClient(t *testing.T) {
	reporter := NewUnavailableReporter("ns", nil, zap.NewNop())

	assert.NotPanics(t, func() { reporter.Report("dynamodb", nil) })
}

func TestCollector_Records(t *testing.T) {
	// Arrange
	c := NewCollector("survey")

	// Act
	c.RecordHTTPRequest("GET", "/api/customers", 200, 15*time.Millisecond)
	c.RecordHTTPRequest("GET", "/api/customers", 200, 5*time.Millisecond)
	c.RecordStoreOperation("scan", "Customers", "unavailable", time.Millisecond)
	c.RecordStoreUnavailable("dynamodb")
	c.RecordOfflineRead("Surveys")

	// Assert
	assert.Equal(t, 2.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/api/customers", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.StoreOperations.WithLabelValues("scan", "Customers", "unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.StoreUnavailable.WithLabelValues("dynamodb")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.OfflineReads.WithLabelValues("Surveys")))
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector("survey")
	c.RecordOfflineRead("Customers")
	rec := httptest.NewRecorder()

	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `survey_offline_reads_total{table="Customers"} 1`)
}

func TestTracer_DisabledRunsFunction(t *testing.T) {
	tracer := NewTracer("survey", false)
	called := false

	err := tracer.TraceFunction(context.Background(), "op", func(context.Context) error {
		called = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.False(t, tracer.Enabled())
}
