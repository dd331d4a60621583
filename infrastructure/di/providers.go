package di

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"survey-backend/application/ports"
	"survey-backend/application/services"
	"survey-backend/infrastructure/config"
	"survey-backend/infrastructure/persistence"
	"survey-backend/infrastructure/persistence/storage"
	"survey-backend/interfaces/graphql"
	"survey-backend/interfaces/http/rest"
	"survey-backend/pkg/observability"
	"survey-backend/pkg/ratelimit"
	"survey-backend/pkg/utils"
)

// ServiceName names the X-Ray segments and log streams.
const ServiceName = "survey-management-api"

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Connection *storage.Connection
	Stores     ports.Stores
	Services   *services.Services
	Collector  *observability.Collector
	Tracer     *observability.Tracer
	Reporter   *observability.UnavailableReporter
	Router     *rest.Router
}

// Close releases the storage connection and flushes the logger.
func (c *Container) Close() error {
	err := c.Connection.Close()
	_ = c.Logger.Sync()
	return err
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("service", ServiceName)), nil
}

// ProvideStorageOptions maps configuration onto connection options.
func ProvideStorageOptions(cfg *config.Config) (storage.Options, error) {
	backend, err := storage.ParseBackend(cfg.StorageBackend)
	if err != nil {
		return storage.Options{}, err
	}
	return storage.Options{
		Backend:         backend,
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.DynamoDBEndpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		Tracing:         cfg.EnableTracing,
		DatabaseURL:     cfg.DatabaseURL,
	}, nil
}

// ProvideConnection creates the lazily opened storage connection.
func ProvideConnection(opts storage.Options, logger *zap.Logger) *storage.Connection {
	return storage.NewConnection(opts, logger)
}

// ProvideCollector creates the Prometheus collector
func ProvideCollector() *observability.Collector {
	return observability.NewCollector("survey")
}

// ProvideTracer creates the X-Ray tracer
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(ServiceName, cfg.EnableTracing)
}

// ProvideCloudWatchClient creates a CloudWatch client. Metrics are only
// published from AWS; nil disables publishing.
func ProvideCloudWatchClient(ctx context.Context, cfg *config.Config, opts storage.Options, logger *zap.Logger) observability.MetricPublisher {
	if !cfg.EnableMetrics || cfg.IsLocal() {
		return nil
	}
	awsCfg, err := storage.LoadAWSConfig(ctx, opts)
	if err != nil {
		logger.Warn("CloudWatch metrics disabled", zap.Error(err))
		return nil
	}
	return cloudwatch.NewFromConfig(awsCfg)
}

// ProvideUnavailableReporter creates the reporter and subscribes it to
// connection failures.
func ProvideUnavailableReporter(
	cfg *config.Config,
	client observability.MetricPublisher,
	conn *storage.Connection,
	logger *zap.Logger,
) *observability.UnavailableReporter {
	namespace := fmt.Sprintf("%s/%s", cfg.MetricsNamespace, cfg.Environment)
	reporter := observability.NewUnavailableReporter(namespace, client, logger)
	conn.OnUnavailable(func(err error) {
		reporter.Report(string(conn.Backend()), err)
	})
	return reporter
}

// ProvideStores builds the instrumented stores for the configured backend.
func ProvideStores(
	conn *storage.Connection,
	cfg *config.Config,
	collector *observability.Collector,
	tracer *observability.Tracer,
	logger *zap.Logger,
) ports.Stores {
	return persistence.NewStores(conn, persistence.Settings{
		TablePrefix: cfg.TablePrefix,
		Offline:     cfg.OfflineMode,
		Clock:       utils.UTCNow,
	}, collector, tracer, logger)
}

// ProvideServiceOptions creates the options shared by all services
func ProvideServiceOptions(cfg *config.Config) services.Options {
	return services.Options{
		Principal: cfg.SystemPrincipal,
		UserID:    cfg.DefaultUserID,
		Clock:     utils.UTCNow,
	}
}

// ProvideServices creates the entity services
func ProvideServices(stores ports.Stores, opts services.Options, logger *zap.Logger) *services.Services {
	return services.New(stores, opts, logger)
}

// ProvideGraphQLHandler builds the GraphQL schema and its HTTP handler
func ProvideGraphQLHandler(svc *services.Services, logger *zap.Logger) (http.Handler, error) {
	return graphql.NewHandler(svc, logger)
}

// ProvideRateLimiter creates the per-client limiter, or nil when disabled.
// Idle clients are pruned until ctx is done.
func ProvideRateLimiter(ctx context.Context, cfg *config.Config) ratelimit.Limiter {
	if cfg.RateLimitPerMinute == 0 {
		return nil
	}
	limiter := ratelimit.PerMinute(cfg.RateLimitPerMinute)
	go limiter.RunPruner(ctx, 5*time.Minute)
	return limiter
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	cfg *config.Config,
	svc *services.Services,
	conn *storage.Connection,
	collector *observability.Collector,
	tracer *observability.Tracer,
	gqlHandler http.Handler,
	limiter ratelimit.Limiter,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(svc, conn, collector, tracer, rest.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		Debug:          cfg.IsDevelopment(),
		GraphQL:        gqlHandler,
		RateLimiter:    limiter,
	}, logger)
}
