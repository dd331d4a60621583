package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options select and address a backend.
type Options struct {
	Backend Backend

	// DynamoDB
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Tracing         bool

	// Relational
	DatabaseURL string
}

// Local reports whether a non-AWS DynamoDB endpoint is configured.
func (o Options) Local() bool {
	return o.Endpoint != ""
}

// LoadAWSConfig builds the SDK configuration. A local endpoint gets static
// credentials so DynamoDB Local accepts the requests.
func LoadAWSConfig(ctx context.Context, opts Options) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.Local() {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if opts.Tracing {
		awsv2.AWSV2Instrumentor(&cfg.APIOptions)
	}
	return cfg, nil
}

// NewDynamoDBClient builds a client, pointing it at the local endpoint when
// one is configured.
func NewDynamoDBClient(awsCfg aws.Config, opts Options) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if opts.Local() {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
}

func dynamoOpener(opts Options, logger *zap.Logger) opener {
	return func(ctx context.Context) (handles, error) {
		awsCfg, err := LoadAWSConfig(ctx, opts)
		if err != nil {
			return handles{}, err
		}
		client := NewDynamoDBClient(awsCfg, opts)

		// Only a local endpoint is probed; AWS itself is assumed reachable
		// and failures surface per call.
		if opts.Local() {
			if _, err := client.ListTables(ctx, &dynamodb.ListTablesInput{Limit: aws.Int32(1)}); err != nil {
				return handles{}, fmt.Errorf("local DynamoDB at %s not reachable: %w", opts.Endpoint, err)
			}
			logger.Info("Connected to local DynamoDB", zap.String("endpoint", opts.Endpoint))
		}
		return handles{dynamo: client}, nil
	}
}

func relationalOpener(opts Options) opener {
	return func(ctx context.Context) (handles, error) {
		if opts.DatabaseURL == "" {
			return handles{}, fmt.Errorf("DATABASE_URL is not set")
		}
		db, err := gorm.Open(postgres.Open(opts.DatabaseURL), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
			TranslateError: true,
		})
		if err != nil {
			return handles{}, fmt.Errorf("failed to open database: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return handles{}, fmt.Errorf("failed to get sql handle: %w", err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return handles{}, fmt.Errorf("database not reachable: %w", err)
		}
		return handles{db: db}, nil
	}
}
