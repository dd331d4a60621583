// Command provision prepares a storage backend: it creates the DynamoDB
// tables or runs the relational migrations, then seeds reference data.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"survey-backend/infrastructure/config"
	"survey-backend/infrastructure/di"
	"survey-backend/infrastructure/persistence"
	"survey-backend/infrastructure/persistence/dynamodb"
	"survey-backend/infrastructure/persistence/relational"
	"survey-backend/infrastructure/persistence/storage"
	"survey-backend/infrastructure/seed"
	"survey-backend/pkg/utils"
)

func main() {
	tables := flag.Bool("tables", true, "create missing tables or run migrations")
	reference := flag.Bool("seed", true, "seed survey types, statuses and townships")
	sample := flag.Bool("sample", false, "load the sample customers, properties and surveys")
	mock := flag.Bool("mock", false, "load the offline mock dataset")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := di.ProvideLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	opts, err := di.ProvideStorageOptions(cfg)
	if err != nil {
		logger.Fatal("Invalid storage options", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn := storage.NewConnection(opts, logger)
	defer conn.Close()
	if err := conn.Open(ctx); err != nil {
		logger.Fatal("Storage unavailable", zap.String("backend", string(opts.Backend)), zap.Error(err))
	}

	if *tables {
		if err := provision(ctx, conn, cfg.TablePrefix, logger); err != nil {
			logger.Fatal("Provisioning failed", zap.Error(err))
		}
	}

	stores := persistence.NewStores(conn, persistence.Settings{
		TablePrefix: cfg.TablePrefix,
		Clock:       utils.UTCNow,
	}, nil, nil, logger)
	seeder := seed.NewSeeder(stores, utils.UTCNow, logger)

	if *reference || *sample {
		ref, result, err := seeder.SeedReference(ctx)
		if err != nil {
			logger.Fatal("Seeding reference data failed", zap.Error(err))
		}
		logger.Info("Reference data ready", zap.Int("created", result.Total()))

		if *sample {
			result, err := seeder.Load(ctx, seed.Sample(utils.UTCNow(), ref, seed.RandomIDs))
			if err != nil {
				logger.Fatal("Loading sample data failed", zap.Error(err))
			}
			logger.Info("Sample data loaded", zap.Int("created", result.Total()))
		}
	}

	if *mock {
		result, err := seeder.Load(ctx, seed.Mock(utils.UTCNow()))
		if err != nil {
			logger.Fatal("Loading mock data failed", zap.Error(err))
		}
		logger.Info("Mock data loaded", zap.Int("created", result.Total()))
	}
}

func provision(ctx context.Context, conn *storage.Connection, prefix string, logger *zap.Logger) error {
	switch conn.Backend() {
	case storage.BackendDynamoDB:
		client, err := conn.DynamoDB(ctx)
		if err != nil {
			return err
		}
		created, err := dynamodb.NewProvisioner(client, prefix, logger).EnsureTables(ctx, storage.Catalog)
		if err != nil {
			return err
		}
		logger.Info("Tables provisioned", zap.Strings("created", created))
		return nil
	case storage.BackendRelational:
		return relational.Migrate(ctx, conn, prefix, logger)
	default:
		logger.Info("Nothing to provision", zap.String("backend", string(conn.Backend())))
		return nil
	}
}
