// Package persistence assembles the per-collection stores for the configured
// backend and decorates them with instrumentation and offline reads.
package persistence

import (
	"time"

	"go.uber.org/zap"

	"survey-backend/application/ports"
	"survey-backend/infrastructure/persistence/codec"
	"survey-backend/infrastructure/persistence/dynamodb"
	"survey-backend/infrastructure/persistence/memory"
	"survey-backend/infrastructure/persistence/relational"
	"survey-backend/infrastructure/persistence/storage"
	"survey-backend/infrastructure/seed"
	"survey-backend/pkg/observability"
)

// Settings control how stores are built.
type Settings struct {
	TablePrefix string
	// Offline serves reads from the mock dataset while the backend is
	// unavailable.
	Offline bool
	// Clock supplies back-fill timestamps. Nil means UTC now.
	Clock codec.Clock
}

// NewStores builds one store per collection on conn. collector and tracer
// may be nil.
func NewStores(conn *storage.Connection, settings Settings, collector *observability.Collector, tracer *observability.Tracer, logger *zap.Logger) ports.Stores {
	var primary ports.Stores
	switch conn.Backend() {
	case storage.BackendRelational:
		primary = relationalStores(conn, settings.TablePrefix, logger)
	case storage.BackendMemory:
		primary = NewMemoryStores(settings.Clock)
	default:
		primary = dynamoStores(conn, settings, logger)
	}

	backend := string(conn.Backend())
	stores := ports.Stores{
		Customers:           instrument(primary.Customers, backend, collector, tracer, logger),
		Townships:           instrument(primary.Townships, backend, collector, tracer, logger),
		Properties:          instrument(primary.Properties, backend, collector, tracer, logger),
		Surveys:             instrument(primary.Surveys, backend, collector, tracer, logger),
		SurveyTypes:         instrument(primary.SurveyTypes, backend, collector, tracer, logger),
		SurveyStatuses:      instrument(primary.SurveyStatuses, backend, collector, tracer, logger),
		UserSettings:        instrument(primary.UserSettings, backend, collector, tracer, logger),
		BoardConfigurations: instrument(primary.BoardConfigurations, backend, collector, tracer, logger),
	}

	if !settings.Offline || conn.Backend() == storage.BackendMemory {
		return stores
	}

	mock, err := NewMockStores(settings.Clock)
	if err != nil {
		logger.Error("Failed to load offline dataset", zap.Error(err))
		return stores
	}
	logger.Info("Offline mode enabled", zap.String("backend", backend))
	return ports.Stores{
		Customers:           withOfflineReads(stores.Customers, mock.Customers, collector, logger),
		Townships:           withOfflineReads(stores.Townships, mock.Townships, collector, logger),
		Properties:          withOfflineReads(stores.Properties, mock.Properties, collector, logger),
		Surveys:             withOfflineReads(stores.Surveys, mock.Surveys, collector, logger),
		SurveyTypes:         withOfflineReads(stores.SurveyTypes, mock.SurveyTypes, collector, logger),
		SurveyStatuses:      withOfflineReads(stores.SurveyStatuses, mock.SurveyStatuses, collector, logger),
		UserSettings:        withOfflineReads(stores.UserSettings, mock.UserSettings, collector, logger),
		BoardConfigurations: withOfflineReads(stores.BoardConfigurations, mock.BoardConfigurations, collector, logger),
	}
}

func dynamoStores(conn *storage.Connection, settings Settings, logger *zap.Logger) ports.Stores {
	name := func(collection string) string { return storage.TableName(settings.TablePrefix, collection) }
	clock := settings.Clock
	return ports.Stores{
		Customers:           dynamodb.NewTable(conn, name(storage.Customers), codec.Customers(clock), logger),
		Townships:           dynamodb.NewTable(conn, name(storage.Townships), codec.Townships(clock), logger),
		Properties:          dynamodb.NewTable(conn, name(storage.Properties), codec.Properties(clock), logger),
		Surveys:             dynamodb.NewTable(conn, name(storage.Surveys), codec.Surveys(clock), logger),
		SurveyTypes:         dynamodb.NewTable(conn, name(storage.SurveyTypes), codec.SurveyTypes(clock), logger),
		SurveyStatuses:      dynamodb.NewTable(conn, name(storage.SurveyStatuses), codec.SurveyStatuses(clock), logger),
		UserSettings:        dynamodb.NewTable(conn, name(storage.UserSettings), codec.UserSettings(clock), logger),
		BoardConfigurations: dynamodb.NewTable(conn, name(storage.BoardConfigurations), codec.BoardConfigurations(clock), logger),
	}
}

func relationalStores(conn *storage.Connection, prefix string, logger *zap.Logger) ports.Stores {
	return ports.Stores{
		Customers:           relational.Customers(conn, prefix, logger),
		Townships:           relational.Townships(conn, prefix, logger),
		Properties:          relational.Properties(conn, prefix, logger),
		Surveys:             relational.Surveys(conn, prefix, logger),
		SurveyTypes:         relational.SurveyTypes(conn, prefix, logger),
		SurveyStatuses:      relational.SurveyStatuses(conn, prefix, logger),
		UserSettings:        relational.UserSettings(conn, prefix, logger),
		BoardConfigurations: relational.BoardConfigurations(conn, prefix, logger),
	}
}

// NewMemoryStores builds empty in-memory stores.
func NewMemoryStores(clock codec.Clock) ports.Stores {
	return ports.Stores{
		Customers:           memory.NewTable(storage.Customers, codec.Customers(clock)),
		Townships:           memory.NewTable(storage.Townships, codec.Townships(clock)),
		Properties:          memory.NewTable(storage.Properties, codec.Properties(clock)),
		Surveys:             memory.NewTable(storage.Surveys, codec.Surveys(clock)),
		SurveyTypes:         memory.NewTable(storage.SurveyTypes, codec.SurveyTypes(clock)),
		SurveyStatuses:      memory.NewTable(storage.SurveyStatuses, codec.SurveyStatuses(clock)),
		UserSettings:        memory.NewTable(storage.UserSettings, codec.UserSettings(clock)),
		BoardConfigurations: memory.NewTable(storage.BoardConfigurations, codec.BoardConfigurations(clock)),
	}
}

// NewMockStores builds in-memory stores holding the offline dataset.
func NewMockStores(clock codec.Clock) (ports.Stores, error) {
	d := seed.Mock(utcNow(clock))

	customers := memory.NewTable(storage.Customers, codec.Customers(clock))
	townships := memory.NewTable(storage.Townships, codec.Townships(clock))
	properties := memory.NewTable(storage.Properties, codec.Properties(clock))
	surveys := memory.NewTable(storage.Surveys, codec.Surveys(clock))
	surveyTypes := memory.NewTable(storage.SurveyTypes, codec.SurveyTypes(clock))
	surveyStatuses := memory.NewTable(storage.SurveyStatuses, codec.SurveyStatuses(clock))

	for _, err := range []error{
		customers.Load(d.Customers...),
		townships.Load(d.Townships...),
		properties.Load(d.Properties...),
		surveys.Load(d.Surveys...),
		surveyTypes.Load(d.SurveyTypes...),
		surveyStatuses.Load(d.SurveyStatuses...),
	} {
		if err != nil {
			return ports.Stores{}, err
		}
	}

	return ports.Stores{
		Customers:           customers,
		Townships:           townships,
		Properties:          properties,
		Surveys:             surveys,
		SurveyTypes:         surveyTypes,
		SurveyStatuses:      surveyStatuses,
		UserSettings:        memory.NewTable(storage.UserSettings, codec.UserSettings(clock)),
		BoardConfigurations: memory.NewTable(storage.BoardConfigurations, codec.BoardConfigurations(clock)),
	}, nil
}

func utcNow(clock codec.Clock) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock().UTC()
}
