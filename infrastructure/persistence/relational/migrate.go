package relational

import (
	"context"
	"fmt"

	"github.com/go-gormigrate/gormigrate/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"survey-backend/infrastructure/persistence/storage"
)

// Migrate brings the schema up to date. Applied migrations are recorded in
// <prefix>migrations, so running it again is a no-op.
func Migrate(ctx context.Context, conn *storage.Connection, prefix string, logger *zap.Logger) error {
	db, err := conn.DB(ctx)
	if err != nil {
		return err
	}

	opts := *gormigrate.DefaultOptions
	opts.TableName = prefix + "migrations"

	m := gormigrate.New(db, &opts, migrations(prefix))
	if err := m.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	logger.Info("Relational schema migrated", zap.String("prefix", prefix))
	return nil
}

func migrations(prefix string) []*gormigrate.Migration {
	tables := []struct {
		collection string
		row        interface{}
	}{
		{storage.Customers, &CustomerRow{}},
		{storage.Townships, &TownshipRow{}},
		{storage.Properties, &PropertyRow{}},
		{storage.SurveyTypes, &SurveyTypeRow{}},
		{storage.SurveyStatuses, &SurveyStatusRow{}},
		{storage.Surveys, &SurveyRow{}},
		{storage.UserSettings, &UserSettingsRow{}},
		{storage.BoardConfigurations, &BoardConfigurationRow{}},
	}

	return []*gormigrate.Migration{
		{
			ID: "20240601_create_survey_tables",
			Migrate: func(tx *gorm.DB) error {
				for _, t := range tables {
					if err := tx.Table(TableName(prefix, t.collection)).AutoMigrate(t.row); err != nil {
						return fmt.Errorf("failed to create %s: %w", t.collection, err)
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				for i := len(tables) - 1; i >= 0; i-- {
					if err := tx.Migrator().DropTable(TableName(prefix, tables[i].collection)); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
