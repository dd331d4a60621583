package relational

import (
	"go.uber.org/zap"

	"survey-backend/domain/core/entities"
	"survey-backend/infrastructure/persistence/storage"
)

var sqlNames = map[string]string{
	storage.Customers:           "customers",
	storage.Townships:           "townships",
	storage.Properties:          "properties",
	storage.Surveys:             "surveys",
	storage.SurveyTypes:         "survey_types",
	storage.SurveyStatuses:      "survey_statuses",
	storage.UserSettings:        "user_settings",
	storage.BoardConfigurations: "board_configurations",
}

// TableName is the SQL table for a collection, with the configured prefix.
func TableName(prefix, collection string) string {
	return prefix + sqlNames[collection]
}

func Customers(conn *storage.Connection, prefix string, logger *zap.Logger) *Table[entities.Customer, CustomerRow] {
	return NewTable(conn, TableName(prefix, storage.Customers), Mapping[entities.Customer, CustomerRow]{
		Key:     "customer_id",
		ID:      func(c *entities.Customer) string { return c.CustomerID },
		ToRow:   customerToRow,
		FromRow: customerFromRow,
	}, logger)
}

func Townships(conn *storage.Connection, prefix string, logger *zap.Logger) *Table[entities.Township, TownshipRow] {
	return NewTable(conn, TableName(prefix, storage.Townships), Mapping[entities.Township, TownshipRow]{
		Key:     "township_id",
		ID:      func(t *entities.Township) string { return t.TownshipID },
		ToRow:   townshipToRow,
		FromRow: townshipFromRow,
	}, logger)
}

func Properties(conn *storage.Connection, prefix string, logger *zap.Logger) *Table[entities.Property, PropertyRow] {
	return NewTable(conn, TableName(prefix, storage.Properties), Mapping[entities.Property, PropertyRow]{
		Key:     "property_id",
		ID:      func(p *entities.Property) string { return p.PropertyID },
		ToRow:   propertyToRow,
		FromRow: propertyFromRow,
	}, logger)
}

func Surveys(conn *storage.Connection, prefix string, logger *zap.Logger) *Table[entities.Survey, SurveyRow] {
	return NewTable(conn, TableName(prefix, storage.Surveys), Mapping[entities.Survey, SurveyRow]{
		Key:     "survey_id",
		ID:      func(s *entities.Survey) string { return s.SurveyID },
		ToRow:   surveyToRow,
		FromRow: surveyFromRow,
	}, logger)
}

func SurveyTypes(conn *storage.Connection, prefix string, logger *zap.Logger) *Table[entities.SurveyType, SurveyTypeRow] {
	return NewTable(conn, TableName(prefix, storage.SurveyTypes), Mapping[entities.SurveyType, SurveyTypeRow]{
		Key:     "survey_type_id",
		ID:      func(t *entities.SurveyType) string { return t.SurveyTypeID },
		ToRow:   surveyTypeToRow,
		FromRow: surveyTypeFromRow,
	}, logger)
}

func SurveyStatuses(conn *storage.Connection, prefix string, logger *zap.Logger) *Table[entities.SurveyStatus, SurveyStatusRow] {
	return NewTable(conn, TableName(prefix, storage.SurveyStatuses), Mapping[entities.SurveyStatus, SurveyStatusRow]{
		Key:     "survey_status_id",
		ID:      func(s *entities.SurveyStatus) string { return s.SurveyStatusID },
		ToRow:   surveyStatusToRow,
		FromRow: surveyStatusFromRow,
	}, logger)
}

func UserSettings(conn *storage.Connection, prefix string, logger *zap.Logger) *Table[entities.UserSettings, UserSettingsRow] {
	return NewTable(conn, TableName(prefix, storage.UserSettings), Mapping[entities.UserSettings, UserSettingsRow]{
		Key:     "user_settings_id",
		ID:      func(u *entities.UserSettings) string { return u.UserSettingsID },
		ToRow:   userSettingsToRow,
		FromRow: userSettingsFromRow,
	}, logger)
}

func BoardConfigurations(conn *storage.Connection, prefix string, logger *zap.Logger) *Table[entities.BoardConfiguration, BoardConfigurationRow] {
	return NewTable(conn, TableName(prefix, storage.BoardConfigurations), Mapping[entities.BoardConfiguration, BoardConfigurationRow]{
		Key:     "board_config_id",
		ID:      func(b *entities.BoardConfiguration) string { return b.BoardConfigID },
		ToRow:   boardToRow,
		FromRow: boardFromRow,
	}, logger)
}
