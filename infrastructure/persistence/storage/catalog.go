package storage

// Collection names.
const (
	Customers           = "Customers"
	Townships           = "Townships"
	Properties          = "Properties"
	Surveys             = "Surveys"
	SurveyTypes         = "SurveyTypes"
	SurveyStatuses      = "SurveyStatuses"
	UserSettings        = "UserSettings"
	BoardConfigurations = "BoardConfigurations"
)

// Index is a secondary lookup index on one string attribute.
type Index struct {
	Name    string
	HashKey string
	SortKey string
}

// TableSchema describes one collection for provisioning. Reads and writes
// only need the primary key, which the codecs carry themselves.
type TableSchema struct {
	Name       string
	PrimaryKey string
	Indexes    []Index
}

// Catalog is the fixed set of collections the service uses.
var Catalog = []TableSchema{
	{
		Name:       Customers,
		PrimaryKey: "CustomerId",
		Indexes: []Index{
			{Name: "CustomerCodeIndex", HashKey: "CustomerCode"},
			{Name: "CompanyNameIndex", HashKey: "CompanyName"},
		},
	},
	{
		Name:       Townships,
		PrimaryKey: "TownshipId",
		Indexes:    []Index{{Name: "TownshipNameIndex", HashKey: "TownshipName"}},
	},
	{
		Name:       Properties,
		PrimaryKey: "PropertyId",
		Indexes:    []Index{{Name: "PropertyCodeIndex", HashKey: "PropertyCode"}},
	},
	{Name: SurveyTypes, PrimaryKey: "SurveyTypeId"},
	{Name: SurveyStatuses, PrimaryKey: "SurveyStatusId"},
	{
		Name:       Surveys,
		PrimaryKey: "SurveyId",
		Indexes: []Index{
			{Name: "SurveyNumberIndex", HashKey: "SurveyNumber"},
			{Name: "CustomerIdIndex", HashKey: "CustomerId"},
		},
	},
	{
		Name:       UserSettings,
		PrimaryKey: "UserSettingsId",
		Indexes:    []Index{{Name: "UserIdIndex", HashKey: "UserId", SortKey: "SettingsType"}},
	},
	{
		Name:       BoardConfigurations,
		PrimaryKey: "BoardConfigId",
		Indexes:    []Index{{Name: "BoardSlugIndex", HashKey: "BoardSlug"}},
	},
}

// TableName applies the configured prefix to a collection name.
func TableName(prefix, collection string) string {
	return prefix + collection
}
