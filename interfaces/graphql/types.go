package graphql

import (
	gql "github.com/graphql-go/graphql"
)

// attr is one scalar attribute of an object or input type.
type attr struct {
	name    string
	scalar  *gql.Scalar
	nonNull bool
}

func attrs(scalar *gql.Scalar, nonNull bool, names ...string) []attr {
	out := make([]attr, len(names))
	for i, n := range names {
		out[i] = attr{name: n, scalar: scalar, nonNull: nonNull}
	}
	return out
}

func (a attr) output() gql.Output {
	if a.nonNull {
		return gql.NewNonNull(a.scalar)
	}
	return a.scalar
}

func (a attr) input() gql.Input {
	if a.nonNull {
		return gql.NewNonNull(a.scalar)
	}
	return a.scalar
}

// Identifiers, dates and decimal amounts are all strings on the wire.
func strs(names ...string) []attr     { return attrs(gql.String, false, names...) }
func ints(names ...string) []attr     { return attrs(gql.Int, false, names...) }
func bools(names ...string) []attr    { return attrs(gql.Boolean, false, names...) }
func required(names ...string) []attr { return attrs(gql.String, true, names...) }

var (
	auditAttrs     = strs("CreatedDate", "ModifiedDate", "CreatedBy", "ModifiedBy")
	timestampAttrs = strs("CreatedDate", "ModifiedDate")
)

func object(name string, groups ...[]attr) *gql.Object {
	fields := gql.Fields{}
	for _, group := range groups {
		for _, a := range group {
			fields[a.name] = &gql.Field{Type: a.output()}
		}
	}
	return gql.NewObject(gql.ObjectConfig{Name: name, Fields: fields})
}

func input(name string, groups ...[]attr) *gql.InputObject {
	fields := gql.InputObjectConfigFieldMap{}
	for _, group := range groups {
		for _, a := range group {
			fields[a.name] = &gql.InputObjectFieldConfig{Type: a.input()}
		}
	}
	return gql.NewInputObject(gql.InputObjectConfig{Name: name, Fields: fields})
}

// fromKey resolves a field stored under a different key of the source map.
func fromKey(key string) gql.FieldResolveFn {
	return func(p gql.ResolveParams) (interface{}, error) {
		if m, ok := p.Source.(map[string]interface{}); ok {
			return m[key], nil
		}
		return nil, nil
	}
}

// connection is a list window. The items are also exposed under alias, the
// field name older clients query.
func connection(name, alias string, item *gql.Object) *gql.Object {
	items := gql.NewList(item)
	fields := gql.Fields{
		"items": &gql.Field{Type: items},
		"total": &gql.Field{Type: gql.Int},
		"page":  &gql.Field{Type: gql.Int},
		"size":  &gql.Field{Type: gql.Int},
	}
	if alias != "" {
		fields[alias] = &gql.Field{Type: items, Resolve: fromKey("items")}
	}
	return gql.NewObject(gql.ObjectConfig{Name: name, Fields: fields})
}

// payload wraps a mutation result under field.
func payload(name, field string, t gql.Output) *gql.Object {
	return gql.NewObject(gql.ObjectConfig{
		Name:   name,
		Fields: gql.Fields{field: &gql.Field{Type: t}},
	})
}

// types holds every object and input type of the schema.
type types struct {
	customer, township, property, survey   *gql.Object
	surveyType, surveyStatus               *gql.Object
	userSettings, boardConfiguration       *gql.Object
	customers, townships, properties       *gql.Object
	surveys                                *gql.Object
	deleted                                *gql.Object
	customerInput, customerUpdateInput     *gql.InputObject
	townshipInput, townshipUpdateInput     *gql.InputObject
	propertyInput, propertyUpdateInput     *gql.InputObject
	surveyInput, surveyUpdateInput         *gql.InputObject
	surveyTypeInput, surveyTypeUpdateInput *gql.InputObject
	surveyStatusInput                      *gql.InputObject
	surveyStatusUpdateInput                *gql.InputObject
	boardInput, boardUpdateInput           *gql.InputObject
	userSettingsInput                      *gql.InputObject
}

func newTypes() *types {
	t := &types{}

	customerAttrs := strs("ContactFirstName", "ContactLastName", "Email", "Phone", "Fax", "Website")
	t.customer = object("Customer",
		required("CustomerId"),
		strs("CustomerCode", "CompanyName"),
		customerAttrs,
		bools("IsActive"),
		auditAttrs,
	)
	t.customerInput = input("CustomerInput", required("CustomerCode", "CompanyName"), customerAttrs, bools("IsActive"))
	t.customerUpdateInput = input("CustomerUpdateInput", strs("CustomerCode", "CompanyName"), customerAttrs, bools("IsActive"))

	t.township = object("Township",
		required("TownshipId"),
		strs("TownshipName", "County", "State"),
		bools("IsActive"),
		auditAttrs,
	)
	t.townshipInput = input("TownshipInput", required("TownshipName", "County", "State"), bools("IsActive"))
	t.townshipUpdateInput = input("TownshipUpdateInput", strs("TownshipName", "County", "State"), bools("IsActive"))

	propertyAttrs := strs("PropertyDescription", "OwnerName", "OwnerPhone", "OwnerEmail",
		"LegacyTax", "District", "Section", "Block", "Lot", "AddressId", "TownshipId", "PropertyType_field")
	t.property = object("Property",
		required("PropertyId"),
		strs("PropertyCode", "PropertyName"),
		propertyAttrs,
		ints("SurveyPrimaryKey"),
		bools("IsActive"),
		auditAttrs,
	)
	t.property.AddFieldConfig("township", &gql.Field{Type: t.township})
	t.propertyInput = input("PropertyInput", required("PropertyCode", "PropertyName"), propertyAttrs, ints("SurveyPrimaryKey"), bools("IsActive"))
	t.propertyUpdateInput = input("PropertyUpdateInput", strs("PropertyCode", "PropertyName"), propertyAttrs, ints("SurveyPrimaryKey"), bools("IsActive"))

	surveyTypeAttrs := strs("Description", "BasePrice")
	t.surveyType = object("SurveyType",
		required("SurveyTypeId"),
		strs("SurveyTypeName"),
		surveyTypeAttrs,
		ints("EstimatedDuration"),
		bools("IsActive"),
		timestampAttrs,
	)
	t.surveyTypeInput = input("SurveyTypeInput", required("SurveyTypeName"), surveyTypeAttrs, ints("EstimatedDuration"), bools("IsActive"))
	t.surveyTypeUpdateInput = input("SurveyTypeUpdateInput", strs("SurveyTypeName"), surveyTypeAttrs, ints("EstimatedDuration"), bools("IsActive"))

	statusAttrs := strs("StatusCode", "Description")
	t.surveyStatus = object("SurveyStatus",
		required("SurveyStatusId"),
		strs("StatusName"),
		statusAttrs,
		ints("SortOrder"),
		bools("IsActive"),
		timestampAttrs,
	)
	t.surveyStatusInput = input("SurveyStatusInput", required("StatusName"), statusAttrs, ints("SortOrder"), bools("IsActive"))
	t.surveyStatusUpdateInput = input("SurveyStatusUpdateInput", strs("StatusName"), statusAttrs, ints("SortOrder"), bools("IsActive"))

	surveyAttrs := strs("SurveyStatusId", "StatusId", "CustomerId", "PropertyId", "SurveyTypeId",
		"Title", "Description", "PurposeCode",
		"RequestDate", "ScheduledDate", "CompletedDate", "DeliveryDate", "DueDate",
		"QuotedPrice", "FinalPrice", "EstimatedCost", "ActualCost",
		"Notes", "SurveyorNotes")
	surveyFlags := bools("IsFieldworkComplete", "IsDrawingComplete", "IsScanned", "IsDelivered", "IsActive")
	t.survey = object("Survey",
		required("SurveyId"),
		strs("SurveyNumber"),
		surveyAttrs,
		surveyFlags,
		auditAttrs,
	)
	t.survey.AddFieldConfig("customer", &gql.Field{Type: t.customer})
	t.survey.AddFieldConfig("property", &gql.Field{Type: t.property})
	t.survey.AddFieldConfig("surveyType", &gql.Field{Type: t.surveyType, Resolve: fromKey("survey_type")})
	t.survey.AddFieldConfig("status", &gql.Field{Type: t.surveyStatus})
	t.surveyInput = input("SurveyInput", required("SurveyNumber"), surveyAttrs, surveyFlags)
	t.surveyUpdateInput = input("SurveyUpdateInput", strs("SurveyNumber"), surveyAttrs, surveyFlags)

	t.userSettings = object("UserSettings",
		required("UserSettingsId"),
		strs("UserId", "SettingsType", "SettingsData"),
		bools("IsActive"),
		timestampAttrs,
	)
	t.userSettingsInput = input("UserSettingsInput", required("SettingsType", "SettingsData"))

	t.boardConfiguration = object("BoardConfiguration",
		required("BoardConfigId"),
		strs("BoardName", "BoardSlug", "Description", "UserId"),
		bools("IsDefault", "IsActive"),
		auditAttrs,
	)
	t.boardInput = input("BoardConfigurationInput", required("BoardName"), strs("Description"), bools("IsDefault"))
	t.boardUpdateInput = input("BoardConfigurationUpdateInput", strs("BoardName", "Description"), bools("IsDefault", "IsActive"))

	t.customers = connection("CustomerConnection", "customers", t.customer)
	t.townships = connection("TownshipConnection", "townships", t.township)
	t.properties = connection("PropertyConnection", "properties", t.property)
	t.surveys = connection("SurveyConnection", "surveys", t.survey)

	t.deleted = gql.NewObject(gql.ObjectConfig{
		Name:   "DeletePayload",
		Fields: gql.Fields{"success": &gql.Field{Type: gql.Boolean}},
	})

	return t
}
