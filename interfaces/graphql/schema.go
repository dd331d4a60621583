// Package graphql exposes the services as a GraphQL schema. Attribute names
// match the REST documents, except Property.PropertyType which is published
// as PropertyType_field.
package graphql

import (
	"fmt"

	gql "github.com/graphql-go/graphql"

	"survey-backend/application/dto"
	"survey-backend/application/services"
)

func idArgs(name string) gql.FieldConfigArgument {
	return gql.FieldConfigArgument{
		name: &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
	}
}

func inputArgs(in *gql.InputObject, id string) gql.FieldConfigArgument {
	args := gql.FieldConfigArgument{
		"input": &gql.ArgumentConfig{Type: gql.NewNonNull(in)},
	}
	if id != "" {
		args[id] = &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)}
	}
	return args
}

var listArgsConfig = gql.FieldConfigArgument{
	"skip":   &gql.ArgumentConfig{Type: gql.Int, DefaultValue: 0},
	"limit":  &gql.ArgumentConfig{Type: gql.Int, DefaultValue: dto.DefaultLimit},
	"search": &gql.ArgumentConfig{Type: gql.String},
}

// NewSchema builds the schema over svc.
func NewSchema(svc *services.Services) (gql.Schema, error) {
	t := newTypes()

	query := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"customers":  {Type: t.customers, Args: listArgsConfig, Resolve: page(svc.Customers.List)},
			"customer":   {Type: t.customer, Args: idArgs("customerId"), Resolve: get("customerId", svc.Customers.Get)},
			"surveys":    {Type: t.surveys, Args: listArgsConfig, Resolve: page(svc.Surveys.List)},
			"survey":     {Type: t.survey, Args: idArgs("surveyId"), Resolve: get("surveyId", svc.Surveys.Get)},
			"properties": {Type: t.properties, Args: listArgsConfig, Resolve: page(svc.Properties.List)},
			"property":   {Type: t.property, Args: idArgs("propertyId"), Resolve: get("propertyId", svc.Properties.Get)},
			"townships":  {Type: t.townships, Args: listArgsConfig, Resolve: page(svc.Townships.List)},
			"township":   {Type: t.township, Args: idArgs("townshipId"), Resolve: get("townshipId", svc.Townships.Get)},

			"surveyTypes":    {Type: gql.NewList(t.surveyType), Resolve: all(svc.Lookups.SurveyTypes)},
			"surveyType":     {Type: t.surveyType, Args: idArgs("surveyTypeId"), Resolve: get("surveyTypeId", svc.Lookups.SurveyType)},
			"surveyStatuses": {Type: gql.NewList(t.surveyStatus), Resolve: all(svc.Lookups.SurveyStatuses)},
			"surveyStatus":   {Type: t.surveyStatus, Args: idArgs("surveyStatusId"), Resolve: get("surveyStatusId", svc.Lookups.SurveyStatus)},

			"userSettings":    {Type: t.userSettings, Args: idArgs("settingsType"), Resolve: get("settingsType", svc.UserSettings.Get)},
			"allUserSettings": {Type: gql.NewList(t.userSettings), Resolve: all(svc.UserSettings.List)},

			"boardConfigurations":       {Type: gql.NewList(t.boardConfiguration), Resolve: all(svc.Boards.List)},
			"boardConfiguration":        {Type: t.boardConfiguration, Args: idArgs("boardConfigId"), Resolve: get("boardConfigId", svc.Boards.Get)},
			"boardConfigurationBySlug":  {Type: t.boardConfiguration, Args: idArgs("slug"), Resolve: get("slug", svc.Boards.BySlug)},
			"defaultBoardConfiguration": {Type: t.boardConfiguration, Resolve: defaultBoard(svc.Boards)},
		},
	})

	customerPayload := payload("CustomerPayload", "customer", t.customer)
	surveyPayload := payload("SurveyPayload", "survey", t.survey)
	propertyPayload := payload("PropertyPayload", "property", t.property)
	townshipPayload := payload("TownshipPayload", "township", t.township)
	surveyTypePayload := payload("SurveyTypePayload", "surveyType", t.surveyType)
	surveyStatusPayload := payload("SurveyStatusPayload", "surveyStatus", t.surveyStatus)
	boardPayload := payload("BoardConfigurationPayload", "boardConfiguration", t.boardConfiguration)
	settingsPayload := payload("UserSettingsPayload", "userSettings", t.userSettings)

	mutation := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"createCustomer": {Type: customerPayload, Args: inputArgs(t.customerInput, ""),
				Resolve: create("customer", nil, svc.Customers.Create)},
			"updateCustomer": {Type: customerPayload, Args: inputArgs(t.customerUpdateInput, "customerId"),
				Resolve: update("customer", "customerId", nil, svc.Customers.Update)},
			"deleteCustomer": {Type: t.deleted, Args: idArgs("customerId"), Resolve: remove("customerId", svc.Customers.Delete)},

			"createSurvey": {Type: surveyPayload, Args: inputArgs(t.surveyInput, ""),
				Resolve: create("survey", nil, svc.Surveys.Create)},
			"updateSurvey": {Type: surveyPayload, Args: inputArgs(t.surveyUpdateInput, "surveyId"),
				Resolve: update("survey", "surveyId", nil, svc.Surveys.Update)},
			"deleteSurvey": {Type: t.deleted, Args: idArgs("surveyId"), Resolve: remove("surveyId", svc.Surveys.Delete)},

			"createProperty": {Type: propertyPayload, Args: inputArgs(t.propertyInput, ""),
				Resolve: create("property", dto.PropertyTypeIn, svc.Properties.Create)},
			"updateProperty": {Type: propertyPayload, Args: inputArgs(t.propertyUpdateInput, "propertyId"),
				Resolve: update("property", "propertyId", dto.PropertyTypeIn, svc.Properties.Update)},
			"deleteProperty": {Type: t.deleted, Args: idArgs("propertyId"), Resolve: remove("propertyId", svc.Properties.Delete)},

			"createTownship": {Type: townshipPayload, Args: inputArgs(t.townshipInput, ""),
				Resolve: create("township", nil, svc.Townships.Create)},
			"updateTownship": {Type: townshipPayload, Args: inputArgs(t.townshipUpdateInput, "townshipId"),
				Resolve: update("township", "townshipId", nil, svc.Townships.Update)},
			"deleteTownship": {Type: t.deleted, Args: idArgs("townshipId"), Resolve: remove("townshipId", svc.Townships.Delete)},

			"createSurveyType": {Type: surveyTypePayload, Args: inputArgs(t.surveyTypeInput, ""),
				Resolve: create("surveyType", nil, svc.Lookups.CreateSurveyType)},
			"updateSurveyType": {Type: surveyTypePayload, Args: inputArgs(t.surveyTypeUpdateInput, "surveyTypeId"),
				Resolve: update("surveyType", "surveyTypeId", nil, svc.Lookups.UpdateSurveyType)},
			"deleteSurveyType": {Type: t.deleted, Args: idArgs("surveyTypeId"), Resolve: remove("surveyTypeId", svc.Lookups.DeleteSurveyType)},

			"createSurveyStatus": {Type: surveyStatusPayload, Args: inputArgs(t.surveyStatusInput, ""),
				Resolve: create("surveyStatus", nil, svc.Lookups.CreateSurveyStatus)},
			"updateSurveyStatus": {Type: surveyStatusPayload, Args: inputArgs(t.surveyStatusUpdateInput, "surveyStatusId"),
				Resolve: update("surveyStatus", "surveyStatusId", nil, svc.Lookups.UpdateSurveyStatus)},
			"deleteSurveyStatus": {Type: t.deleted, Args: idArgs("surveyStatusId"), Resolve: remove("surveyStatusId", svc.Lookups.DeleteSurveyStatus)},

			"createBoardConfiguration": {Type: boardPayload, Args: inputArgs(t.boardInput, ""),
				Resolve: create("boardConfiguration", nil, svc.Boards.Create)},
			"updateBoardConfiguration": {Type: boardPayload, Args: inputArgs(t.boardUpdateInput, "boardConfigId"),
				Resolve: update("boardConfiguration", "boardConfigId", nil, svc.Boards.Update)},
			"deleteBoardConfiguration": {Type: t.deleted, Args: idArgs("boardConfigId"), Resolve: remove("boardConfigId", svc.Boards.Delete)},

			"upsertUserSettings": {Type: settingsPayload, Args: inputArgs(t.userSettingsInput, ""), Resolve: upsertSettings(svc.UserSettings)},
			"deleteUserSettings": {Type: t.deleted, Args: idArgs("settingsType"), Resolve: remove("settingsType", svc.UserSettings.Delete)},
		},
	})

	schema, err := gql.NewSchema(gql.SchemaConfig{Query: query, Mutation: mutation})
	if err != nil {
		return gql.Schema{}, fmt.Errorf("failed to build GraphQL schema: %w", err)
	}
	return schema, nil
}

func defaultBoard(boards *services.BoardService) gql.FieldResolveFn {
	return func(p gql.ResolveParams) (interface{}, error) {
		return result(boards.Default(p.Context))
	}
}

// upsertSettings takes SettingsData as JSON text.
func upsertSettings(settings *services.UserSettingsService) gql.FieldResolveFn {
	return func(p gql.ResolveParams) (interface{}, error) {
		in, _ := p.Args["input"].(map[string]interface{})
		settingsType, _ := in["SettingsType"].(string)
		data, _ := in["SettingsData"].(string)
		u, err := settings.Upsert(p.Context, &dto.UserSettingsCreate{
			SettingsType: settingsType,
			SettingsData: []byte(data),
		})
		return wrapped("userSettings", u, err)
	}
}
