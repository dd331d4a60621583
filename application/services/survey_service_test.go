package services_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survey-backend/application/dto"
	"survey-backend/domain/core/valueobjects"
	apperrors "survey-backend/pkg/errors"
)

func TestSurveyService_CreateAcceptsEitherStatusName(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   dto.SurveyCreate
		want string
	}{
		{"canonical", dto.SurveyCreate{SurveyNumber: "S-1", SurveyStatusID: "st-1"}, "st-1"},
		{"legacy", dto.SurveyCreate{SurveyNumber: "S-2", StatusID: "st-2"}, "st-2"},
		{"both, canonical wins", dto.SurveyCreate{SurveyNumber: "S-3", SurveyStatusID: "st-3", StatusID: "other"}, "st-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			created, err := svc.Surveys.Create(ctx, &tt.in)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.want, created.SurveyStatusID)
			assert.Equal(t, tt.want, created.StatusID)
			assert.True(t, created.IsActive)
			assert.False(t, created.RequestDate.IsZero())
		})
	}
}

func TestSurveyService_CreateRequiresNumberAndStatus(t *testing.T) {
	svc, _ := newServices(t)

	created, err := svc.Surveys.Create(context.Background(), &dto.SurveyCreate{})

	assert.Nil(t, created)
	require.True(t, apperrors.IsValidation(err))
	fields := apperrors.GetAppError(err).Details["fields"].(map[string]interface{})
	assert.Contains(t, fields, "SurveyNumber")
	assert.Contains(t, fields, "SurveyStatusId")
}

func TestSurveyService_MoneyKeepsTwoDecimals(t *testing.T) {
	// Arrange
	svc, _ := newServices(t)
	ctx := context.Background()
	var in dto.SurveyCreate
	require.NoError(t, json.Unmarshal([]byte(`{"SurveyNumber":"S-1","SurveyStatusId":"st","QuotedPrice":1500}`), &in))

	// Act
	created, err := svc.Surveys.Create(ctx, &in)
	require.NoError(t, err)
	got, err := svc.Surveys.Get(ctx, created.SurveyID)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, got.QuotedPrice)
	assert.Equal(t, "1500.00", got.QuotedPrice.String())
}

func TestSurveyService_GetExpandsReferences(t *testing.T) {
	// Arrange
	svc, _ := newServices(t)
	ctx := context.Background()
	customer, err := svc.Customers.Create(ctx, &dto.CustomerCreate{CustomerCode: "ACME001", CompanyName: "ACME"})
	require.NoError(t, err)
	property, err := svc.Properties.Create(ctx, &dto.PropertyCreate{PropertyCode: "P-1", PropertyName: "Lot 7"})
	require.NoError(t, err)
	status, err := svc.Lookups.CreateSurveyStatus(ctx, &dto.SurveyStatusCreate{StatusName: "Requested"})
	require.NoError(t, err)
	survey, err := svc.Surveys.Create(ctx, &dto.SurveyCreate{
		SurveyNumber: "S-100",
		StatusID:     status.SurveyStatusID,
		CustomerID:   &customer.CustomerID,
		PropertyID:   &property.PropertyID,
		SurveyTypeID: str("missing-type"),
		QuotedPrice:  valueobjects.MoneyPtr("1500"),
		Notes:        str("north boundary"),
	})
	require.NoError(t, err)

	// Act
	detail, err := svc.Surveys.Get(ctx, survey.SurveyID)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.NotNil(t, detail.Customer)
	assert.Equal(t, "ACME", detail.Customer.CompanyName)
	require.NotNil(t, detail.Property)
	assert.Equal(t, "Lot 7", detail.Property.PropertyName)
	require.NotNil(t, detail.Status)
	assert.Equal(t, "Requested", detail.Status.StatusName)
	assert.Nil(t, detail.SurveyType)
}

func TestSurveyService_UpdateWithLegacyStatus(t *testing.T) {
	// Arrange
	svc, _ := newServices(t)
	ctx := context.Background()
	created, err := svc.Surveys.Create(ctx, &dto.SurveyCreate{SurveyNumber: "S-1", SurveyStatusID: "a"})
	require.NoError(t, err)

	// Act
	updated, err := svc.Surveys.Update(ctx, created.SurveyID, &dto.SurveyUpdate{StatusID: str("b")})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "b", updated.SurveyStatusID)
	assert.Equal(t, "b", updated.StatusID)
}

func TestSurveyService_SearchAndSoftDelete(t *testing.T) {
	// Arrange
	svc, _ := newServices(t)
	ctx := context.Background()
	first, err := svc.Surveys.Create(ctx, &dto.SurveyCreate{SurveyNumber: "2024-001", SurveyStatusID: "st", Notes: str("Boundary dispute")})
	require.NoError(t, err)
	_, err = svc.Surveys.Create(ctx, &dto.SurveyCreate{SurveyNumber: "2024-002", SurveyStatusID: "st"})
	require.NoError(t, err)

	// Act
	byNotes, err := svc.Surveys.List(ctx, dto.NewListParams(0, 10, "BOUNDARY"))
	require.NoError(t, err)
	deleted, err := svc.Surveys.Delete(ctx, first.SurveyID)
	require.NoError(t, err)
	all, err := svc.Surveys.List(ctx, dto.NewListParams(0, 10, "2024"))
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 1, byNotes.Total)
	assert.Equal(t, first.SurveyID, byNotes.Items[0].SurveyID)
	assert.True(t, deleted)
	assert.Equal(t, 2, all.Total, "soft-deleted surveys are still listed")
	assert.False(t, all.Items[0].IsActive)
}

func TestPropertyService_GetExpandsTownship(t *testing.T) {
	// Arrange
	svc, _ := newServices(t)
	ctx := context.Background()
	township, err := svc.Townships.Create(ctx, &dto.TownshipCreate{TownshipName: "Southampton", County: "Suffolk", State: "NY"})
	require.NoError(t, err)
	property, err := svc.Properties.Create(ctx, &dto.PropertyCreate{
		PropertyCode: "P-1",
		PropertyName: "Dune Road",
		TownshipID:   &township.TownshipID,
		PropertyType: str("Residential"),
	})
	require.NoError(t, err)

	// Act
	detail, err := svc.Properties.Get(ctx, property.PropertyID)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, detail.Township)
	assert.Equal(t, "Southampton", detail.Township.TownshipName)
	assert.Equal(t, "Residential", *detail.PropertyType)
}

func TestPropertyService_DeleteRemoves(t *testing.T) {
	// Arrange
	svc, _ := newServices(t)
	ctx := context.Background()
	property, err := svc.Properties.Create(ctx, &dto.PropertyCreate{PropertyCode: "P-1", PropertyName: "Dune Road"})
	require.NoError(t, err)

	// Act
	first, err := svc.Properties.Delete(ctx, property.PropertyID)
	require.NoError(t, err)
	second, err := svc.Properties.Delete(ctx, property.PropertyID)
	require.NoError(t, err)
	got, err := svc.Properties.Get(ctx, property.PropertyID)

	// Assert
	require.NoError(t, err)
	assert.True(t, first)
	assert.False(t, second)
	assert.Nil(t, got)
}

func TestTownshipService_ListSortsByName(t *testing.T) {
	// Arrange
	svc, _ := newServices(t)
	ctx := context.Background()
	for _, name := range []string{"southold", "Brookhaven", "East Hampton"} {
		_, err := svc.Townships.Create(ctx, &dto.TownshipCreate{TownshipName: name, County: "Suffolk", State: "NY"})
		require.NoError(t, err)
	}

	// Act
	page, err := svc.Townships.List(ctx, dto.NewListParams(0, 0, ""))
	require.NoError(t, err)
	filtered, err := svc.Townships.List(ctx, dto.NewListParams(0, 0, "hampton"))
	require.NoError(t, err)

	// Assert
	names := make([]string, 0, len(page.Items))
	for _, tw := range page.Items {
		names = append(names, tw.TownshipName)
	}
	assert.Equal(t, []string{"Brookhaven", "East Hampton", "southold"}, names)
	assert.Equal(t, 1, filtered.Total)
}

func TestTownshipService_DeleteIsSoft(t *testing.T) {
	// Arrange
	svc, _ := newServices(t)
	ctx := context.Background()
	kept, err := svc.Townships.Create(ctx, &dto.TownshipCreate{TownshipName: "Brookhaven", County: "Suffolk", State: "NY"})
	require.NoError(t, err)
	gone, err := svc.Townships.Create(ctx, &dto.TownshipCreate{TownshipName: "Southold", County: "Suffolk", State: "NY"})
	require.NoError(t, err)

	// Act
	deleted, err := svc.Townships.Delete(ctx, gone.TownshipID)
	require.NoError(t, err)
	got, err := svc.Townships.Get(ctx, gone.TownshipID)
	require.NoError(t, err)
	page, err := svc.Townships.List(ctx, dto.NewListParams(0, 0, ""))
	require.NoError(t, err)

	// Assert
	assert.True(t, deleted)
	require.NotNil(t, got)
	assert.False(t, got.IsActive)
	assert.True(t, got.ModifiedDate.After(got.CreatedDate))
	require.Len(t, page.Items, 1)
	assert.Equal(t, kept.TownshipID, page.Items[0].TownshipID)
	assert.Equal(t, 1, page.Total)
}

func TestLookupService_StatusesFollowWorkflowOrder(t *testing.T) {
	// Arrange
	svc, _ := newServices(t)
	ctx := context.Background()
	requested, err := svc.Lookups.CreateSurveyStatus(ctx, &dto.SurveyStatusCreate{StatusName: "Requested"})
	require.NoError(t, err)
	fieldwork, err := svc.Lookups.CreateSurveyStatus(ctx, &dto.SurveyStatusCreate{StatusName: "Fieldwork"})
	require.NoError(t, err)
	_, err = svc.Lookups.CreateSurveyStatus(ctx, &dto.SurveyStatusCreate{StatusName: "Archived", SortOrder: integer(0)})
	require.NoError(t, err)
	inactive, err := svc.Lookups.CreateSurveyStatus(ctx, &dto.SurveyStatusCreate{StatusName: "Old"})
	require.NoError(t, err)
	_, err = svc.Lookups.DeleteSurveyStatus(ctx, inactive.SurveyStatusID)
	require.NoError(t, err)

	// Act
	statuses, err := svc.Lookups.SurveyStatuses(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, requested.SortOrder)
	assert.Equal(t, 2, fieldwork.SortOrder)
	require.Len(t, statuses, 3)
	assert.Equal(t, "Archived", statuses[0].StatusName)
	assert.Equal(t, "Requested", statuses[1].StatusName)
	assert.Equal(t, "Fieldwork", statuses[2].StatusName)
}

func TestLookupService_TypesActiveByName(t *testing.T) {
	// Arrange
	svc, _ := newServices(t)
	ctx := context.Background()
	_, err := svc.Lookups.CreateSurveyType(ctx, &dto.SurveyTypeCreate{SurveyTypeName: "Topographic", BasePrice: valueobjects.MoneyPtr("850")})
	require.NoError(t, err)
	_, err = svc.Lookups.CreateSurveyType(ctx, &dto.SurveyTypeCreate{SurveyTypeName: "boundary"})
	require.NoError(t, err)
	_, err = svc.Lookups.CreateSurveyType(ctx, &dto.SurveyTypeCreate{SurveyTypeName: "Elevation", IsActive: boolean(false)})
	require.NoError(t, err)

	// Act
	types, err := svc.Lookups.SurveyTypes(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "boundary", types[0].SurveyTypeName)
	assert.Equal(t, "Topographic", types[1].SurveyTypeName)
	assert.Equal(t, "850.00", types[1].BasePrice.String())
}
