package entities

import (
	"time"

	"survey-backend/domain/core/valueobjects"
)

// Property is a parcel of land. LegacyTax, District, Section, Block and Lot
// are free-text cadastral identifiers carried over from the previous system
// and are not validated. Deleting a property removes it.
type Property struct {
	PropertyID          string  `json:"PropertyId" dynamodbav:"PropertyId"`
	PropertyCode        string  `json:"PropertyCode" dynamodbav:"PropertyCode"`
	PropertyName        string  `json:"PropertyName" dynamodbav:"PropertyName"`
	PropertyDescription *string `json:"PropertyDescription" dynamodbav:"PropertyDescription,omitempty"`
	OwnerName           *string `json:"OwnerName" dynamodbav:"OwnerName,omitempty"`
	OwnerPhone          *string `json:"OwnerPhone" dynamodbav:"OwnerPhone,omitempty"`
	OwnerEmail          *string `json:"OwnerEmail" dynamodbav:"OwnerEmail,omitempty"`
	SurveyPrimaryKey    *int    `json:"SurveyPrimaryKey" dynamodbav:"SurveyPrimaryKey,omitempty"`
	LegacyTax           *string `json:"LegacyTax" dynamodbav:"LegacyTax,omitempty"`
	District            *string `json:"District" dynamodbav:"District,omitempty"`
	Section             *string `json:"Section" dynamodbav:"Section,omitempty"`
	Block               *string `json:"Block" dynamodbav:"Block,omitempty"`
	Lot                 *string `json:"Lot" dynamodbav:"Lot,omitempty"`
	AddressID           *string `json:"AddressId" dynamodbav:"AddressId,omitempty"`
	TownshipID          *string `json:"TownshipId" dynamodbav:"TownshipId,omitempty"`
	PropertyType        *string `json:"PropertyType" dynamodbav:"PropertyType,omitempty"`
	IsActive            bool    `json:"IsActive" dynamodbav:"IsActive"`
	Audit
}

func NewProperty(code, name string, now time.Time, actor string) *Property {
	return &Property{
		PropertyID:   valueobjects.NewID(),
		PropertyCode: code,
		PropertyName: name,
		IsActive:     true,
		Audit:        NewAudit(now, actor),
	}
}

func (p *Property) EntityID() string { return p.PropertyID }

// PropertyDetail is the read view with the township reference expanded.
type PropertyDetail struct {
	*Property
	Township *Township `json:"township,omitempty"`
}
