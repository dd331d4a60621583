package dto

import (
	"survey-backend/domain/core/entities"
)

// PropertyTypeField is the external name of Property.PropertyType on the
// GraphQL surface, where PropertyType names the object type.
const PropertyTypeField = "PropertyType_field"

const propertyTypeInternal = "PropertyType"

// PropertyTypeIn rewrites the external attribute name back to the internal
// one in an inbound argument map.
func PropertyTypeIn(args map[string]interface{}) map[string]interface{} {
	return renameKey(args, PropertyTypeField, propertyTypeInternal)
}

// PropertyTypeOut rewrites the internal attribute name to the external one
// in an outbound object.
func PropertyTypeOut(obj map[string]interface{}) map[string]interface{} {
	return renameKey(obj, propertyTypeInternal, PropertyTypeField)
}

func renameKey(m map[string]interface{}, from, to string) map[string]interface{} {
	if m == nil {
		return nil
	}
	v, ok := m[from]
	if !ok {
		return m
	}
	out := make(map[string]interface{}, len(m))
	for k, val := range m {
		if k != from {
			out[k] = val
		}
	}
	out[to] = v
	return out
}

// PropertyCreate is the input of property creation.
type PropertyCreate struct {
	PropertyCode        string  `json:"PropertyCode" validate:"required,max=50"`
	PropertyName        string  `json:"PropertyName" validate:"required,max=200"`
	PropertyDescription *string `json:"PropertyDescription,omitempty"`
	OwnerName           *string `json:"OwnerName,omitempty" validate:"omitempty,max=200"`
	OwnerPhone          *string `json:"OwnerPhone,omitempty" validate:"omitempty,max=50"`
	OwnerEmail          *string `json:"OwnerEmail,omitempty" validate:"omitempty,email"`
	SurveyPrimaryKey    *int    `json:"SurveyPrimaryKey,omitempty"`
	LegacyTax           *string `json:"LegacyTax,omitempty"`
	District            *string `json:"District,omitempty"`
	Section             *string `json:"Section,omitempty"`
	Block               *string `json:"Block,omitempty"`
	Lot                 *string `json:"Lot,omitempty"`
	AddressID           *string `json:"AddressId,omitempty"`
	TownshipID          *string `json:"TownshipId,omitempty"`
	PropertyType        *string `json:"PropertyType,omitempty" validate:"omitempty,max=50"`
	IsActive            *bool   `json:"IsActive,omitempty"`
}

// Fill copies the optional fields onto a new property.
func (in *PropertyCreate) Fill(p *entities.Property) {
	p.PropertyDescription = in.PropertyDescription
	p.OwnerName = in.OwnerName
	p.OwnerPhone = in.OwnerPhone
	p.OwnerEmail = in.OwnerEmail
	p.SurveyPrimaryKey = in.SurveyPrimaryKey
	p.LegacyTax = in.LegacyTax
	p.District = in.District
	p.Section = in.Section
	p.Block = in.Block
	p.Lot = in.Lot
	p.AddressID = in.AddressID
	p.TownshipID = in.TownshipID
	p.PropertyType = in.PropertyType
	setBool(&p.IsActive, in.IsActive)
}

// PropertyUpdate is a partial property update.
type PropertyUpdate struct {
	PropertyCode        *string `json:"PropertyCode,omitempty" validate:"omitempty,min=1,max=50"`
	PropertyName        *string `json:"PropertyName,omitempty" validate:"omitempty,min=1,max=200"`
	PropertyDescription *string `json:"PropertyDescription,omitempty"`
	OwnerName           *string `json:"OwnerName,omitempty" validate:"omitempty,max=200"`
	OwnerPhone          *string `json:"OwnerPhone,omitempty" validate:"omitempty,max=50"`
	OwnerEmail          *string `json:"OwnerEmail,omitempty" validate:"omitempty,email"`
	SurveyPrimaryKey    *int    `json:"SurveyPrimaryKey,omitempty"`
	LegacyTax           *string `json:"LegacyTax,omitempty"`
	District            *string `json:"District,omitempty"`
	Section             *string `json:"Section,omitempty"`
	Block               *string `json:"Block,omitempty"`
	Lot                 *string `json:"Lot,omitempty"`
	AddressID           *string `json:"AddressId,omitempty"`
	TownshipID          *string `json:"TownshipId,omitempty"`
	PropertyType        *string `json:"PropertyType,omitempty" validate:"omitempty,max=50"`
	IsActive            *bool   `json:"IsActive,omitempty"`
}

// Apply merges the supplied fields into p.
func (in *PropertyUpdate) Apply(p *entities.Property) {
	setString(&p.PropertyCode, in.PropertyCode)
	setString(&p.PropertyName, in.PropertyName)
	setOptional(&p.PropertyDescription, in.PropertyDescription)
	setOptional(&p.OwnerName, in.OwnerName)
	setOptional(&p.OwnerPhone, in.OwnerPhone)
	setOptional(&p.OwnerEmail, in.OwnerEmail)
	setOptional(&p.SurveyPrimaryKey, in.SurveyPrimaryKey)
	setOptional(&p.LegacyTax, in.LegacyTax)
	setOptional(&p.District, in.District)
	setOptional(&p.Section, in.Section)
	setOptional(&p.Block, in.Block)
	setOptional(&p.Lot, in.Lot)
	setOptional(&p.AddressID, in.AddressID)
	setOptional(&p.TownshipID, in.TownshipID)
	setOptional(&p.PropertyType, in.PropertyType)
	setBool(&p.IsActive, in.IsActive)
}
