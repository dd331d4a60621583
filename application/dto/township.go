package dto

import (
	"survey-backend/domain/core/entities"
)

// TownshipCreate is the input of township creation.
type TownshipCreate struct {
	TownshipName string `json:"TownshipName" validate:"required,max=100"`
	County       string `json:"County" validate:"required,max=100"`
	State        string `json:"State" validate:"required,max=50"`
	IsActive     *bool  `json:"IsActive,omitempty"`
}

// TownshipUpdate is a partial township update.
type TownshipUpdate struct {
	TownshipName *string `json:"TownshipName,omitempty" validate:"omitempty,min=1,max=100"`
	County       *string `json:"County,omitempty" validate:"omitempty,min=1,max=100"`
	State        *string `json:"State,omitempty" validate:"omitempty,min=1,max=50"`
	IsActive     *bool   `json:"IsActive,omitempty"`
}

// Apply merges the supplied fields into t.
func (in *TownshipUpdate) Apply(t *entities.Township) {
	setString(&t.TownshipName, in.TownshipName)
	setString(&t.County, in.County)
	setString(&t.State, in.State)
	setBool(&t.IsActive, in.IsActive)
}
