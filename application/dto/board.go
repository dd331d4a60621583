package dto

import (
	"survey-backend/domain/core/entities"
)

type BoardConfigurationCreate struct {
	BoardName   string  `json:"BoardName" validate:"required,max=200"`
	Description *string `json:"Description,omitempty"`
	IsDefault   bool    `json:"IsDefault,omitempty"`
}

type BoardConfigurationUpdate struct {
	BoardName   *string `json:"BoardName,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"Description,omitempty"`
	IsDefault   *bool   `json:"IsDefault,omitempty"`
	IsActive    *bool   `json:"IsActive,omitempty"`
}

// Apply merges the supplied fields into b. Renaming does not re-derive the
// slug, so existing links keep working.
func (in *BoardConfigurationUpdate) Apply(b *entities.BoardConfiguration) {
	setString(&b.BoardName, in.BoardName)
	setOptional(&b.Description, in.Description)
	setBool(&b.IsDefault, in.IsDefault)
	setBool(&b.IsActive, in.IsActive)
}
