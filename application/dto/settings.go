package dto

import (
	"encoding/json"

	"survey-backend/domain/core/entities"
)

// UserSettingsCreate is the input of create and upsert. SettingsData is any
// JSON document.
type UserSettingsCreate struct {
	SettingsType string          `json:"SettingsType" validate:"required,max=100"`
	SettingsData json.RawMessage `json:"SettingsData" validate:"required"`
}

func (in *UserSettingsCreate) Validate() error {
	extra := map[string]string{}
	if len(in.SettingsData) > 0 && !json.Valid(in.SettingsData) {
		extra["SettingsData"] = "SettingsData must be valid JSON"
	}
	return validateWith(in, extra)
}

// UserSettingsUpdate replaces the settings document.
type UserSettingsUpdate struct {
	SettingsData json.RawMessage `json:"SettingsData" validate:"required"`
	IsActive     *bool           `json:"IsActive,omitempty"`
}

func (in *UserSettingsUpdate) Validate() error {
	extra := map[string]string{}
	if len(in.SettingsData) > 0 && !json.Valid(in.SettingsData) {
		extra["SettingsData"] = "SettingsData must be valid JSON"
	}
	return validateWith(in, extra)
}

func (in *UserSettingsUpdate) Apply(u *entities.UserSettings) {
	u.SettingsData = in.SettingsData
	setBool(&u.IsActive, in.IsActive)
}
