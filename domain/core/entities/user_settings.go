package entities

import (
	"encoding/json"
	"time"

	"survey-backend/domain/core/valueobjects"
)

// UserSettings is an opaque JSON document per (user, settings type).
type UserSettings struct {
	UserSettingsID string          `json:"UserSettingsId" dynamodbav:"UserSettingsId"`
	UserID         string          `json:"UserId" dynamodbav:"UserId"`
	SettingsType   string          `json:"SettingsType" dynamodbav:"SettingsType"`
	SettingsData   json.RawMessage `json:"SettingsData" dynamodbav:"-"`
	IsActive       bool            `json:"IsActive" dynamodbav:"IsActive"`
	Timestamps
}

func NewUserSettings(userID, settingsType string, data json.RawMessage, now time.Time) *UserSettings {
	if userID == "" {
		userID = valueobjects.DefaultUserID
	}
	return &UserSettings{
		UserSettingsID: valueobjects.NewID(),
		UserID:         userID,
		SettingsType:   settingsType,
		SettingsData:   data,
		IsActive:       true,
		Timestamps:     NewTimestamps(now),
	}
}

func (u *UserSettings) EntityID() string { return u.UserSettingsID }

// Matches reports whether the record belongs to (userID, settingsType).
func (u *UserSettings) Matches(userID, settingsType string) bool {
	return u.UserID == userID && u.SettingsType == settingsType
}
