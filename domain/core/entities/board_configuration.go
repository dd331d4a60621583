package entities

import (
	"time"

	"survey-backend/domain/core/valueobjects"
)

// BoardConfiguration is a named work board. BoardSlug is derived from the
// name and used in URLs.
type BoardConfiguration struct {
	BoardConfigID string  `json:"BoardConfigId" dynamodbav:"BoardConfigId"`
	BoardName     string  `json:"BoardName" dynamodbav:"BoardName"`
	BoardSlug     string  `json:"BoardSlug" dynamodbav:"BoardSlug"`
	Description   *string `json:"Description" dynamodbav:"Description,omitempty"`
	UserID        string  `json:"UserId" dynamodbav:"UserId"`
	IsDefault     bool    `json:"IsDefault" dynamodbav:"IsDefault"`
	IsActive      bool    `json:"IsActive" dynamodbav:"IsActive"`
	Audit
}

func NewBoardConfiguration(name, userID string, now time.Time, actor string) *BoardConfiguration {
	if userID == "" {
		userID = valueobjects.DefaultUserID
	}
	return &BoardConfiguration{
		BoardConfigID: valueobjects.NewID(),
		BoardName:     name,
		BoardSlug:     valueobjects.Slugify(name),
		UserID:        userID,
		IsActive:      true,
		Audit:         NewAudit(now, actor),
	}
}

func (b *BoardConfiguration) EntityID() string { return b.BoardConfigID }

// Deactivate performs the soft delete. A deactivated board is never default.
func (b *BoardConfiguration) Deactivate(now time.Time, actor string) {
	b.IsActive = false
	b.IsDefault = false
	b.TouchBy(now, actor)
}
