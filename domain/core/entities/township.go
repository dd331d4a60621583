package entities

import (
	"time"

	"survey-backend/domain/core/valueobjects"
)

// Township is a named municipality within a county and state. The name is
// meant to be unique per county/state but nothing enforces it.
type Township struct {
	TownshipID   string `json:"TownshipId" dynamodbav:"TownshipId"`
	TownshipName string `json:"TownshipName" dynamodbav:"TownshipName"`
	County       string `json:"County" dynamodbav:"County"`
	State        string `json:"State" dynamodbav:"State"`
	IsActive     bool   `json:"IsActive" dynamodbav:"IsActive"`
	Audit
}

func NewTownship(name, county, state string, now time.Time, actor string) *Township {
	return &Township{
		TownshipID:   valueobjects.NewID(),
		TownshipName: name,
		County:       county,
		State:        state,
		IsActive:     true,
		Audit:        NewAudit(now, actor),
	}
}

func (t *Township) EntityID() string { return t.TownshipID }

// Deactivate performs the soft delete.
func (t *Township) Deactivate(now time.Time, actor string) {
	t.IsActive = false
	t.TouchBy(now, actor)
}
