// Package entities holds the survey-management records. Each record is a
// plain tagged struct: json tags define the API shape, dynamodbav tags the
// item shape. Optional attributes are pointers so an absent value is omitted
// from stored items instead of being written as null.
package entities

import (
	"time"

	"survey-backend/domain/core/valueobjects"
)

// Timestamps are the creation and modification instants.
type Timestamps struct {
	CreatedDate  valueobjects.Timestamp `json:"CreatedDate" dynamodbav:"CreatedDate"`
	ModifiedDate valueobjects.Timestamp `json:"ModifiedDate" dynamodbav:"ModifiedDate"`
}

// NewTimestamps stamps both instants with now.
func NewTimestamps(now time.Time) Timestamps {
	ts := valueobjects.TimestampOf(now)
	return Timestamps{CreatedDate: ts, ModifiedDate: ts}
}

// Touch refreshes ModifiedDate. Entities never call this themselves; update
// operations do.
func (t *Timestamps) Touch(now time.Time) {
	t.ModifiedDate = valueobjects.TimestampOf(now)
}

// Audit adds the actor strings to Timestamps.
type Audit struct {
	Timestamps
	CreatedBy  *string `json:"CreatedBy" dynamodbav:"CreatedBy,omitempty"`
	ModifiedBy *string `json:"ModifiedBy" dynamodbav:"ModifiedBy,omitempty"`
}

// NewAudit stamps both instants. An empty actor leaves the actor fields unset.
func NewAudit(now time.Time, actor string) Audit {
	a := Audit{Timestamps: NewTimestamps(now)}
	if actor != "" {
		a.CreatedBy = StringPtr(actor)
		a.ModifiedBy = StringPtr(actor)
	}
	return a
}

// TouchBy refreshes ModifiedDate and, when given, ModifiedBy.
func (a *Audit) TouchBy(now time.Time, actor string) {
	a.Touch(now)
	if actor != "" {
		a.ModifiedBy = StringPtr(actor)
	}
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int {
	return &n
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
