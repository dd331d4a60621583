package entities

import (
	"time"

	"survey-backend/domain/core/valueobjects"
)

// Survey is a unit of surveying work for a customer on a property.
//
// The status reference has two names in stored data. SurveyStatusID is the
// canonical one; StatusID is the legacy name. Both are kept equal on every
// read view.
type Survey struct {
	SurveyID       string  `json:"SurveyId" dynamodbav:"SurveyId"`
	SurveyNumber   string  `json:"SurveyNumber" dynamodbav:"SurveyNumber"`
	CustomerID     *string `json:"CustomerId" dynamodbav:"CustomerId,omitempty"`
	PropertyID     *string `json:"PropertyId" dynamodbav:"PropertyId,omitempty"`
	SurveyTypeID   *string `json:"SurveyTypeId" dynamodbav:"SurveyTypeId,omitempty"`
	SurveyStatusID string  `json:"SurveyStatusId" dynamodbav:"SurveyStatusId,omitempty"`
	StatusID       string  `json:"StatusId" dynamodbav:"StatusId,omitempty"`
	Title          *string `json:"Title" dynamodbav:"Title,omitempty"`
	Description    *string `json:"Description" dynamodbav:"Description,omitempty"`
	PurposeCode    *string `json:"PurposeCode" dynamodbav:"PurposeCode,omitempty"`

	RequestDate   valueobjects.Timestamp  `json:"RequestDate" dynamodbav:"RequestDate"`
	ScheduledDate *valueobjects.Timestamp `json:"ScheduledDate" dynamodbav:"ScheduledDate,omitempty"`
	CompletedDate *valueobjects.Timestamp `json:"CompletedDate" dynamodbav:"CompletedDate,omitempty"`
	DeliveryDate  *valueobjects.Timestamp `json:"DeliveryDate" dynamodbav:"DeliveryDate,omitempty"`
	DueDate       *valueobjects.Timestamp `json:"DueDate" dynamodbav:"DueDate,omitempty"`

	QuotedPrice   *valueobjects.Money `json:"QuotedPrice" dynamodbav:"QuotedPrice,omitempty"`
	FinalPrice    *valueobjects.Money `json:"FinalPrice" dynamodbav:"FinalPrice,omitempty"`
	EstimatedCost *valueobjects.Money `json:"EstimatedCost" dynamodbav:"EstimatedCost,omitempty"`
	ActualCost    *valueobjects.Money `json:"ActualCost" dynamodbav:"ActualCost,omitempty"`

	Notes         *string `json:"Notes" dynamodbav:"Notes,omitempty"`
	SurveyorNotes *string `json:"SurveyorNotes" dynamodbav:"SurveyorNotes,omitempty"`

	IsFieldworkComplete bool `json:"IsFieldworkComplete" dynamodbav:"IsFieldworkComplete"`
	IsDrawingComplete   bool `json:"IsDrawingComplete" dynamodbav:"IsDrawingComplete"`
	IsScanned           bool `json:"IsScanned" dynamodbav:"IsScanned"`
	IsDelivered         bool `json:"IsDelivered" dynamodbav:"IsDelivered"`
	IsActive            bool `json:"IsActive" dynamodbav:"IsActive"`
	Audit
}

// NewSurvey creates an active survey requested now.
func NewSurvey(number, statusID string, now time.Time, actor string) *Survey {
	s := &Survey{
		SurveyID:     valueobjects.NewID(),
		SurveyNumber: number,
		RequestDate:  valueobjects.TimestampOf(now),
		IsActive:     true,
		Audit:        NewAudit(now, actor),
	}
	s.SetStatus(statusID)
	return s
}

func (s *Survey) EntityID() string { return s.SurveyID }

// SetStatus writes the status reference under both names.
func (s *Survey) SetStatus(statusID string) {
	s.SurveyStatusID = statusID
	s.StatusID = statusID
}

// ReconcileStatus fills whichever status name is missing from the other.
// The canonical name wins when both are set and disagree.
func (s *Survey) ReconcileStatus() {
	switch {
	case s.SurveyStatusID != "":
		s.StatusID = s.SurveyStatusID
	case s.StatusID != "":
		s.SurveyStatusID = s.StatusID
	}
}

// Deactivate performs the soft delete.
func (s *Survey) Deactivate(now time.Time, actor string) {
	s.IsActive = false
	s.TouchBy(now, actor)
}

// SurveyDetail is the read view with references expanded where they resolve.
type SurveyDetail struct {
	*Survey
	Customer   *Customer     `json:"customer,omitempty"`
	Property   *Property     `json:"property,omitempty"`
	SurveyType *SurveyType   `json:"survey_type,omitempty"`
	Status     *SurveyStatus `json:"status,omitempty"`
}
