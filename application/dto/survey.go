package dto

import (
	"survey-backend/domain/core/entities"
	"survey-backend/domain/core/valueobjects"
)

// SurveyCreate is the input of survey creation. The status reference may be
// given under either of its names.
type SurveyCreate struct {
	SurveyNumber   string  `json:"SurveyNumber" validate:"required,max=50"`
	SurveyStatusID string  `json:"SurveyStatusId,omitempty" validate:"max=64"`
	StatusID       string  `json:"StatusId,omitempty" validate:"max=64"`
	CustomerID     *string `json:"CustomerId,omitempty"`
	PropertyID     *string `json:"PropertyId,omitempty"`
	SurveyTypeID   *string `json:"SurveyTypeId,omitempty"`
	Title          *string `json:"Title,omitempty" validate:"omitempty,max=200"`
	Description    *string `json:"Description,omitempty"`
	PurposeCode    *string `json:"PurposeCode,omitempty" validate:"omitempty,max=20"`

	RequestDate   *valueobjects.Timestamp `json:"RequestDate,omitempty"`
	ScheduledDate *valueobjects.Timestamp `json:"ScheduledDate,omitempty"`
	CompletedDate *valueobjects.Timestamp `json:"CompletedDate,omitempty"`
	DeliveryDate  *valueobjects.Timestamp `json:"DeliveryDate,omitempty"`
	DueDate       *valueobjects.Timestamp `json:"DueDate,omitempty"`

	QuotedPrice   *valueobjects.Money `json:"QuotedPrice,omitempty" validate:"omitempty,money"`
	FinalPrice    *valueobjects.Money `json:"FinalPrice,omitempty" validate:"omitempty,money"`
	EstimatedCost *valueobjects.Money `json:"EstimatedCost,omitempty" validate:"omitempty,money"`
	ActualCost    *valueobjects.Money `json:"ActualCost,omitempty" validate:"omitempty,money"`

	Notes         *string `json:"Notes,omitempty"`
	SurveyorNotes *string `json:"SurveyorNotes,omitempty"`

	IsFieldworkComplete *bool `json:"IsFieldworkComplete,omitempty"`
	IsDrawingComplete   *bool `json:"IsDrawingComplete,omitempty"`
	IsScanned           *bool `json:"IsScanned,omitempty"`
	IsDelivered         *bool `json:"IsDelivered,omitempty"`
	IsActive            *bool `json:"IsActive,omitempty"`
}

// Validate checks the tags and that a status reference is present under
// one of its names.
func (in *SurveyCreate) Validate() error {
	extra := map[string]string{}
	if in.Status() == "" {
		extra["SurveyStatusId"] = "SurveyStatusId is required"
	}
	return validateWith(in, extra)
}

// Status resolves the status reference; the canonical name wins.
func (in *SurveyCreate) Status() string {
	if in.SurveyStatusID != "" {
		return in.SurveyStatusID
	}
	return in.StatusID
}

// Fill copies the optional fields onto a new survey.
func (in *SurveyCreate) Fill(s *entities.Survey) {
	s.CustomerID = in.CustomerID
	s.PropertyID = in.PropertyID
	s.SurveyTypeID = in.SurveyTypeID
	s.Title = in.Title
	s.Description = in.Description
	s.PurposeCode = in.PurposeCode
	setTimestamp(&s.RequestDate, in.RequestDate)
	s.ScheduledDate = in.ScheduledDate
	s.CompletedDate = in.CompletedDate
	s.DeliveryDate = in.DeliveryDate
	s.DueDate = in.DueDate
	s.QuotedPrice = in.QuotedPrice
	s.FinalPrice = in.FinalPrice
	s.EstimatedCost = in.EstimatedCost
	s.ActualCost = in.ActualCost
	s.Notes = in.Notes
	s.SurveyorNotes = in.SurveyorNotes
	setBool(&s.IsFieldworkComplete, in.IsFieldworkComplete)
	setBool(&s.IsDrawingComplete, in.IsDrawingComplete)
	setBool(&s.IsScanned, in.IsScanned)
	setBool(&s.IsDelivered, in.IsDelivered)
	setBool(&s.IsActive, in.IsActive)
}

// SurveyUpdate is a partial survey update.
type SurveyUpdate struct {
	SurveyNumber   *string `json:"SurveyNumber,omitempty" validate:"omitempty,min=1,max=50"`
	SurveyStatusID *string `json:"SurveyStatusId,omitempty" validate:"omitempty,min=1,max=64"`
	StatusID       *string `json:"StatusId,omitempty" validate:"omitempty,min=1,max=64"`
	CustomerID     *string `json:"CustomerId,omitempty"`
	PropertyID     *string `json:"PropertyId,omitempty"`
	SurveyTypeID   *string `json:"SurveyTypeId,omitempty"`
	Title          *string `json:"Title,omitempty" validate:"omitempty,max=200"`
	Description    *string `json:"Description,omitempty"`
	PurposeCode    *string `json:"PurposeCode,omitempty" validate:"omitempty,max=20"`

	RequestDate   *valueobjects.Timestamp `json:"RequestDate,omitempty"`
	ScheduledDate *valueobjects.Timestamp `json:"ScheduledDate,omitempty"`
	CompletedDate *valueobjects.Timestamp `json:"CompletedDate,omitempty"`
	DeliveryDate  *valueobjects.Timestamp `json:"DeliveryDate,omitempty"`
	DueDate       *valueobjects.Timestamp `json:"DueDate,omitempty"`

	QuotedPrice   *valueobjects.Money `json:"QuotedPrice,omitempty" validate:"omitempty,money"`
	FinalPrice    *valueobjects.Money `json:"FinalPrice,omitempty" validate:"omitempty,money"`
	EstimatedCost *valueobjects.Money `json:"EstimatedCost,omitempty" validate:"omitempty,money"`
	ActualCost    *valueobjects.Money `json:"ActualCost,omitempty" validate:"omitempty,money"`

	Notes         *string `json:"Notes,omitempty"`
	SurveyorNotes *string `json:"SurveyorNotes,omitempty"`

	IsFieldworkComplete *bool `json:"IsFieldworkComplete,omitempty"`
	IsDrawingComplete   *bool `json:"IsDrawingComplete,omitempty"`
	IsScanned           *bool `json:"IsScanned,omitempty"`
	IsDelivered         *bool `json:"IsDelivered,omitempty"`
	IsActive            *bool `json:"IsActive,omitempty"`
}

// Apply merges the supplied fields into s. A status given under either name
// is written under both; the canonical name wins when both are given.
func (in *SurveyUpdate) Apply(s *entities.Survey) {
	setString(&s.SurveyNumber, in.SurveyNumber)
	switch {
	case in.SurveyStatusID != nil:
		s.SetStatus(*in.SurveyStatusID)
	case in.StatusID != nil:
		s.SetStatus(*in.StatusID)
	}
	setOptional(&s.CustomerID, in.CustomerID)
	setOptional(&s.PropertyID, in.PropertyID)
	setOptional(&s.SurveyTypeID, in.SurveyTypeID)
	setOptional(&s.Title, in.Title)
	setOptional(&s.Description, in.Description)
	setOptional(&s.PurposeCode, in.PurposeCode)
	setTimestamp(&s.RequestDate, in.RequestDate)
	setOptional(&s.ScheduledDate, in.ScheduledDate)
	setOptional(&s.CompletedDate, in.CompletedDate)
	setOptional(&s.DeliveryDate, in.DeliveryDate)
	setOptional(&s.DueDate, in.DueDate)
	setOptional(&s.QuotedPrice, in.QuotedPrice)
	setOptional(&s.FinalPrice, in.FinalPrice)
	setOptional(&s.EstimatedCost, in.EstimatedCost)
	setOptional(&s.ActualCost, in.ActualCost)
	setOptional(&s.Notes, in.Notes)
	setOptional(&s.SurveyorNotes, in.SurveyorNotes)
	setBool(&s.IsFieldworkComplete, in.IsFieldworkComplete)
	setBool(&s.IsDrawingComplete, in.IsDrawingComplete)
	setBool(&s.IsScanned, in.IsScanned)
	setBool(&s.IsDelivered, in.IsDelivered)
	setBool(&s.IsActive, in.IsActive)
}
