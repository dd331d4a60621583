package entities

import (
	"time"

	"survey-backend/domain/core/valueobjects"
)

// SurveyType is a reference lookup consumed by Survey.SurveyTypeID.
type SurveyType struct {
	SurveyTypeID      string              `json:"SurveyTypeId" dynamodbav:"SurveyTypeId"`
	SurveyTypeName    string              `json:"SurveyTypeName" dynamodbav:"SurveyTypeName"`
	Description       *string             `json:"Description" dynamodbav:"Description,omitempty"`
	EstimatedDuration *int                `json:"EstimatedDuration" dynamodbav:"EstimatedDuration,omitempty"`
	BasePrice         *valueobjects.Money `json:"BasePrice" dynamodbav:"BasePrice,omitempty"`
	IsActive          bool                `json:"IsActive" dynamodbav:"IsActive"`
	Timestamps
}

func NewSurveyType(name string, now time.Time) *SurveyType {
	return &SurveyType{
		SurveyTypeID:   valueobjects.NewID(),
		SurveyTypeName: name,
		IsActive:       true,
		Timestamps:     NewTimestamps(now),
	}
}

func (t *SurveyType) EntityID() string { return t.SurveyTypeID }

// SurveyStatus is a reference lookup consumed by Survey.SurveyStatusID.
type SurveyStatus struct {
	SurveyStatusID string  `json:"SurveyStatusId" dynamodbav:"SurveyStatusId"`
	StatusName     string  `json:"StatusName" dynamodbav:"StatusName"`
	StatusCode     *string `json:"StatusCode" dynamodbav:"StatusCode,omitempty"`
	Description    *string `json:"Description" dynamodbav:"Description,omitempty"`
	SortOrder      int     `json:"SortOrder" dynamodbav:"SortOrder"`
	IsActive       bool    `json:"IsActive" dynamodbav:"IsActive"`
	Timestamps
}

func NewSurveyStatus(name string, sortOrder int, now time.Time) *SurveyStatus {
	return &SurveyStatus{
		SurveyStatusID: valueobjects.NewID(),
		StatusName:     name,
		SortOrder:      sortOrder,
		IsActive:       true,
		Timestamps:     NewTimestamps(now),
	}
}

func (s *SurveyStatus) EntityID() string { return s.SurveyStatusID }
