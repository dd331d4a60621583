package dto

import (
	"survey-backend/domain/core/entities"
	"survey-backend/domain/core/valueobjects"
)

type SurveyTypeCreate struct {
	SurveyTypeName    string              `json:"SurveyTypeName" validate:"required,max=100"`
	Description       *string             `json:"Description,omitempty"`
	EstimatedDuration *int                `json:"EstimatedDuration,omitempty" validate:"omitempty,gte=0"`
	BasePrice         *valueobjects.Money `json:"BasePrice,omitempty" validate:"omitempty,money"`
	IsActive          *bool               `json:"IsActive,omitempty"`
}

func (in *SurveyTypeCreate) Fill(t *entities.SurveyType) {
	t.Description = in.Description
	t.EstimatedDuration = in.EstimatedDuration
	t.BasePrice = in.BasePrice
	setBool(&t.IsActive, in.IsActive)
}

type SurveyTypeUpdate struct {
	SurveyTypeName    *string             `json:"SurveyTypeName,omitempty" validate:"omitempty,min=1,max=100"`
	Description       *string             `json:"Description,omitempty"`
	EstimatedDuration *int                `json:"EstimatedDuration,omitempty" validate:"omitempty,gte=0"`
	BasePrice         *valueobjects.Money `json:"BasePrice,omitempty" validate:"omitempty,money"`
	IsActive          *bool               `json:"IsActive,omitempty"`
}

func (in *SurveyTypeUpdate) Apply(t *entities.SurveyType) {
	setString(&t.SurveyTypeName, in.SurveyTypeName)
	setOptional(&t.Description, in.Description)
	setOptional(&t.EstimatedDuration, in.EstimatedDuration)
	setOptional(&t.BasePrice, in.BasePrice)
	setBool(&t.IsActive, in.IsActive)
}

type SurveyStatusCreate struct {
	StatusName  string  `json:"StatusName" validate:"required,max=100"`
	StatusCode  *string `json:"StatusCode,omitempty" validate:"omitempty,max=50"`
	Description *string `json:"Description,omitempty"`
	SortOrder   *int    `json:"SortOrder,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"IsActive,omitempty"`
}

func (in *SurveyStatusCreate) Fill(s *entities.SurveyStatus) {
	s.StatusCode = in.StatusCode
	s.Description = in.Description
	setBool(&s.IsActive, in.IsActive)
}

type SurveyStatusUpdate struct {
	StatusName  *string `json:"StatusName,omitempty" validate:"omitempty,min=1,max=100"`
	StatusCode  *string `json:"StatusCode,omitempty" validate:"omitempty,max=50"`
	Description *string `json:"Description,omitempty"`
	SortOrder   *int    `json:"SortOrder,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"IsActive,omitempty"`
}

func (in *SurveyStatusUpdate) Apply(s *entities.SurveyStatus) {
	setString(&s.StatusName, in.StatusName)
	setOptional(&s.StatusCode, in.StatusCode)
	setOptional(&s.Description, in.Description)
	setInt(&s.SortOrder, in.SortOrder)
	setBool(&s.IsActive, in.IsActive)
}
