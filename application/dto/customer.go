package dto

import (
	"survey-backend/domain/core/entities"
)

// CustomerCreate is the input of customer creation.
type CustomerCreate struct {
	CustomerCode     string  `json:"CustomerCode" validate:"required,max=50"`
	CompanyName      string  `json:"CompanyName" validate:"required,max=200"`
	ContactFirstName *string `json:"ContactFirstName,omitempty" validate:"omitempty,max=100"`
	ContactLastName  *string `json:"ContactLastName,omitempty" validate:"omitempty,max=100"`
	Email            *string `json:"Email,omitempty" validate:"omitempty,email"`
	Phone            *string `json:"Phone,omitempty" validate:"omitempty,max=50"`
	Fax              *string `json:"Fax,omitempty" validate:"omitempty,max=50"`
	Website          *string `json:"Website,omitempty" validate:"omitempty,max=200"`
	IsActive         *bool   `json:"IsActive,omitempty"`
}

// CustomerUpdate is a partial customer update.
type CustomerUpdate struct {
	CustomerCode     *string `json:"CustomerCode,omitempty" validate:"omitempty,min=1,max=50"`
	CompanyName      *string `json:"CompanyName,omitempty" validate:"omitempty,min=1,max=200"`
	ContactFirstName *string `json:"ContactFirstName,omitempty" validate:"omitempty,max=100"`
	ContactLastName  *string `json:"ContactLastName,omitempty" validate:"omitempty,max=100"`
	Email            *string `json:"Email,omitempty" validate:"omitempty,email"`
	Phone            *string `json:"Phone,omitempty" validate:"omitempty,max=50"`
	Fax              *string `json:"Fax,omitempty" validate:"omitempty,max=50"`
	Website          *string `json:"Website,omitempty" validate:"omitempty,max=200"`
	IsActive         *bool   `json:"IsActive,omitempty"`
}

// Fill copies the optional fields onto a new customer.
func (in *CustomerCreate) Fill(c *entities.Customer) {
	c.ContactFirstName = in.ContactFirstName
	c.ContactLastName = in.ContactLastName
	c.Email = in.Email
	c.Phone = in.Phone
	c.Fax = in.Fax
	c.Website = in.Website
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
}

// Apply merges the supplied fields into c.
func (in *CustomerUpdate) Apply(c *entities.Customer) {
	setString(&c.CustomerCode, in.CustomerCode)
	setString(&c.CompanyName, in.CompanyName)
	setOptional(&c.ContactFirstName, in.ContactFirstName)
	setOptional(&c.ContactLastName, in.ContactLastName)
	setOptional(&c.Email, in.Email)
	setOptional(&c.Phone, in.Phone)
	setOptional(&c.Fax, in.Fax)
	setOptional(&c.Website, in.Website)
	setBool(&c.IsActive, in.IsActive)
}
