package entities

import (
	"time"

	"survey-backend/domain/core/valueobjects"
)

// Customer is a client company. Deleting a customer only clears IsActive.
type Customer struct {
	CustomerID       string  `json:"CustomerId" dynamodbav:"CustomerId"`
	CustomerCode     string  `json:"CustomerCode" dynamodbav:"CustomerCode"`
	CompanyName      string  `json:"CompanyName" dynamodbav:"CompanyName"`
	ContactFirstName *string `json:"ContactFirstName" dynamodbav:"ContactFirstName,omitempty"`
	ContactLastName  *string `json:"ContactLastName" dynamodbav:"ContactLastName,omitempty"`
	Email            *string `json:"Email" dynamodbav:"Email,omitempty"`
	Phone            *string `json:"Phone" dynamodbav:"Phone,omitempty"`
	Fax              *string `json:"Fax" dynamodbav:"Fax,omitempty"`
	Website          *string `json:"Website" dynamodbav:"Website,omitempty"`
	IsActive         bool    `json:"IsActive" dynamodbav:"IsActive"`
	Audit
}

// NewCustomer creates an active customer with a fresh identity.
func NewCustomer(code, companyName string, now time.Time, actor string) *Customer {
	return &Customer{
		CustomerID:   valueobjects.NewID(),
		CustomerCode: code,
		CompanyName:  companyName,
		IsActive:     true,
		Audit:        NewAudit(now, actor),
	}
}

// EntityID returns the primary identity.
func (c *Customer) EntityID() string { return c.CustomerID }

// Deactivate performs the soft delete.
func (c *Customer) Deactivate(now time.Time, actor string) {
	c.IsActive = false
	c.TouchBy(now, actor)
}
