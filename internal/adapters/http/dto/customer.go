package dto

import (
	"github.com/google/uuid"

	"github.com/insurely/sales-service/internal/domain"
)

// CustomerRequest is the payload for creating or fully replacing a customer.
// A full replace resets any field that is omitted here.
type CustomerRequest struct {
	FirstName   string       `json:"firstName"   validate:"required"`
	LastName    string       `json:"lastName"    validate:"required"`
	MiddleName  string       `json:"middleName"`
	Email       string       `json:"email"`
	PhoneNumber string       `json:"phoneNumber"`
	BirthDate   *domain.Date `json:"birthDate"`
}

// ToDomain converts the request into a domain customer.
func (r *CustomerRequest) ToDomain() *domain.Customer {
	customer := &domain.Customer{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		MiddleName:  r.MiddleName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
	if r.BirthDate != nil {
		customer.BirthDate = *r.BirthDate
	}

	return customer
}

// CustomerPatchRequest is the payload for a partial customer update.
// Absent keys leave the stored value untouched.
type CustomerPatchRequest struct {
	FirstName   *string      `json:"firstName"`
	LastName    *string      `json:"lastName"`
	MiddleName  *string      `json:"middleName"`
	Email       *string      `json:"email"`
	PhoneNumber *string      `json:"phoneNumber"`
	BirthDate   *domain.Date `json:"birthDate"`
}

// ToPatch converts the request into a domain patch.
func (r *CustomerPatchRequest) ToPatch() domain.CustomerPatch {
	return domain.CustomerPatch{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		MiddleName:  r.MiddleName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		BirthDate:   r.BirthDate,
	}
}

// CustomerResponse is the hypermedia representation of a customer.
type CustomerResponse struct {
	ID          uuid.UUID    `json:"id"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	MiddleName  string       `json:"middleName,omitempty"`
	Email       string       `json:"email,omitempty"`
	PhoneNumber string       `json:"phoneNumber,omitempty"`
	BirthDate   *domain.Date `json:"birthDate"`
	Links       Links        `json:"_links"`
}

// NewCustomerResponse builds the item representation with its self link.
func NewCustomerResponse(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		MiddleName:  c.MiddleName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		BirthDate:   dateOrNil(c.BirthDate),
		Links: Links{
			"self": {Href: ItemPath("customers", c.ID)},
		},
	}
}

// NewCustomerCollection builds the collection envelope for customers.
func NewCustomerCollection(customers []domain.Customer) *Collection {
	items := make([]*CustomerResponse, len(customers))
	for i := range customers {
		items[i] = NewCustomerResponse(&customers[i])
	}

	return NewCollection("customers", items)
}
