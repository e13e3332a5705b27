// Package domain contains the core business entities and rules: the three
// aggregates of the insurance-sales workflow (Customer, Quotation,
// Subscription) and the validation engine that guards them.
package domain

import "github.com/google/uuid"

// Customer is a person who requests quotations.
// Identity is by ID once persisted; the ID is issued by the storage gateway.
type Customer struct {
	// ID is the server-generated unique identifier, immutable after creation.
	ID uuid.UUID

	FirstName  string
	LastName   string
	MiddleName string

	// Email is optional; when set it must be a syntactically valid address.
	Email string

	PhoneNumber string

	// BirthDate must not lie in the future. Zero means not provided.
	BirthDate Date
}

// CustomerPatch is a sparse set of Customer field changes. Nil fields are
// left untouched when applied; a patch cannot clear a field (use a full
// replace for that).
type CustomerPatch struct {
	FirstName   *string
	LastName    *string
	MiddleName  *string
	Email       *string
	PhoneNumber *string
	BirthDate   *Date
}

// Apply merges the patch onto an existing customer. The ID is never touched.
func (p CustomerPatch) Apply(c *Customer) {
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}

	if p.LastName != nil {
		c.LastName = *p.LastName
	}

	if p.MiddleName != nil {
		c.MiddleName = *p.MiddleName
	}

	if p.Email != nil {
		c.Email = *p.Email
	}

	if p.PhoneNumber != nil {
		c.PhoneNumber = *p.PhoneNumber
	}

	if p.BirthDate != nil {
		c.BirthDate = *p.BirthDate
	}
}
