package domain

import "github.com/google/uuid"

// Subscription is a quotation that matured into a running contract.
type Subscription struct {
	// ID is the server-generated unique identifier.
	ID uuid.UUID

	// Quotation is the resolved reference to the underlying quotation.
	// A persisted subscription never has a nil quotation.
	Quotation *Quotation

	StartDate  Date
	ValidUntil Date
}

// SubscriptionPatch is a sparse set of Subscription field changes.
type SubscriptionPatch struct {
	Quotation  *Quotation
	StartDate  *Date
	ValidUntil *Date
}

// Apply merges the patch onto an existing subscription.
func (p SubscriptionPatch) Apply(s *Subscription) {
	if p.Quotation != nil {
		s.Quotation = p.Quotation
	}

	if p.StartDate != nil {
		s.StartDate = *p.StartDate
	}

	if p.ValidUntil != nil {
		s.ValidUntil = *p.ValidUntil
	}
}
