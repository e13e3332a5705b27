package domain

import "github.com/google/uuid"

// Quotation is an insurance offer prepared for a customer.
type Quotation struct {
	// ID is the server-generated unique identifier.
	ID uuid.UUID

	BeginningOfInsurance Date

	// InsuredAmount is denominated in a currency subunit to avoid
	// floating-point rounding. Nil means not provided; a present value
	// must be non-negative.
	InsuredAmount *int64

	DateOfSigningMortgage Date

	// Customer is the resolved reference to the owning customer.
	// A persisted quotation never has a nil customer.
	Customer *Customer
}

// QuotationPatch is a sparse set of Quotation field changes. The Customer
// field carries an already-resolved entity; reference resolution happens in
// the application layer before the patch is applied.
type QuotationPatch struct {
	BeginningOfInsurance  *Date
	InsuredAmount         *int64
	DateOfSigningMortgage *Date
	Customer              *Customer
}

// Apply merges the patch onto an existing quotation.
func (p QuotationPatch) Apply(q *Quotation) {
	if p.BeginningOfInsurance != nil {
		q.BeginningOfInsurance = *p.BeginningOfInsurance
	}

	if p.InsuredAmount != nil {
		q.InsuredAmount = p.InsuredAmount
	}

	if p.DateOfSigningMortgage != nil {
		q.DateOfSigningMortgage = *p.DateOfSigningMortgage
	}

	if p.Customer != nil {
		q.Customer = p.Customer
	}
}
