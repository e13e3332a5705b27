package dto

import (
	"github.com/google/uuid"

	"github.com/insurely/sales-service/internal/domain"
)

// QuotationRequest is the payload for creating or fully replacing a
// quotation. The customer field is a reference URI ("/customers/{id}"), not
// an embedded object.
type QuotationRequest struct {
	BeginningOfInsurance  *domain.Date `json:"beginningOfInsurance"`
	InsuredAmount         *int64       `json:"insuredAmount"`
	DateOfSigningMortgage *domain.Date `json:"dateOfSigningMortgage"`
	Customer              string       `json:"customer"`
}

// ToDomain converts the request into a domain quotation carrying a customer
// stub for the application layer to resolve. A missing customer reference
// stays nil so the validation engine reports customer.required.
func (r *QuotationRequest) ToDomain() (*domain.Quotation, error) {
	quotation := &domain.Quotation{
		InsuredAmount: r.InsuredAmount,
	}
	if r.BeginningOfInsurance != nil {
		quotation.BeginningOfInsurance = *r.BeginningOfInsurance
	}

	if r.DateOfSigningMortgage != nil {
		quotation.DateOfSigningMortgage = *r.DateOfSigningMortgage
	}

	if r.Customer != "" {
		id, err := ParseRef(r.Customer, "customers")
		if err != nil {
			return nil, err
		}

		quotation.Customer = &domain.Customer{ID: id}
	}

	return quotation, nil
}

// QuotationPatchRequest is the payload for a partial quotation update.
type QuotationPatchRequest struct {
	BeginningOfInsurance  *domain.Date `json:"beginningOfInsurance"`
	InsuredAmount         *int64       `json:"insuredAmount"`
	DateOfSigningMortgage *domain.Date `json:"dateOfSigningMortgage"`
	Customer              *string      `json:"customer"`
}

// ToPatch converts the request into a domain patch. A patched customer
// reference is re-parsed and re-resolved like on create.
func (r *QuotationPatchRequest) ToPatch() (domain.QuotationPatch, error) {
	patch := domain.QuotationPatch{
		BeginningOfInsurance:  r.BeginningOfInsurance,
		InsuredAmount:         r.InsuredAmount,
		DateOfSigningMortgage: r.DateOfSigningMortgage,
	}
	if r.Customer != nil {
		id, err := ParseRef(*r.Customer, "customers")
		if err != nil {
			return domain.QuotationPatch{}, err
		}

		patch.Customer = &domain.Customer{ID: id}
	}

	return patch, nil
}

// QuotationResponse is the hypermedia representation of a quotation. The
// customer relationship appears as a link, never as an embedded copy.
type QuotationResponse struct {
	ID                    uuid.UUID    `json:"id"`
	BeginningOfInsurance  *domain.Date `json:"beginningOfInsurance"`
	InsuredAmount         *int64       `json:"insuredAmount"`
	DateOfSigningMortgage *domain.Date `json:"dateOfSigningMortgage"`
	Links                 Links        `json:"_links"`
}

// NewQuotationResponse builds the item representation with self and customer
// links.
func NewQuotationResponse(q *domain.Quotation) *QuotationResponse {
	links := Links{
		"self": {Href: ItemPath("quotations", q.ID)},
	}
	if q.Customer != nil {
		links["customer"] = Link{Href: ItemPath("customers", q.Customer.ID)}
	}

	return &QuotationResponse{
		ID:                    q.ID,
		BeginningOfInsurance:  dateOrNil(q.BeginningOfInsurance),
		InsuredAmount:         q.InsuredAmount,
		DateOfSigningMortgage: dateOrNil(q.DateOfSigningMortgage),
		Links:                 links,
	}
}

// NewQuotationCollection builds the collection envelope for quotations.
func NewQuotationCollection(quotations []domain.Quotation) *Collection {
	items := make([]*QuotationResponse, len(quotations))
	for i := range quotations {
		items[i] = NewQuotationResponse(&quotations[i])
	}

	return NewCollection("quotations", items)
}
