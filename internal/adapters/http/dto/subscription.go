package dto

import (
	"github.com/google/uuid"

	"github.com/insurely/sales-service/internal/domain"
)

// SubscriptionRequest is the payload for creating or fully replacing a
// subscription. The quotation field is a reference URI ("/quotations/{id}").
type SubscriptionRequest struct {
	Quotation  string       `json:"quotation"`
	StartDate  *domain.Date `json:"startDate"`
	ValidUntil *domain.Date `json:"validUntil"`
}

// ToDomain converts the request into a domain subscription carrying a
// quotation stub for the application layer to resolve.
func (r *SubscriptionRequest) ToDomain() (*domain.Subscription, error) {
	subscription := &domain.Subscription{}
	if r.StartDate != nil {
		subscription.StartDate = *r.StartDate
	}

	if r.ValidUntil != nil {
		subscription.ValidUntil = *r.ValidUntil
	}

	if r.Quotation != "" {
		id, err := ParseRef(r.Quotation, "quotations")
		if err != nil {
			return nil, err
		}

		subscription.Quotation = &domain.Quotation{ID: id}
	}

	return subscription, nil
}

// SubscriptionPatchRequest is the payload for a partial subscription update.
type SubscriptionPatchRequest struct {
	Quotation  *string      `json:"quotation"`
	StartDate  *domain.Date `json:"startDate"`
	ValidUntil *domain.Date `json:"validUntil"`
}

// ToPatch converts the request into a domain patch.
func (r *SubscriptionPatchRequest) ToPatch() (domain.SubscriptionPatch, error) {
	patch := domain.SubscriptionPatch{
		StartDate:  r.StartDate,
		ValidUntil: r.ValidUntil,
	}
	if r.Quotation != nil {
		id, err := ParseRef(*r.Quotation, "quotations")
		if err != nil {
			return domain.SubscriptionPatch{}, err
		}

		patch.Quotation = &domain.Quotation{ID: id}
	}

	return patch, nil
}

// SubscriptionResponse is the hypermedia representation of a subscription.
type SubscriptionResponse struct {
	ID         uuid.UUID    `json:"id"`
	StartDate  *domain.Date `json:"startDate"`
	ValidUntil *domain.Date `json:"validUntil"`
	Links      Links        `json:"_links"`
}

// NewSubscriptionResponse builds the item representation with self and
// quotation links.
func NewSubscriptionResponse(s *domain.Subscription) *SubscriptionResponse {
	links := Links{
		"self": {Href: ItemPath("subscriptions", s.ID)},
	}
	if s.Quotation != nil {
		links["quotation"] = Link{Href: ItemPath("quotations", s.Quotation.ID)}
	}

	return &SubscriptionResponse{
		ID:         s.ID,
		StartDate:  dateOrNil(s.StartDate),
		ValidUntil: dateOrNil(s.ValidUntil),
		Links:      links,
	}
}

// NewSubscriptionCollection builds the collection envelope for subscriptions.
func NewSubscriptionCollection(subscriptions []domain.Subscription) *Collection {
	items := make([]*SubscriptionResponse, len(subscriptions))
	for i := range subscriptions {
		items[i] = NewSubscriptionResponse(&subscriptions[i])
	}

	return NewCollection("subscriptions", items)
}
