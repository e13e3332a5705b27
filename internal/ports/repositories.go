// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never storage models or transport DTOs
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/insurely/sales-service/internal/domain"
)

// CustomerRepository is the persistence gateway for Customer aggregates.
// Identifier issuance is the gateway's responsibility: Create assigns a new
// unique ID and returns the persisted entity carrying it.
type CustomerRepository interface {
	// Create persists a new customer and returns it with its generated ID.
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)

	// GetByID retrieves a customer by its identifier.
	// Returns domain.ErrNotFound if the customer does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)

	// List returns all customers in creation order.
	List(ctx context.Context) ([]domain.Customer, error)

	// Replace overwrites the stored customer, preserving its identifier.
	// All fields are written, so omitted optional fields reset to zero.
	// Returns domain.ErrNotFound if the identifier is unknown.
	Replace(ctx context.Context, id uuid.UUID, customer *domain.Customer) (*domain.Customer, error)

	// Delete removes a customer by its identifier.
	// Returns domain.ErrNotFound if the customer does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// QuotationRepository is the persistence gateway for Quotation aggregates.
// Reads resolve the customer reference to a live entity; quotations are
// stored with a foreign key only, never a denormalized copy.
type QuotationRepository interface {
	Create(ctx context.Context, quotation *domain.Quotation) (*domain.Quotation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quotation, error)
	List(ctx context.Context) ([]domain.Quotation, error)
	Replace(ctx context.Context, id uuid.UUID, quotation *domain.Quotation) (*domain.Quotation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubscriptionRepository is the persistence gateway for Subscription
// aggregates. Reads resolve the quotation reference (and its customer).
type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *domain.Subscription) (*domain.Subscription, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error)
	List(ctx context.Context) ([]domain.Subscription, error)
	Replace(ctx context.Context, id uuid.UUID, subscription *domain.Subscription) (*domain.Subscription, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
