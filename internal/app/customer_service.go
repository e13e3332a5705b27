// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
//
// Application Layer Responsibilities:
//   - Orchestrate use cases (business workflows)
//   - Run domain validation before anything is persisted
//   - Resolve references between aggregates via the persistence gateway
//   - Handle cross-cutting concerns (logging)
//
// What does NOT belong here:
//   - HTTP specifics (that's adapters)
//   - Database queries (that's repository adapters)
//   - Core domain logic (that's the domain layer)
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/insurely/sales-service/internal/domain"
	"github.com/insurely/sales-service/internal/ports"
)

// CustomerService orchestrates customer use cases.
// It depends on port interfaces, not concrete implementations.
type CustomerService struct {
	customers ports.CustomerRepository
	logger    *slog.Logger
}

// CustomerServiceConfig holds optional configuration for the service.
type CustomerServiceConfig struct {
	Logger *slog.Logger
}

// NewCustomerService creates a new customer service with the given dependencies.
func NewCustomerService(customers ports.CustomerRepository, cfg *CustomerServiceConfig) *CustomerService {
	logger := slog.Default()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}

	return &CustomerService{
		customers: customers,
		logger:    logger.With(slog.String("component", "app.CustomerService")),
	}
}

// Create validates and persists a new customer.
func (s *CustomerService) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := customer.Validate(domain.Today()); err != nil {
		return nil, fmt.Errorf("validating customer: %w", err)
	}

	created, err := s.customers.Create(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	s.logger.InfoContext(ctx, "customer created",
		slog.String("customer_id", created.ID.String()),
	)

	return created, nil
}

// Get retrieves a customer by ID.
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return customer, nil
}

// List returns all customers.
func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	return customers, nil
}

// Replace validates the full replacement and overwrites the stored customer.
// Fields omitted from the replacement reset to their zero values.
func (s *CustomerService) Replace(ctx context.Context, id uuid.UUID, customer *domain.Customer) (*domain.Customer, error) {
	if err := customer.Validate(domain.Today()); err != nil {
		return nil, fmt.Errorf("validating customer: %w", err)
	}

	replaced, err := s.customers.Replace(ctx, id, customer)
	if err != nil {
		return nil, fmt.Errorf("replacing customer: %w", err)
	}

	s.logger.InfoContext(ctx, "customer replaced",
		slog.String("customer_id", id.String()),
	)

	return replaced, nil
}

// Patch merges the supplied fields into the stored customer, validates the
// merged state, and persists it. Validation always sees the full merged
// entity, never the bare patch.
func (s *CustomerService) Patch(ctx context.Context, id uuid.UUID, patch domain.CustomerPatch) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	patch.Apply(customer)

	if err := customer.Validate(domain.Today()); err != nil {
		return nil, fmt.Errorf("validating customer: %w", err)
	}

	patched, err := s.customers.Replace(ctx, id, customer)
	if err != nil {
		return nil, fmt.Errorf("patching customer: %w", err)
	}

	s.logger.InfoContext(ctx, "customer patched",
		slog.String("customer_id", id.String()),
	)

	return patched, nil
}

// Delete removes a customer by ID.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}

	s.logger.InfoContext(ctx, "customer deleted",
		slog.String("customer_id", id.String()),
	)

	return nil
}
