package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/insurely/sales-service/internal/domain"
	"github.com/insurely/sales-service/internal/ports"
)

// QuotationService orchestrates quotation use cases. Quotations reference a
// customer; the service resolves that reference against the customer
// repository before validation, so an unknown customer surfaces as a
// field violation rather than a lookup failure.
type QuotationService struct {
	quotations ports.QuotationRepository
	customers  ports.CustomerRepository
	logger     *slog.Logger
}

// QuotationServiceConfig holds optional configuration for the service.
type QuotationServiceConfig struct {
	Logger *slog.Logger
}

// NewQuotationService creates a new quotation service with the given dependencies.
func NewQuotationService(
	quotations ports.QuotationRepository,
	customers ports.CustomerRepository,
	cfg *QuotationServiceConfig,
) *QuotationService {
	logger := slog.Default()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}

	return &QuotationService{
		quotations: quotations,
		customers:  customers,
		logger:     logger.With(slog.String("component", "app.QuotationService")),
	}
}

// resolveCustomer swaps a customer stub (ID only) for the live entity.
// An unknown ID becomes a customer.notFound violation.
func (s *QuotationService) resolveCustomer(ctx context.Context, stub *domain.Customer) (*domain.Customer, error) {
	if stub == nil {
		return nil, nil
	}

	customer, err := s.customers.GetByID(ctx, stub.ID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.Violations{{
				Field:   "customer",
				Code:    domain.CodeCustomerNotFound,
				Message: fmt.Sprintf("Referenced customer <%s> does not exist", stub.ID),
			}}
		}

		return nil, fmt.Errorf("resolving customer: %w", err)
	}

	return customer, nil
}

// Create resolves the customer reference, validates, and persists a new
// quotation.
func (s *QuotationService) Create(ctx context.Context, quotation *domain.Quotation) (*domain.Quotation, error) {
	customer, err := s.resolveCustomer(ctx, quotation.Customer)
	if err != nil {
		return nil, err
	}

	quotation.Customer = customer

	if err := quotation.Validate(); err != nil {
		return nil, fmt.Errorf("validating quotation: %w", err)
	}

	created, err := s.quotations.Create(ctx, quotation)
	if err != nil {
		return nil, fmt.Errorf("creating quotation: %w", err)
	}

	s.logger.InfoContext(ctx, "quotation created",
		slog.String("quotation_id", created.ID.String()),
		slog.String("customer_id", created.Customer.ID.String()),
	)

	return created, nil
}

// Get retrieves a quotation by ID with its customer resolved.
func (s *QuotationService) Get(ctx context.Context, id uuid.UUID) (*domain.Quotation, error) {
	quotation, err := s.quotations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting quotation: %w", err)
	}

	return quotation, nil
}

// List returns all quotations.
func (s *QuotationService) List(ctx context.Context) ([]domain.Quotation, error) {
	quotations, err := s.quotations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing quotations: %w", err)
	}

	return quotations, nil
}

// Replace overwrites the stored quotation after resolving and validating.
func (s *QuotationService) Replace(ctx context.Context, id uuid.UUID, quotation *domain.Quotation) (*domain.Quotation, error) {
	customer, err := s.resolveCustomer(ctx, quotation.Customer)
	if err != nil {
		return nil, err
	}

	quotation.Customer = customer

	if err := quotation.Validate(); err != nil {
		return nil, fmt.Errorf("validating quotation: %w", err)
	}

	replaced, err := s.quotations.Replace(ctx, id, quotation)
	if err != nil {
		return nil, fmt.Errorf("replacing quotation: %w", err)
	}

	s.logger.InfoContext(ctx, "quotation replaced",
		slog.String("quotation_id", id.String()),
	)

	return replaced, nil
}

// Patch merges the supplied fields into the stored quotation, validates the
// merged state, and persists it. A patched customer reference is resolved
// before the merge.
func (s *QuotationService) Patch(ctx context.Context, id uuid.UUID, patch domain.QuotationPatch) (*domain.Quotation, error) {
	if patch.Customer != nil {
		customer, err := s.resolveCustomer(ctx, patch.Customer)
		if err != nil {
			return nil, err
		}

		patch.Customer = customer
	}

	quotation, err := s.quotations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting quotation: %w", err)
	}

	patch.Apply(quotation)

	if err := quotation.Validate(); err != nil {
		return nil, fmt.Errorf("validating quotation: %w", err)
	}

	patched, err := s.quotations.Replace(ctx, id, quotation)
	if err != nil {
		return nil, fmt.Errorf("patching quotation: %w", err)
	}

	s.logger.InfoContext(ctx, "quotation patched",
		slog.String("quotation_id", id.String()),
	)

	return patched, nil
}

// Delete removes a quotation by ID.
func (s *QuotationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.quotations.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting quotation: %w", err)
	}

	s.logger.InfoContext(ctx, "quotation deleted",
		slog.String("quotation_id", id.String()),
	)

	return nil
}
