package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/insurely/sales-service/internal/domain"
	"github.com/insurely/sales-service/internal/ports"
)

// SubscriptionService orchestrates subscription use cases. Subscriptions
// reference a quotation; the service resolves that reference before
// validation, mirroring QuotationService's handling of customers.
type SubscriptionService struct {
	subscriptions ports.SubscriptionRepository
	quotations    ports.QuotationRepository
	logger        *slog.Logger
}

// SubscriptionServiceConfig holds optional configuration for the service.
type SubscriptionServiceConfig struct {
	Logger *slog.Logger
}

// NewSubscriptionService creates a new subscription service with the given dependencies.
func NewSubscriptionService(
	subscriptions ports.SubscriptionRepository,
	quotations ports.QuotationRepository,
	cfg *SubscriptionServiceConfig,
) *SubscriptionService {
	logger := slog.Default()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}

	return &SubscriptionService{
		subscriptions: subscriptions,
		quotations:    quotations,
		logger:        logger.With(slog.String("component", "app.SubscriptionService")),
	}
}

// resolveQuotation swaps a quotation stub (ID only) for the live entity.
// An unknown ID becomes a quotation.notFound violation.
func (s *SubscriptionService) resolveQuotation(ctx context.Context, stub *domain.Quotation) (*domain.Quotation, error) {
	if stub == nil {
		return nil, nil
	}

	quotation, err := s.quotations.GetByID(ctx, stub.ID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.Violations{{
				Field:   "quotation",
				Code:    domain.CodeQuotationNotFound,
				Message: fmt.Sprintf("Referenced quotation <%s> does not exist", stub.ID),
			}}
		}

		return nil, fmt.Errorf("resolving quotation: %w", err)
	}

	return quotation, nil
}

// Create resolves the quotation reference, validates, and persists a new
// subscription. Validation runs on the resolved aggregate, so the date-order
// rule sees exactly what will be stored.
func (s *SubscriptionService) Create(ctx context.Context, subscription *domain.Subscription) (*domain.Subscription, error) {
	quotation, err := s.resolveQuotation(ctx, subscription.Quotation)
	if err != nil {
		return nil, err
	}

	subscription.Quotation = quotation

	if err := subscription.Validate(); err != nil {
		return nil, fmt.Errorf("validating subscription: %w", err)
	}

	created, err := s.subscriptions.Create(ctx, subscription)
	if err != nil {
		return nil, fmt.Errorf("creating subscription: %w", err)
	}

	s.logger.InfoContext(ctx, "subscription created",
		slog.String("subscription_id", created.ID.String()),
		slog.String("quotation_id", created.Quotation.ID.String()),
	)

	return created, nil
}

// Get retrieves a subscription by ID with its quotation chain resolved.
func (s *SubscriptionService) Get(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	subscription, err := s.subscriptions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	return subscription, nil
}

// List returns all subscriptions.
func (s *SubscriptionService) List(ctx context.Context) ([]domain.Subscription, error) {
	subscriptions, err := s.subscriptions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	return subscriptions, nil
}

// Replace overwrites the stored subscription after resolving and validating.
func (s *SubscriptionService) Replace(ctx context.Context, id uuid.UUID, subscription *domain.Subscription) (*domain.Subscription, error) {
	quotation, err := s.resolveQuotation(ctx, subscription.Quotation)
	if err != nil {
		return nil, err
	}

	subscription.Quotation = quotation

	if err := subscription.Validate(); err != nil {
		return nil, fmt.Errorf("validating subscription: %w", err)
	}

	replaced, err := s.subscriptions.Replace(ctx, id, subscription)
	if err != nil {
		return nil, fmt.Errorf("replacing subscription: %w", err)
	}

	s.logger.InfoContext(ctx, "subscription replaced",
		slog.String("subscription_id", id.String()),
	)

	return replaced, nil
}

// Patch merges the supplied fields into the stored subscription, validates
// the merged state, and persists it. Patching only one of the two dates
// still validates against the other, stored one.
func (s *SubscriptionService) Patch(ctx context.Context, id uuid.UUID, patch domain.SubscriptionPatch) (*domain.Subscription, error) {
	if patch.Quotation != nil {
		quotation, err := s.resolveQuotation(ctx, patch.Quotation)
		if err != nil {
			return nil, err
		}

		patch.Quotation = quotation
	}

	subscription, err := s.subscriptions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	patch.Apply(subscription)

	if err := subscription.Validate(); err != nil {
		return nil, fmt.Errorf("validating subscription: %w", err)
	}

	patched, err := s.subscriptions.Replace(ctx, id, subscription)
	if err != nil {
		return nil, fmt.Errorf("patching subscription: %w", err)
	}

	s.logger.InfoContext(ctx, "subscription patched",
		slog.String("subscription_id", id.String()),
	)

	return patched, nil
}

// Delete removes a subscription by ID.
func (s *SubscriptionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.subscriptions.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting subscription: %w", err)
	}

	s.logger.InfoContext(ctx, "subscription deleted",
		slog.String("subscription_id", id.String()),
	)

	return nil
}
