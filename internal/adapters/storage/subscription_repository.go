package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/insurely/sales-service/internal/domain"
)

// GormSubscriptionRepository implements ports.SubscriptionRepository using
// GORM. Reads preload the quotation and its customer.
type GormSubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a subscription repository backed by the
// shared database handle.
func NewSubscriptionRepository(database *Database) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: database.db}
}

// Create persists a new subscription and returns it with references resolved.
func (r *GormSubscriptionRepository) Create(ctx context.Context, subscription *domain.Subscription) (*domain.Subscription, error) {
	subscription.ID = uuid.New()
	model := subscriptionToModel(subscription)

	if err := r.db.WithContext(ctx).Omit("Quotation").Create(model).Error; err != nil {
		return nil, fmt.Errorf("creating subscription: %w", err)
	}

	return r.GetByID(ctx, subscription.ID)
}

// GetByID retrieves a subscription by its identifier.
func (r *GormSubscriptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	var model SubscriptionModel

	err := r.db.WithContext(ctx).
		Preload("Quotation.Customer").
		Preload("Quotation").
		First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("subscription", id.String())
		}

		return nil, fmt.Errorf("getting subscription %s: %w", id, err)
	}

	return model.toDomain(), nil
}

// List returns all subscriptions in creation order.
func (r *GormSubscriptionRepository) List(ctx context.Context) ([]domain.Subscription, error) {
	var models []SubscriptionModel

	err := r.db.WithContext(ctx).
		Preload("Quotation.Customer").
		Preload("Quotation").
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	subscriptions := make([]domain.Subscription, len(models))
	for i := range models {
		subscriptions[i] = *models[i].toDomain()
	}

	return subscriptions, nil
}

// Replace overwrites the stored subscription, including its quotation
// reference.
func (r *GormSubscriptionRepository) Replace(ctx context.Context, id uuid.UUID, subscription *domain.Subscription) (*domain.Subscription, error) {
	subscription.ID = id
	model := subscriptionToModel(subscription)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing SubscriptionModel
		if err := tx.First(&existing, "id = ?", id.String()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("subscription", id.String())
			}

			return err
		}

		model.CreatedAt = existing.CreatedAt

		return tx.Omit("Quotation").Save(model).Error
	})
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}

		return nil, fmt.Errorf("replacing subscription %s: %w", id, err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a subscription by its identifier.
func (r *GormSubscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&SubscriptionModel{}, "id = ?", id.String())
	if result.Error != nil {
		return fmt.Errorf("deleting subscription %s: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("subscription", id.String())
	}

	return nil
}
