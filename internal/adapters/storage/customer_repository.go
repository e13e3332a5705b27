package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/insurely/sales-service/internal/domain"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a customer repository backed by the shared
// database handle.
func NewCustomerRepository(database *Database) *GormCustomerRepository {
	return &GormCustomerRepository{db: database.db}
}

// Create persists a new customer. The repository issues the identifier; any
// identifier on the input is ignored.
func (r *GormCustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	customer.ID = uuid.New()
	model := customerToModel(customer)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	return model.toDomain(), nil
}

// GetByID retrieves a customer by its identifier.
func (r *GormCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var model CustomerModel

	err := r.db.WithContext(ctx).First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("customer", id.String())
		}

		return nil, fmt.Errorf("getting customer %s: %w", id, err)
	}

	return model.toDomain(), nil
}

// List returns all customers in creation order.
func (r *GormCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var models []CustomerModel

	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	customers := make([]domain.Customer, len(models))
	for i := range models {
		customers[i] = *models[i].toDomain()
	}

	return customers, nil
}

// Replace overwrites the stored customer. Every column is written, so fields
// absent from the replacement reset to their zero value.
func (r *GormCustomerRepository) Replace(ctx context.Context, id uuid.UUID, customer *domain.Customer) (*domain.Customer, error) {
	customer.ID = id
	model := customerToModel(customer)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing CustomerModel
		if err := tx.First(&existing, "id = ?", id.String()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("customer", id.String())
			}

			return err
		}

		model.CreatedAt = existing.CreatedAt

		return tx.Save(model).Error
	})
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}

		return nil, fmt.Errorf("replacing customer %s: %w", id, err)
	}

	return model.toDomain(), nil
}

// Delete removes a customer by its identifier.
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&CustomerModel{}, "id = ?", id.String())
	if result.Error != nil {
		return fmt.Errorf("deleting customer %s: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("customer", id.String())
	}

	return nil
}
