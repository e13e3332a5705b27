package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/insurely/sales-service/internal/domain"
)

// GormQuotationRepository implements ports.QuotationRepository using GORM.
// Quotations store a customer foreign key; reads preload the customer so the
// returned aggregate always carries the live referenced entity.
type GormQuotationRepository struct {
	db *gorm.DB
}

// NewQuotationRepository creates a quotation repository backed by the shared
// database handle.
func NewQuotationRepository(database *Database) *GormQuotationRepository {
	return &GormQuotationRepository{db: database.db}
}

// Create persists a new quotation and returns it with the customer resolved.
func (r *GormQuotationRepository) Create(ctx context.Context, quotation *domain.Quotation) (*domain.Quotation, error) {
	quotation.ID = uuid.New()
	model := quotationToModel(quotation)

	if err := r.db.WithContext(ctx).Omit("Customer").Create(model).Error; err != nil {
		return nil, fmt.Errorf("creating quotation: %w", err)
	}

	return r.GetByID(ctx, quotation.ID)
}

// GetByID retrieves a quotation by its identifier, resolving the customer.
func (r *GormQuotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quotation, error) {
	var model QuotationModel

	err := r.db.WithContext(ctx).Preload("Customer").First(&model, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("quotation", id.String())
		}

		return nil, fmt.Errorf("getting quotation %s: %w", id, err)
	}

	return model.toDomain(), nil
}

// List returns all quotations in creation order with customers resolved.
func (r *GormQuotationRepository) List(ctx context.Context) ([]domain.Quotation, error) {
	var models []QuotationModel

	err := r.db.WithContext(ctx).Preload("Customer").Order("created_at").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing quotations: %w", err)
	}

	quotations := make([]domain.Quotation, len(models))
	for i := range models {
		quotations[i] = *models[i].toDomain()
	}

	return quotations, nil
}

// Replace overwrites the stored quotation, including its customer reference.
func (r *GormQuotationRepository) Replace(ctx context.Context, id uuid.UUID, quotation *domain.Quotation) (*domain.Quotation, error) {
	quotation.ID = id
	model := quotationToModel(quotation)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing QuotationModel
		if err := tx.First(&existing, "id = ?", id.String()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewNotFoundError("quotation", id.String())
			}

			return err
		}

		model.CreatedAt = existing.CreatedAt

		return tx.Omit("Customer").Save(model).Error
	})
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}

		return nil, fmt.Errorf("replacing quotation %s: %w", id, err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a quotation by its identifier.
func (r *GormQuotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&QuotationModel{}, "id = ?", id.String())
	if result.Error != nil {
		return fmt.Errorf("deleting quotation %s: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("quotation", id.String())
	}

	return nil
}
