package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/insurely/sales-service/internal/domain"
)

// CustomerModel is the storage representation of a domain.Customer.
type CustomerModel struct {
	ID          string      `gorm:"type:varchar(36);primaryKey"`
	FirstName   string      `gorm:"type:varchar(255);not null"`
	LastName    string      `gorm:"type:varchar(255);not null"`
	MiddleName  string      `gorm:"type:varchar(255)"`
	Email       string      `gorm:"type:varchar(255)"`
	PhoneNumber string      `gorm:"type:varchar(64)"`
	BirthDate   domain.Date `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name.
func (CustomerModel) TableName() string {
	return "customers"
}

// QuotationModel is the storage representation of a domain.Quotation. The
// customer is stored as a foreign key and resolved on read via preload.
type QuotationModel struct {
	ID                    string      `gorm:"type:varchar(36);primaryKey"`
	BeginningOfInsurance  domain.Date `gorm:"type:date"`
	InsuredAmount         *int64
	DateOfSigningMortgage domain.Date `gorm:"type:date"`
	CustomerID            string      `gorm:"type:varchar(36);not null;index"`
	Customer              *CustomerModel
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName overrides the default table name.
func (QuotationModel) TableName() string {
	return "quotations"
}

// SubscriptionModel is the storage representation of a domain.Subscription.
type SubscriptionModel struct {
	ID          string      `gorm:"type:varchar(36);primaryKey"`
	QuotationID string      `gorm:"type:varchar(36);not null;index"`
	Quotation   *QuotationModel
	StartDate   domain.Date `gorm:"type:date"`
	ValidUntil  domain.Date `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

func customerToModel(c *domain.Customer) *CustomerModel {
	return &CustomerModel{
		ID:          c.ID.String(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		MiddleName:  c.MiddleName,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		BirthDate:   c.BirthDate,
	}
}

func (m *CustomerModel) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:          uuid.MustParse(m.ID),
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		MiddleName:  m.MiddleName,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		BirthDate:   m.BirthDate,
	}
}

func quotationToModel(q *domain.Quotation) *QuotationModel {
	m := &QuotationModel{
		ID:                    q.ID.String(),
		BeginningOfInsurance:  q.BeginningOfInsurance,
		InsuredAmount:         q.InsuredAmount,
		DateOfSigningMortgage: q.DateOfSigningMortgage,
	}
	if q.Customer != nil {
		m.CustomerID = q.Customer.ID.String()
	}

	return m
}

func (m *QuotationModel) toDomain() *domain.Quotation {
	q := &domain.Quotation{
		ID:                    uuid.MustParse(m.ID),
		BeginningOfInsurance:  m.BeginningOfInsurance,
		InsuredAmount:         m.InsuredAmount,
		DateOfSigningMortgage: m.DateOfSigningMortgage,
	}
	if m.Customer != nil {
		q.Customer = m.Customer.toDomain()
	}

	return q
}

func subscriptionToModel(s *domain.Subscription) *SubscriptionModel {
	m := &SubscriptionModel{
		ID:         s.ID.String(),
		StartDate:  s.StartDate,
		ValidUntil: s.ValidUntil,
	}
	if s.Quotation != nil {
		m.QuotationID = s.Quotation.ID.String()
	}

	return m
}

func (m *SubscriptionModel) toDomain() *domain.Subscription {
	s := &domain.Subscription{
		ID:         uuid.MustParse(m.ID),
		StartDate:  m.StartDate,
		ValidUntil: m.ValidUntil,
	}
	if m.Quotation != nil {
		s.Quotation = m.Quotation.toDomain()
	}

	return s
}
