package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestCustomer_Validate_Email(t *testing.T) {
	today := NewDate(2024, time.June, 15)

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid email", email: "jane.doe@example.com", wantErr: false},
		{name: "empty email is allowed", email: "", wantErr: false},
		{name: "missing domain", email: "jane.doe@", wantErr: true},
		{name: "missing at sign", email: "jane.doe.example.com", wantErr: true},
		{name: "spaces", email: "jane doe@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Customer{FirstName: "Jane", LastName: "Doe", Email: tt.email}

			err := c.Validate(today)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			violations := ViolationsFrom(err)
			require.Len(t, violations, 1)
			assert.Equal(t, "email", violations[0].Field)
			assert.Equal(t, CodeEmailInvalid, violations[0].Code)
		})
	}
}

func TestCustomer_Validate_BirthDate(t *testing.T) {
	today := NewDate(2024, time.June, 15)

	tests := []struct {
		name      string
		birthDate Date
		wantErr   bool
	}{
		{name: "in the past", birthDate: today.AddYears(-1), wantErr: false},
		{name: "exactly today", birthDate: today, wantErr: false},
		{name: "tomorrow", birthDate: DateOf(today.AddDate(0, 0, 1)), wantErr: true},
		{name: "a year ahead", birthDate: today.AddYears(1), wantErr: true},
		{name: "not provided", birthDate: Date{}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Customer{FirstName: "Jane", LastName: "Doe", BirthDate: tt.birthDate}

			err := c.Validate(today)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			violations := ViolationsFrom(err)
			require.Len(t, violations, 1)
			assert.Equal(t, "birthDate", violations[0].Field)
			assert.Equal(t, CodeBirthDateInFuture, violations[0].Code)
		})
	}
}

func TestCustomer_Validate_CollectsAllViolations(t *testing.T) {
	today := NewDate(2024, time.June, 15)
	c := &Customer{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "not-an-email",
		BirthDate: today.AddYears(2),
	}

	err := c.Validate(today)
	require.Error(t, err)
	assert.Len(t, ViolationsFrom(err), 2)
}

func TestQuotation_Validate(t *testing.T) {
	customer := &Customer{ID: mustUUID(t), FirstName: "Jane", LastName: "Doe"}

	tests := []struct {
		name     string
		q        *Quotation
		wantCode string
	}{
		{
			name: "valid quotation",
			q:    &Quotation{Customer: customer, InsuredAmount: int64Ptr(1)},
		},
		{
			name: "zero amount is allowed",
			q:    &Quotation{Customer: customer, InsuredAmount: int64Ptr(0)},
		},
		{
			name: "missing amount is allowed",
			q:    &Quotation{Customer: customer},
		},
		{
			name:     "negative amount",
			q:        &Quotation{Customer: customer, InsuredAmount: int64Ptr(-1)},
			wantCode: CodeAmountNegative,
		},
		{
			name:     "missing customer",
			q:        &Quotation{InsuredAmount: int64Ptr(100)},
			wantCode: CodeCustomerRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			violations := ViolationsFrom(err)
			require.Len(t, violations, 1)
			assert.Equal(t, tt.wantCode, violations[0].Code)
		})
	}
}

func TestSubscription_Validate_DateOrder(t *testing.T) {
	quotation := &Quotation{ID: mustUUID(t), Customer: &Customer{ID: mustUUID(t)}}
	base := NewDate(2024, time.June, 15)

	tests := []struct {
		name       string
		startDate  Date
		validUntil Date
		wantErr    bool
	}{
		{name: "start before validUntil", startDate: base.AddYears(-1), validUntil: base.AddYears(1), wantErr: false},
		{name: "equal dates are valid", startDate: base, validUntil: base, wantErr: false},
		{name: "start after validUntil", startDate: base.AddYears(1), validUntil: base.AddYears(-1), wantErr: true},
		{name: "start one day after validUntil", startDate: DateOf(base.AddDate(0, 0, 1)), validUntil: base, wantErr: true},
		{name: "only startDate set", startDate: base, wantErr: false},
		{name: "only validUntil set", validUntil: base, wantErr: false},
		{name: "neither date set", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Subscription{
				Quotation:  quotation,
				StartDate:  tt.startDate,
				ValidUntil: tt.validUntil,
			}

			err := s.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			violations := ViolationsFrom(err)
			require.Len(t, violations, 1)
			assert.Equal(t, "validUntil", violations[0].Field)
			assert.Equal(t, CodeDatesOutOfOrder, violations[0].Code)
		})
	}
}

func TestSubscription_Validate_ViolationMessageFormat(t *testing.T) {
	s := &Subscription{
		Quotation:  &Quotation{ID: mustUUID(t)},
		StartDate:  NewDate(2025, time.June, 15),
		ValidUntil: NewDate(2023, time.June, 15),
	}

	err := s.Validate()
	require.Error(t, err)

	violations := ViolationsFrom(err)
	require.Len(t, violations, 1)

	expected := fmt.Sprintf(
		"The <validUntil> field must be after startDate <%s> but is <%s>",
		"2025-06-15", "2023-06-15",
	)
	assert.Equal(t, expected, violations[0].Message)
}

func TestSubscription_Validate_MissingQuotation(t *testing.T) {
	s := &Subscription{}

	err := s.Validate()
	require.Error(t, err)

	violations := ViolationsFrom(err)
	require.Len(t, violations, 1)
	assert.Equal(t, "quotation", violations[0].Field)
	assert.Equal(t, CodeQuotationRequired, violations[0].Code)
}
