package app

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurely/sales-service/internal/adapters/storage"
	"github.com/insurely/sales-service/internal/domain"
	"github.com/insurely/sales-service/internal/platform/config"
)

// testServices wires the three services against a fresh in-memory database.
func testServices(t *testing.T) (*CustomerService, *QuotationService, *SubscriptionService) {
	t.Helper()

	db, err := storage.Open(&config.StorageConfig{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	customers := storage.NewCustomerRepository(db)
	quotations := storage.NewQuotationRepository(db)
	subscriptions := storage.NewSubscriptionRepository(db)

	return NewCustomerService(customers, nil),
		NewQuotationService(quotations, customers, nil),
		NewSubscriptionService(subscriptions, quotations, nil)
}

func createCustomer(t *testing.T, svc *CustomerService) *domain.Customer {
	t.Helper()

	created, err := svc.Create(context.Background(), &domain.Customer{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
	})
	require.NoError(t, err)

	return created
}

func createQuotation(t *testing.T, svc *QuotationService, customer *domain.Customer) *domain.Quotation {
	t.Helper()

	created, err := svc.Create(context.Background(), &domain.Quotation{
		BeginningOfInsurance: domain.NewDate(2024, time.July, 1),
		Customer:             &domain.Customer{ID: customer.ID},
	})
	require.NoError(t, err)

	return created
}

func TestCustomerService_Create_RejectsInvalid(t *testing.T) {
	customers, _, _ := testServices(t)

	_, err := customers.Create(context.Background(), &domain.Customer{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "not-an-email",
	})
	require.Error(t, err)

	violations := domain.ViolationsFrom(err)
	require.Len(t, violations, 1)
	assert.Equal(t, domain.CodeEmailInvalid, violations[0].Code)
}

func TestCustomerService_Patch_MergesBeforeValidating(t *testing.T) {
	customers, _, _ := testServices(t)
	customer := createCustomer(t, customers)

	email := "jane@example.org"
	patched, err := customers.Patch(context.Background(), customer.ID, domain.CustomerPatch{
		Email: &email,
	})
	require.NoError(t, err)
	assert.Equal(t, email, patched.Email)
	assert.Equal(t, "Jane", patched.FirstName, "untouched fields survive the patch")
}

func TestCustomerService_Patch_RejectsInvalidMergedState(t *testing.T) {
	customers, _, _ := testServices(t)
	customer := createCustomer(t, customers)

	bad := "broken"
	_, err := customers.Patch(context.Background(), customer.ID, domain.CustomerPatch{
		Email: &bad,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// The stored customer is untouched after a rejected patch.
	fetched, err := customers.Get(context.Background(), customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", fetched.Email)
}

func TestCustomerService_Replace_ResetsOmittedFields(t *testing.T) {
	customers, _, _ := testServices(t)
	customer := createCustomer(t, customers)

	replaced, err := customers.Replace(context.Background(), customer.ID, &domain.Customer{
		FirstName: "Janet",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.Empty(t, replaced.Email)
}

func TestQuotationService_Create_ResolvesCustomer(t *testing.T) {
	customers, quotations, _ := testServices(t)
	customer := createCustomer(t, customers)

	created := createQuotation(t, quotations, customer)

	require.NotNil(t, created.Customer)
	assert.Equal(t, customer.ID, created.Customer.ID)
	assert.Equal(t, "Jane", created.Customer.FirstName)
}

func TestQuotationService_Create_UnknownCustomerIsViolation(t *testing.T) {
	_, quotations, _ := testServices(t)

	_, err := quotations.Create(context.Background(), &domain.Quotation{
		Customer: &domain.Customer{ID: uuid.New()},
	})
	require.Error(t, err)

	violations := domain.ViolationsFrom(err)
	require.Len(t, violations, 1)
	assert.Equal(t, "customer", violations[0].Field)
	assert.Equal(t, domain.CodeCustomerNotFound, violations[0].Code)
}

func TestQuotationService_Create_MissingCustomerIsViolation(t *testing.T) {
	_, quotations, _ := testServices(t)

	_, err := quotations.Create(context.Background(), &domain.Quotation{})
	require.Error(t, err)

	violations := domain.ViolationsFrom(err)
	require.Len(t, violations, 1)
	assert.Equal(t, domain.CodeCustomerRequired, violations[0].Code)
}

func TestQuotationService_Patch_SwapsCustomer(t *testing.T) {
	customers, quotations, _ := testServices(t)
	first := createCustomer(t, customers)
	quotation := createQuotation(t, quotations, first)

	second, err := customers.Create(context.Background(), &domain.Customer{
		FirstName: "John",
		LastName:  "Smith",
	})
	require.NoError(t, err)

	patched, err := quotations.Patch(context.Background(), quotation.ID, domain.QuotationPatch{
		Customer: &domain.Customer{ID: second.ID},
	})
	require.NoError(t, err)
	require.NotNil(t, patched.Customer)
	assert.Equal(t, second.ID, patched.Customer.ID)
	assert.Equal(t, "2024-07-01", patched.BeginningOfInsurance.String(), "unpatched fields survive")
}

func TestSubscriptionService_Create_ValidatesDateOrder(t *testing.T) {
	customers, quotations, subscriptions := testServices(t)
	customer := createCustomer(t, customers)
	quotation := createQuotation(t, quotations, customer)

	_, err := subscriptions.Create(context.Background(), &domain.Subscription{
		Quotation:  &domain.Quotation{ID: quotation.ID},
		StartDate:  domain.NewDate(2025, time.June, 15),
		ValidUntil: domain.NewDate(2024, time.June, 15),
	})
	require.Error(t, err)

	violations := domain.ViolationsFrom(err)
	require.Len(t, violations, 1)
	assert.Equal(t, "validUntil", violations[0].Field)
}

func TestSubscriptionService_Create_UnknownQuotationIsViolation(t *testing.T) {
	_, _, subscriptions := testServices(t)

	_, err := subscriptions.Create(context.Background(), &domain.Subscription{
		Quotation: &domain.Quotation{ID: uuid.New()},
	})
	require.Error(t, err)

	violations := domain.ViolationsFrom(err)
	require.Len(t, violations, 1)
	assert.Equal(t, domain.CodeQuotationNotFound, violations[0].Code)
}

func TestSubscriptionService_Patch_DateRuleSeesStoredState(t *testing.T) {
	customers, quotations, subscriptions := testServices(t)
	customer := createCustomer(t, customers)
	quotation := createQuotation(t, quotations, customer)

	created, err := subscriptions.Create(context.Background(), &domain.Subscription{
		Quotation:  &domain.Quotation{ID: quotation.ID},
		StartDate:  domain.NewDate(2025, time.June, 15),
		ValidUntil: domain.NewDate(2026, time.June, 15),
	})
	require.NoError(t, err)

	// Moving validUntil before the stored startDate must fail even though
	// the patch itself carries only one date.
	bad := domain.NewDate(2024, time.June, 15)
	_, err = subscriptions.Patch(context.Background(), created.ID, domain.SubscriptionPatch{
		ValidUntil: &bad,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	// A consistent patch passes.
	good := domain.NewDate(2027, time.June, 15)
	patched, err := subscriptions.Patch(context.Background(), created.ID, domain.SubscriptionPatch{
		ValidUntil: &good,
	})
	require.NoError(t, err)
	assert.Equal(t, "2027-06-15", patched.ValidUntil.String())
	assert.Equal(t, "2025-06-15", patched.StartDate.String())
}

func TestSubscriptionService_DeleteAndGet(t *testing.T) {
	customers, quotations, subscriptions := testServices(t)
	customer := createCustomer(t, customers)
	quotation := createQuotation(t, quotations, customer)

	created, err := subscriptions.Create(context.Background(), &domain.Subscription{
		Quotation: &domain.Quotation{ID: quotation.ID},
		StartDate: domain.NewDate(2024, time.July, 1),
	})
	require.NoError(t, err)

	require.NoError(t, subscriptions.Delete(context.Background(), created.ID))

	_, err = subscriptions.Get(context.Background(), created.ID)
	assert.True(t, domain.IsNotFound(err))

	err = subscriptions.Delete(context.Background(), created.ID)
	assert.True(t, domain.IsNotFound(err))
}
