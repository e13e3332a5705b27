package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Reason codes attached to violations. The cross-date code and message format
// are part of the public API contract and must not change.
const (
	CodeEmailInvalid      = "email.invalid"
	CodeBirthDateInFuture = "birthDate.inFuture"
	CodeAmountNegative    = "insuredAmount.negative"
	CodeCustomerRequired  = "customer.required"
	CodeCustomerNotFound  = "customer.notFound"
	CodeQuotationRequired = "quotation.required"
	CodeQuotationNotFound = "quotation.notFound"
	CodeDatesOutOfOrder   = "validUntil.beforeStartDate"
)

// fieldValidate checks single values against validator tags (email syntax).
var fieldValidate = validator.New()

// Validate checks the customer's field-level rules. The reference date is
// passed in so callers control what "now" means; rules must see the fully
// merged state, so this runs after any patch has been applied.
func (c *Customer) Validate(today Date) error {
	var violations Violations

	if c.Email != "" {
		if err := fieldValidate.Var(c.Email, "email"); err != nil {
			violations = append(violations, Violation{
				Field:   "email",
				Code:    CodeEmailInvalid,
				Message: fmt.Sprintf("The <email> field must be a valid email address but is <%s>", c.Email),
			})
		}
	}

	if !c.BirthDate.IsZero() && c.BirthDate.After(today.Time) {
		violations = append(violations, Violation{
			Field:   "birthDate",
			Code:    CodeBirthDateInFuture,
			Message: fmt.Sprintf("The <birthDate> field must be in the past or present but is <%s>", c.BirthDate),
		})
	}

	return violations.AsError()
}

// Validate checks the quotation's field-level rules against its fully
// constructed state, including the resolved customer reference.
func (q *Quotation) Validate() error {
	var violations Violations

	if q.InsuredAmount != nil && *q.InsuredAmount < 0 {
		violations = append(violations, Violation{
			Field:   "insuredAmount",
			Code:    CodeAmountNegative,
			Message: fmt.Sprintf("The <insuredAmount> field must be at least 0 but is <%d>", *q.InsuredAmount),
		})
	}

	if q.Customer == nil {
		violations = append(violations, Violation{
			Field:   "customer",
			Code:    CodeCustomerRequired,
			Message: "The <customer> field must reference an existing customer",
		})
	}

	return violations.AsError()
}

// Validate checks the subscription's rules against its fully constructed
// state. The date-order rule only fires when both dates are present; a
// missing date vacuously satisfies it.
func (s *Subscription) Validate() error {
	var violations Violations

	if s.Quotation == nil {
		violations = append(violations, Violation{
			Field:   "quotation",
			Code:    CodeQuotationRequired,
			Message: "The <quotation> field must reference an existing quotation",
		})
	}

	if !s.StartDate.IsZero() && !s.ValidUntil.IsZero() && s.StartDate.After(s.ValidUntil.Time) {
		violations = append(violations, Violation{
			Field: "validUntil",
			Code:  CodeDatesOutOfOrder,
			Message: fmt.Sprintf(
				"The <validUntil> field must be after startDate <%s> but is <%s>",
				s.StartDate, s.ValidUntil,
			),
		})
	}

	return violations.AsError()
}
