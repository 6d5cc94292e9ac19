package invoice

import (
	"errors"
	"fmt"

	ierr "github.com/meteroid-oss/meteroid/internal/errors"
)

// NewValidationError builds a field-scoped validation error for invoice and
// invoice line item domain validation.
func NewValidationError(field, reason string) error {
	return ierr.NewError(fmt.Sprintf("invalid %s", field)).
		WithHint(reason).
		Mark(ierr.ErrValidation)
}

var (
	// ErrInvoiceNotFound indicates that the requested invoice was not found
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvalidInvoiceStatus indicates that the invoice status transition is invalid
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")

	// ErrInvoiceAlreadyPaid indicates that the invoice has already been paid
	ErrInvoiceAlreadyPaid = errors.New("invoice already paid")

	// ErrInvoiceAlreadyVoided indicates that the invoice has already been voided
	ErrInvoiceAlreadyVoided = errors.New("invoice already voided")

	// ErrInvoiceNotFinalized indicates that the invoice is not in finalized status
	ErrInvoiceNotFinalized = errors.New("invoice not finalized")
)
