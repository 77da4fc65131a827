package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Validation failures. All of these are caller-recoverable: the enclosing
// transaction is rolled back, nothing is partially applied, and the message
// is safe to surface to the end user.
var (
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrUnknownAccount      = errors.New("unknown settlement account")
	ErrInvalidDirection    = errors.New("invalid movement direction")
	ErrSameAccountTransfer = errors.New("source and destination accounts must differ")
	ErrArticleNotUsable    = errors.New("article is inactive or missing")
	ErrOperationVoided     = errors.New("operation is already voided")
	ErrStayNotSettleable   = errors.New("stay is canceled or marked no-show")
	ErrCompanyRequired     = errors.New("folio charge requires a company on the stay")
)

// ErrConcurrencyConflict signals a lock-wait timeout or serialization
// failure from the database. Safe to retry the whole operation from scratch:
// no partial state was committed.
var ErrConcurrencyConflict = errors.New("concurrent ledger update conflict, retry the operation")

// InsufficientFundsError is raised when an outflow exceeds the current
// balance of the account. It carries enough detail for the caller to build
// a user-facing message.
type InsufficientFundsError struct {
	Account   Account
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on account %s: requested %s, available %s",
		e.Account, e.Requested.StringFixed(2), e.Available.StringFixed(2))
}

// IsInsufficientFunds reports whether err is (or wraps) an
// InsufficientFundsError.
func IsInsufficientFunds(err error) bool {
	var ife *InsufficientFundsError
	return errors.As(err, &ife)
}

// IsValidation reports whether err is one of the typed validation failures,
// including insufficient funds. Used by the API layer to pick a status code.
func IsValidation(err error) bool {
	if IsInsufficientFunds(err) {
		return true
	}
	for _, sentinel := range []error{
		ErrInvalidAmount,
		ErrUnknownAccount,
		ErrInvalidDirection,
		ErrSameAccountTransfer,
		ErrArticleNotUsable,
		ErrOperationVoided,
		ErrStayNotSettleable,
		ErrCompanyRequired,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
