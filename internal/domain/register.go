package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashRegister is the single current-balance row per hotel. It is derived
// from the movement log and mutated only in lockstep with it, inside the
// same transaction, by the ledger service.
//
// Invariant: no balance field is ever negative at a committed state.
type CashRegister struct {
	ID             int64           `json:"id"`
	HotelID        int64           `json:"hotel_id"`
	CashBalance    decimal.Decimal `json:"cash_balance"`
	MkassaBalance  decimal.Decimal `json:"mkassa_balance"`
	ZadatokBalance decimal.Decimal `json:"zadatok_balance"`
	OptimaBalance  decimal.Decimal `json:"optima_balance"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Balance returns the current balance of one account.
func (r *CashRegister) Balance(account Account) decimal.Decimal {
	switch account {
	case AccountCash:
		return r.CashBalance
	case AccountMkassa:
		return r.MkassaBalance
	case AccountZadatok:
		return r.ZadatokBalance
	case AccountOptima:
		return r.OptimaBalance
	}
	return decimal.Zero
}

// SetBalance overwrites the balance of one account on the in-memory copy.
// Persistence goes through the ledger repository.
func (r *CashRegister) SetBalance(account Account, v decimal.Decimal) {
	switch account {
	case AccountCash:
		r.CashBalance = v
	case AccountMkassa:
		r.MkassaBalance = v
	case AccountZadatok:
		r.ZadatokBalance = v
	case AccountOptima:
		r.OptimaBalance = v
	}
}

// NoncashTotal is the sum of the three electronic settlement accounts.
// Always computed, never stored.
func (r *CashRegister) NoncashTotal() decimal.Decimal {
	return r.MkassaBalance.Add(r.ZadatokBalance).Add(r.OptimaBalance)
}

// Total is cash plus non-cash.
func (r *CashRegister) Total() decimal.Decimal {
	return r.CashBalance.Add(r.NoncashTotal())
}

// RegisterSnapshot is the read-only view handed to callers, with the derived
// totals materialized for display.
type RegisterSnapshot struct {
	HotelID        int64           `json:"hotel_id"`
	CashBalance    decimal.Decimal `json:"cash_balance"`
	MkassaBalance  decimal.Decimal `json:"mkassa_balance"`
	ZadatokBalance decimal.Decimal `json:"zadatok_balance"`
	OptimaBalance  decimal.Decimal `json:"optima_balance"`
	NoncashTotal   decimal.Decimal `json:"noncash_total"`
	Total          decimal.Decimal `json:"total"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Snapshot builds the caller-facing view of the register.
func (r *CashRegister) Snapshot() *RegisterSnapshot {
	return &RegisterSnapshot{
		HotelID:        r.HotelID,
		CashBalance:    r.CashBalance,
		MkassaBalance:  r.MkassaBalance,
		ZadatokBalance: r.ZadatokBalance,
		OptimaBalance:  r.OptimaBalance,
		NoncashTotal:   r.NoncashTotal(),
		Total:          r.Total(),
		UpdatedAt:      r.UpdatedAt,
	}
}
