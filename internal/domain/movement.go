package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is one immutable posting against one account. Movements are
// append-only: never updated, never deleted. Corrections are made by posting
// a compensating movement, not by editing history.
//
// At most one movement may exist per (operation, account, direction) triple;
// a retried submission that would duplicate one is treated as already
// applied.
type Movement struct {
	ID         int64           `json:"id"`
	RegisterID int64           `json:"register_id"`
	HotelID    int64           `json:"hotel_id"`
	Direction  Direction       `json:"direction"`
	Account    Account         `json:"account"`
	Amount     decimal.Decimal `json:"amount"` // always positive; Direction supplies the sign
	HappenedAt time.Time       `json:"happened_at"`
	Comment    string          `json:"comment,omitempty"`

	// Optional back-references for audit and reversal.
	OperationID *int64 `json:"operation_id,omitempty"`
	IncassoID   *int64 `json:"incasso_id,omitempty"`
	TransferID  *int64 `json:"transfer_id,omitempty"`

	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// SignedAmount applies the direction to the stored (positive) amount.
func (m *Movement) SignedAmount() decimal.Decimal {
	if m.Direction == DirectionOut {
		return m.Amount.Neg()
	}
	return m.Amount
}
