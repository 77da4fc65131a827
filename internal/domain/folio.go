package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Folio is the receivable ledger for one (hotel, company) pair. Its balance
// is the sum of its items' signed amounts; it auto-closes when the balance
// drops to zero or below and reopens when new charges push it positive.
type Folio struct {
	ID        int64      `json:"id"`
	HotelID   int64      `json:"hotel_id"`
	CompanyID int64      `json:"company_id"`
	IsClosed  bool       `json:"is_closed"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type FolioItemType string

const (
	FolioItemCharge  FolioItemType = "charge"
	FolioItemPayment FolioItemType = "payment"
	FolioItemAdjust  FolioItemType = "adjust"
)

// FolioItem is one line on a folio. Amount is stored positive; SignedAmount
// carries the sign (charge/adjust = +, payment = -).
type FolioItem struct {
	ID           int64           `json:"id"`
	FolioID      int64           `json:"folio_id"`
	ItemType     FolioItemType   `json:"item_type"`
	HappenedAt   time.Time       `json:"happened_at"`
	Description  string          `json:"description,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	SignedAmount decimal.Decimal `json:"signed_amount"`
	StayID       *int64          `json:"stay_id,omitempty"`
	OperationID  *int64          `json:"operation_id,omitempty"`
	MovementID   *int64          `json:"movement_id,omitempty"`
	CreatedBy    int64           `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SignFolioAmount applies the item-type convention to a positive amount.
func SignFolioAmount(itemType FolioItemType, amount decimal.Decimal) decimal.Decimal {
	if itemType == FolioItemPayment {
		return amount.Neg()
	}
	return amount
}
