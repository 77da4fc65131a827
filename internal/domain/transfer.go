package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is a paired debit/credit between two accounts of one hotel.
// Posting one always produces exactly two movements (out on the source,
// in on the destination), both referencing the transfer.
type Transfer struct {
	ID          int64           `json:"id"`
	HotelID     int64           `json:"hotel_id"`
	RegisterID  int64           `json:"register_id"`
	FromAccount Account         `json:"from_account"`
	ToAccount   Account         `json:"to_account"`
	Amount      decimal.Decimal `json:"amount"`
	HappenedAt  time.Time       `json:"happened_at"`
	Comment     string          `json:"comment,omitempty"`
	CreatedBy   int64           `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}
