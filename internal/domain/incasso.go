package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Incasso records funds removed from a settlement account and handed to an
// external custodian (accounting). It produces one outgoing movement plus a
// paired expense operation tagged source="incasso".
type Incasso struct {
	ID         int64           `json:"id"`
	HotelID    int64           `json:"hotel_id"`
	Amount     decimal.Decimal `json:"amount"`
	HappenedAt time.Time       `json:"happened_at"`
	Method     Account         `json:"method"` // the account the funds left
	Comment    string          `json:"comment,omitempty"`
	CreatedBy  int64           `json:"created_by"`
	CreatedAt  time.Time       `json:"created_at"`
}
