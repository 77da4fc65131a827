package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceIncasso tags the expense operation a cash pickup records alongside
// its movement. Reporting filters these out of normal expense aggregates.
const SourceIncasso = "incasso"

// Operation is one business-level income/expense record. It is immutable
// after creation except for the void fields: "deleting" an operation means
// voiding it, which keeps the row for audit but excludes it from aggregates.
//
// Voiding does NOT reverse the linked cash movement. The balance effect
// stands until a compensating transfer or movement is posted separately.
type Operation struct {
	ID           int64           `json:"id"`
	HotelID      int64           `json:"hotel_id"`
	ArticleID    int64           `json:"article_id"`
	ArticleKind  Kind            `json:"article_kind"`
	ArticleName  string          `json:"article_name,omitempty"`
	Amount       decimal.Decimal `json:"amount"` // always positive
	HappenedAt   time.Time       `json:"happened_at"`
	Method       Account         `json:"method"`
	Counterparty string          `json:"counterparty,omitempty"`
	Comment      string          `json:"comment,omitempty"`
	Source       string          `json:"source,omitempty"`

	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`

	IsVoided   bool       `json:"is_voided"`
	VoidReason string     `json:"void_reason,omitempty"`
	VoidedAt   *time.Time `json:"voided_at,omitempty"`
	VoidedBy   *int64     `json:"voided_by,omitempty"`
}

// IsIncasso reports whether this operation is the paired entry of a cash
// pickup rather than a regular expense.
func (o *Operation) IsIncasso() bool {
	return o.Source == SourceIncasso
}
