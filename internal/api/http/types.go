package http

import (
	"time"

	"hoteldesk-backoffice/internal/domain"

	"github.com/shopspring/decimal"
)

// Amounts travel as JSON strings so clients never push float rounding into
// the ledger.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return d, nil
}

// parseTime accepts RFC3339 and defaults empty input to the current moment.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse(time.RFC3339, s)
}

type createHotelRequest struct {
	Name string `json:"name"`
}

type movementRequest struct {
	Account    string `json:"account"`
	Direction  string `json:"direction"`
	Amount     string `json:"amount"`
	HappenedAt string `json:"happened_at,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

type transferRequest struct {
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	Amount      string `json:"amount"`
	HappenedAt  string `json:"happened_at,omitempty"`
	Comment     string `json:"comment,omitempty"`
}

type recordOperationRequest struct {
	ArticleID    int64  `json:"article_id"`
	Amount       string `json:"amount"`
	Method       string `json:"method"`
	HappenedAt   string `json:"happened_at,omitempty"`
	Counterparty string `json:"counterparty,omitempty"`
	Comment      string `json:"comment,omitempty"`
	// bookkeeping_only records the entry without posting a movement.
	BookkeepingOnly bool `json:"bookkeeping_only,omitempty"`
}

type voidOperationRequest struct {
	Reason string `json:"reason"`
}

type incassoRequest struct {
	Amount     string `json:"amount"`
	Method     string `json:"method"`
	HappenedAt string `json:"happened_at,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

type checkInRequest struct {
	RoomLabel  string `json:"room_label"`
	GuestName  string `json:"guest_name,omitempty"`
	CompanyID  *int64 `json:"company_id,omitempty"`
	StayType   string `json:"stay_type"`
	CheckIn    string `json:"check_in,omitempty"`
	CheckOut   string `json:"check_out,omitempty"`
	TotalToPay string `json:"total_to_pay"`
	Method     string `json:"method,omitempty"`
}

type cancelStayRequest struct {
	NoShow bool `json:"no_show,omitempty"`
}

type folioPaymentRequest struct {
	CompanyID  int64  `json:"company_id"`
	Amount     string `json:"amount"`
	Method     string `json:"method"`
	HappenedAt string `json:"happened_at,omitempty"`
	ArticleID  int64  `json:"article_id,omitempty"`
	Comment    string `json:"comment,omitempty"`
}

type listResponse struct {
	Items any   `json:"items"`
	Total int32 `json:"total"`
	Page  int32 `json:"page"`
}
