package domain

import "time"

// Hotel is one property. Each active hotel owns exactly one CashRegister.
type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type PayTerms string

const (
	PayTermsNow     PayTerms = "now"
	PayTermsInvoice PayTerms = "invoice"
)

// Company is a corporate customer billed through a folio instead of paying
// at the desk.
type Company struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	ContactName  string   `json:"contact_name,omitempty"`
	ContactPhone string   `json:"contact_phone,omitempty"`
	PayTerms     PayTerms `json:"pay_terms"`
	IsActive     bool     `json:"is_active"`
}
