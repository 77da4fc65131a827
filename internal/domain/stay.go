package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type StayStatus string

const (
	StayStatusBooked   StayStatus = "BOOKED"
	StayStatusIn       StayStatus = "IN"
	StayStatusOut      StayStatus = "OUT"
	StayStatusCanceled StayStatus = "CANCELED"
	StayStatusNoShow   StayStatus = "NO_SHOW"
)

type StayType string

const (
	StayTypeWalkIn    StayType = "walkin"
	StayTypeCorporate StayType = "corporate"
)

// Stay is the settlement-relevant slice of a room stay. Room scheduling and
// overlap checks live in the booking layer; here a stay only needs enough
// state to drive check-in payment, folio charging and cancellation voids.
type Stay struct {
	ID         int64           `json:"id"`
	HotelID    int64           `json:"hotel_id"`
	RoomLabel  string          `json:"room_label"`
	GuestName  string          `json:"guest_name,omitempty"`
	CompanyID  *int64          `json:"company_id,omitempty"`
	StayType   StayType        `json:"stay_type"`
	CheckIn    time.Time       `json:"check_in"`
	CheckOut   time.Time       `json:"check_out"`
	TotalToPay decimal.Decimal `json:"total_to_pay"`
	Status     StayStatus      `json:"status"`

	// Back-references to the settlement this stay produced, if any.
	OperationID *int64 `json:"operation_id,omitempty"`
	MovementID  *int64 `json:"movement_id,omitempty"`

	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
