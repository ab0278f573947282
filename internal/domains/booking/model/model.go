package model

const (
	EntityName = "BOOKING"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusCheckedIn  Status = "CHECKED_IN"
	StatusCheckedOut Status = "CHECKED_OUT"
	StatusCancelled  Status = "CANCELLED"
)

// Booking ties a guest to a room over a date span. CheckOut is exclusive:
// the guest vacates on the morning of that date. PaidAmount is a running
// sum maintained by the engine, not recomputed from payments.
type Booking struct {
	ID              string  `json:"id"`
	RoomID          int     `json:"roomId"`
	GuestID         string  `json:"guestId"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	NumGuests       int     `json:"numGuests"`
	TotalAmount     float64 `json:"totalAmount"`
	PaidAmount      float64 `json:"paidAmount"`
	Status          Status  `json:"status"`
	SpecialRequests string  `json:"specialRequests,omitempty"`
	CreatedBy       string  `json:"createdBy"`
	CreatedAt       string  `json:"createdAt"`
}

// Covers reports whether the booking occupies its room on the given
// business date. Both sides are fixed-width zero-padded YYYY-MM-DD, so the
// lexicographic comparison is safe.
func (b Booking) Covers(date string) bool {
	return date >= b.CheckIn && date < b.CheckOut
}
