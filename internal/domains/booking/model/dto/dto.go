package dto

import (
	"hus/internal/domains/booking/model"
	paymentModel "hus/internal/domains/payment/model"
)

// CreateBookingRequest carries the front-desk booking form. The walk-in
// flag only changes the audit wording; the resulting status is derived
// from comparing check-in against today's date. Check-out preceding
// check-in is accepted as-is.
type CreateBookingRequest struct {
	SelectedRoomID  int                 `json:"selected_room_id" validate:"required"`
	GuestName       string              `json:"guest_name"       validate:"required,max=100"`
	GuestPhone      string              `json:"guest_phone"      validate:"omitempty,max=20"`
	GuestEmail      string              `json:"guest_email"      validate:"omitempty,email,max=100"`
	GuestIDNumber   string              `json:"guest_id_number"  validate:"omitempty,max=50"`
	CheckIn         string              `json:"check_in"         validate:"required,businessdate"`
	CheckOut        string              `json:"check_out"        validate:"required,businessdate"`
	NumGuests       int                 `json:"num_guests"       validate:"omitempty,min=1"`
	PaymentMethod   paymentModel.Method `json:"payment_method"   validate:"omitempty,oneof=CASH GCASH BANK_TRANSFER"`
	InitialPayment  float64             `json:"initial_payment"  validate:"omitempty,gte=0"`
	SpecialRequests string              `json:"special_requests" validate:"omitempty"`
	IsWalkIn        bool                `json:"is_walk_in"`
}

type BookingResponse struct {
	ID              string       `json:"id"`
	RoomID          int          `json:"room_id"`
	GuestID         string       `json:"guest_id"`
	GuestName       string       `json:"guest_name,omitempty"`
	CheckIn         string       `json:"check_in"`
	CheckOut        string       `json:"check_out"`
	NumGuests       int          `json:"num_guests"`
	TotalAmount     float64      `json:"total_amount"`
	PaidAmount      float64      `json:"paid_amount"`
	Status          model.Status `json:"status"`
	SpecialRequests string       `json:"special_requests,omitempty"`
	CreatedBy       string       `json:"created_by"`
	CreatedAt       string       `json:"created_at"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.RoomID = booking.RoomID
	r.GuestID = booking.GuestID
	r.CheckIn = booking.CheckIn
	r.CheckOut = booking.CheckOut
	r.NumGuests = booking.NumGuests
	r.TotalAmount = booking.TotalAmount
	r.PaidAmount = booking.PaidAmount
	r.Status = booking.Status
	r.SpecialRequests = booking.SpecialRequests
	r.CreatedBy = booking.CreatedBy
	r.CreatedAt = booking.CreatedAt
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

// RoomOccupancy pairs a room with the booking covering the queried date,
// if any.
type RoomOccupancy struct {
	RoomID     int              `json:"room_id"`
	RoomNumber string           `json:"room_number"`
	Booking    *BookingResponse `json:"booking,omitempty"`
}

type OccupancyResponse struct {
	Date      string          `json:"date"`
	BusyCount int             `json:"busy_count"`
	Rooms     []RoomOccupancy `json:"rooms"`
}
