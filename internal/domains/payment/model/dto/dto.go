package dto

import (
	"hus/internal/domains/payment/model"
)

type PaymentResponse struct {
	ID         string       `json:"id"`
	BookingID  string       `json:"booking_id"`
	Amount     float64      `json:"amount"`
	Method     model.Method `json:"method"`
	Date       string       `json:"date"`
	RecordedBy string       `json:"recorded_by"`
}

func (r *PaymentResponse) FromModel(payment model.Payment) {
	r.ID = payment.ID
	r.BookingID = payment.BookingID
	r.Amount = payment.Amount
	r.Method = payment.Method
	r.Date = payment.Date
	r.RecordedBy = payment.RecordedBy
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalData int               `json:"total_data"`
}
