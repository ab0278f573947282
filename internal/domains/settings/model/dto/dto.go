package dto

import (
	"hus/internal/domains/settings/model"
)

type SaveSettingsRequest struct {
	Name          string `json:"name"           validate:"required,max=100"`
	Currency      string `json:"currency"       validate:"required,max=10"`
	ReceiptHeader string `json:"receipt_header" validate:"omitempty,max=500"`
	ReceiptFooter string `json:"receipt_footer" validate:"omitempty,max=500"`
}

func (r *SaveSettingsRequest) ToModel() model.HotelSettings {
	return model.HotelSettings{
		Name:          r.Name,
		Currency:      r.Currency,
		ReceiptHeader: r.ReceiptHeader,
		ReceiptFooter: r.ReceiptFooter,
	}
}

type SettingsResponse struct {
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	ReceiptHeader string `json:"receipt_header,omitempty"`
	ReceiptFooter string `json:"receipt_footer,omitempty"`
}

func (r *SettingsResponse) FromModel(settings model.HotelSettings) {
	r.Name = settings.Name
	r.Currency = settings.Currency
	r.ReceiptHeader = settings.ReceiptHeader
	r.ReceiptFooter = settings.ReceiptFooter
}
