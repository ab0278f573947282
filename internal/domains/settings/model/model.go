package model

// HotelSettings is a singleton; saving overwrites the whole object.
type HotelSettings struct {
	Name          string `json:"name"`
	Currency      string `json:"currency"`
	ReceiptHeader string `json:"receiptHeader,omitempty"`
	ReceiptFooter string `json:"receiptFooter,omitempty"`
}

// Defaults returns the settings used when nothing has been saved yet.
func Defaults() HotelSettings {
	return HotelSettings{
		Name:     "Hus Hotel",
		Currency: "PHP",
	}
}
