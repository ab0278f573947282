package model

const (
	EntityName = "PAYMENT"
)

type Method string

const (
	MethodCash         Method = "CASH"
	MethodGCash        Method = "GCASH"
	MethodBankTransfer Method = "BANK_TRANSFER"
)

// Payment is immutable once recorded. It contributes to the booking's
// paid amount by convention only; the two are not reconciled.
type Payment struct {
	ID         string  `json:"id"`
	BookingID  string  `json:"bookingId"`
	Amount     float64 `json:"amount"`
	Method     Method  `json:"method"`
	Date       string  `json:"date"`
	RecordedBy string  `json:"recordedBy"`
}

// ValidMethod reports whether m is one of the accepted payment channels.
func ValidMethod(m Method) bool {
	switch m {
	case MethodCash, MethodGCash, MethodBankTransfer:
		return true
	}

	return false
}
