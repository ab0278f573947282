package model

const (
	EntityName = "GUEST"
)

// Guest is created once per booking; repeat stays are not deduplicated.
type Guest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IDNumber string `json:"idNumber"`
}
