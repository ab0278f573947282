package model

// MaxEntries caps the persisted history; the oldest entries beyond it are
// silently dropped.
const MaxEntries = 100

type ActionType string

const (
	ActionCreate   ActionType = "CREATE"
	ActionEdit     ActionType = "EDIT"
	ActionDelete   ActionType = "DELETE"
	ActionCheckIn  ActionType = "CHECK_IN"
	ActionCheckOut ActionType = "CHECK_OUT"
	ActionPayment  ActionType = "PAYMENT"
	ActionCancel   ActionType = "CANCEL"
	ActionSystem   ActionType = "SYSTEM"
)

type EntityType string

const (
	EntityBooking EntityType = "BOOKING"
	EntityRoom    EntityType = "ROOM"
	EntityPayment EntityType = "PAYMENT"
	EntityUser    EntityType = "USER"
	EntityGuest   EntityType = "GUEST"
	EntitySystem  EntityType = "SYSTEM"
)

// ActivityLog is an append-only audit entry. The actor fields are a
// denormalized snapshot taken at record time; later edits to the user do
// not rewrite history.
type ActivityLog struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	UserName   string     `json:"userName"`
	Role       string     `json:"role"`
	ActionType ActionType `json:"actionType"`
	EntityType EntityType `json:"entityType"`
	EntityID   string     `json:"entityId"`
	Details    string     `json:"details"`
	Timestamp  string     `json:"timestamp"`
}
