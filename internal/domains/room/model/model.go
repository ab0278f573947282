package model

import "fmt"

const (
	EntityName = "ROOM"

	// Fixed inventory of the property. Rooms are created once at
	// initialization and never deleted.
	InventorySize = 28

	standardRate = 1500
	deluxeRate   = 2200
	suiteRate    = 3500

	weekendMultiplier = 1.2
)

type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusReserved    Status = "RESERVED"
	StatusOccupied    Status = "OCCUPIED"
	StatusCleaning    Status = "CLEANING"
	StatusMaintenance Status = "MAINTENANCE"
)

type Type string

const (
	TypeStandard Type = "Standard"
	TypeDeluxe   Type = "Deluxe"
	TypeSuite    Type = "Suite"
)

// Room models one physical unit. Status is single-valued and mutually
// exclusive at any instant.
type Room struct {
	ID          int     `json:"id"`
	Number      string  `json:"number"`
	Type        Type    `json:"type"`
	Status      Status  `json:"status"`
	BaseRate    float64 `json:"baseRate"`
	WeekendRate float64 `json:"weekendRate"`
}

// SeedInventory builds the fixed 28-unit inventory: units 1-10 Standard,
// 11-20 Deluxe, 21-28 Suite, weekend rate at 1.2x base.
func SeedInventory() []Room {
	rooms := make([]Room, 0, InventorySize)

	for num := 1; num <= InventorySize; num++ {
		roomType := TypeStandard
		rate := float64(standardRate)

		switch {
		case num > 20:
			roomType = TypeSuite
			rate = suiteRate
		case num > 10:
			roomType = TypeDeluxe
			rate = deluxeRate
		}

		rooms = append(rooms, Room{
			ID:          num,
			Number:      fmt.Sprintf("%03d", num),
			Type:        roomType,
			Status:      StatusAvailable,
			BaseRate:    rate,
			WeekendRate: rate * weekendMultiplier,
		})
	}

	return rooms
}

// ValidStatus reports whether s is one of the five enumerated statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusOccupied, StatusCleaning, StatusMaintenance:
		return true
	}

	return false
}

// ValidType reports whether t is one of the enumerated room categories.
func ValidType(t Type) bool {
	switch t {
	case TypeStandard, TypeDeluxe, TypeSuite:
		return true
	}

	return false
}
