package dto

import (
	"hus/internal/domains/room/model"
)

// UpdateRoomRequest is a partial patch of the room master file. Only a
// super-admin may change the unit number or category; rate and status are
// open to every role.
type UpdateRoomRequest struct {
	Number      *string       `json:"number"       validate:"omitempty,max=10"`
	Type        *model.Type   `json:"type"         validate:"omitempty,oneof=Standard Deluxe Suite"`
	Status      *model.Status `json:"status"       validate:"omitempty,oneof=AVAILABLE RESERVED OCCUPIED CLEANING MAINTENANCE"`
	BaseRate    *float64      `json:"base_rate"    validate:"omitempty,gte=0"`
	WeekendRate *float64      `json:"weekend_rate" validate:"omitempty,gte=0"`
}

// Empty reports whether the patch changes nothing.
func (r UpdateRoomRequest) Empty() bool {
	return r.Number == nil && r.Type == nil && r.Status == nil && r.BaseRate == nil && r.WeekendRate == nil
}

// RestrictedFields reports whether the patch touches fields reserved to
// the super-admin.
func (r UpdateRoomRequest) RestrictedFields() bool {
	return r.Number != nil || r.Type != nil
}

// HousekeepingRequest flips a unit between ready and dirty. The transition
// is a manual override: it is deliberately unguarded against the room
// being occupied or reserved.
type HousekeepingRequest struct {
	Clean *bool `json:"clean" validate:"required"`
}

type RoomResponse struct {
	ID          int          `json:"id"`
	Number      string       `json:"number"`
	Type        model.Type   `json:"type"`
	Status      model.Status `json:"status"`
	BaseRate    float64      `json:"base_rate"`
	WeekendRate float64      `json:"weekend_rate"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.Number = room.Number
	r.Type = room.Type
	r.Status = room.Status
	r.BaseRate = room.BaseRate
	r.WeekendRate = room.WeekendRate
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(rooms []model.Room) {
	r.TotalData = len(rooms)
	r.Rooms = make([]RoomResponse, len(rooms))

	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}
}
