package dto

import (
	activityModel "hus/internal/domains/activity/model"
	bookingModel "hus/internal/domains/booking/model"
	guestModel "hus/internal/domains/guest/model"
	paymentModel "hus/internal/domains/payment/model"
	roomModel "hus/internal/domains/room/model"
	settingsModel "hus/internal/domains/settings/model"
	userModel "hus/internal/domains/user/model"
)

// SnapshotResponse is a point-in-time export of every collection, not an
// incremental backup. The entities keep their persisted JSON shape so the
// document can be restored by copying it back into the store.
type SnapshotResponse struct {
	Rooms      []roomModel.Room            `json:"rooms"`
	Bookings   []bookingModel.Booking      `json:"bookings"`
	Guests     []guestModel.Guest          `json:"guests"`
	Payments   []paymentModel.Payment      `json:"payments"`
	Users      []userModel.User            `json:"users"`
	Logs       []activityModel.ActivityLog `json:"logs"`
	Settings   settingsModel.HotelSettings `json:"settings"`
	ExportedAt string                      `json:"exportedAt"`
}

type WipeRequest struct {
	Confirm bool `json:"confirm"`
}
