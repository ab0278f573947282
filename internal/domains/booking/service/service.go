package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	activityModel "hus/internal/domains/activity/model"
	"hus/internal/domains/activity/recorder"
	"hus/internal/domains/booking/model"
	"hus/internal/domains/booking/model/dto"
	"hus/internal/domains/booking/repository"
	guestModel "hus/internal/domains/guest/model"
	guestRepo "hus/internal/domains/guest/repository"
	paymentModel "hus/internal/domains/payment/model"
	paymentRepo "hus/internal/domains/payment/repository"
	roomModel "hus/internal/domains/room/model"
	roomRepo "hus/internal/domains/room/repository"
	"hus/shared/constant"
	"hus/shared/failure"
	"hus/shared/timezone"
)

// Booking is the lifecycle engine: it allocates a room, derives the
// booking status, applies the initial payment and transitions the room.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, id string) error
	GetAll(ctx context.Context, search string) dto.GetBookingsResponse
	Occupancy(ctx context.Context, date string) dto.OccupancyResponse
}

type serviceImpl struct {
	repo        repository.Booking
	roomRepo    roomRepo.Room
	guestRepo   guestRepo.Guest
	paymentRepo paymentRepo.Payment
	recorder    recorder.Recorder
}

func New(repo repository.Booking, roomRepo roomRepo.Room, guestRepo guestRepo.Guest, paymentRepo paymentRepo.Payment, recorder recorder.Recorder) Booking {
	return &serviceImpl{
		repo:        repo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		paymentRepo: paymentRepo,
		recorder:    recorder,
	}
}

// Create books a room for a new guest. Same-day check-in goes straight to
// CHECKED_IN and occupies the room; a future date reserves it. The total
// is the room's flat base rate regardless of the length of stay, and no
// availability check is made against existing bookings for the same room
// and dates.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == constant.Empty {
		return res, failure.Unauthorized("booking requires an authenticated actor") //nolint:wrapcheck
	}

	room, ok := s.roomRepo.Get(ctx, req.SelectedRoomID)
	if !ok {
		return res, failure.BadRequestFromString("room does not exist") //nolint:wrapcheck
	}

	today := timezone.Today()

	status := model.StatusPending
	roomStatus := roomModel.StatusReserved

	if req.CheckIn == today {
		status = model.StatusCheckedIn
		roomStatus = roomModel.StatusOccupied
	}

	booking := model.Booking{
		ID:              uuid.NewString(),
		RoomID:          room.ID,
		GuestID:         uuid.NewString(),
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		NumGuests:       req.NumGuests,
		TotalAmount:     room.BaseRate,
		PaidAmount:      req.InitialPayment,
		Status:          status,
		SpecialRequests: req.SpecialRequests,
		CreatedBy:       actor,
		CreatedAt:       timezone.Now().Format(time.RFC3339),
	}

	guest := guestModel.Guest{
		ID:       booking.GuestID,
		Name:     req.GuestName,
		Phone:    req.GuestPhone,
		Email:    req.GuestEmail,
		IDNumber: req.GuestIDNumber,
	}

	// Each collection is persisted independently; there is no rollback if
	// a later write fails.
	if req.InitialPayment > 0 {
		method := req.PaymentMethod
		if method == constant.Empty {
			method = paymentModel.MethodCash
		}

		payment := paymentModel.Payment{
			ID:         uuid.NewString(),
			BookingID:  booking.ID,
			Amount:     req.InitialPayment,
			Method:     method,
			Date:       today,
			RecordedBy: actor,
		}

		if err = s.paymentRepo.Save(ctx, append(s.paymentRepo.GetAll(ctx), payment)); err != nil {
			log.Error().Err(err).Msg("failed to record initial payment")

			return res, fmt.Errorf("failed to record initial payment: %w", err)
		}
	}

	if err = s.repo.Save(ctx, append(s.repo.GetAll(ctx), booking)); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = s.guestRepo.Save(ctx, append(s.guestRepo.GetAll(ctx), guest)); err != nil {
		log.Error().Err(err).Msg("failed to register guest")

		return res, fmt.Errorf("failed to register guest: %w", err)
	}

	if err = s.transitionRoom(ctx, room.ID, roomStatus); err != nil {
		log.Error().Err(err).Msg("failed to transition room status")

		return res, fmt.Errorf("failed to transition room status: %w", err)
	}

	kind := "Reservation"
	if req.IsWalkIn {
		kind = "Walk-In"
	}

	s.recorder.Record(ctx, activityModel.ActionCreate, activityModel.EntityBooking, booking.ID,
		fmt.Sprintf("%s for %s confirmed.", kind, guest.Name))

	res.FromModel(booking)
	res.GuestName = guest.Name

	return res, nil
}

// CheckIn advances a pending booking to CHECKED_IN and occupies its room.
func (s *serviceImpl) CheckIn(ctx context.Context, id string) error {
	booking, ok := s.repo.Get(ctx, id)
	if !ok {
		return failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if booking.Status != model.StatusPending {
		return failure.Conflict("only pending bookings can be checked in") //nolint:wrapcheck
	}

	bookings := s.repo.GetAll(ctx)
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].Status = model.StatusCheckedIn
		}
	}

	if err := s.repo.Save(ctx, bookings); err != nil {
		log.Error().Err(err).Msg("failed to check in booking")

		return fmt.Errorf("failed to check in booking: %w", err)
	}

	if err := s.transitionRoom(ctx, booking.RoomID, roomModel.StatusOccupied); err != nil {
		log.Error().Err(err).Msg("failed to occupy room")

		return fmt.Errorf("failed to occupy room: %w", err)
	}

	guestName := constant.Empty
	if guest, found := s.guestRepo.Get(ctx, booking.GuestID); found {
		guestName = guest.Name
	}

	s.recorder.Record(ctx, activityModel.ActionCheckIn, activityModel.EntityBooking, booking.ID,
		fmt.Sprintf("Manual check-in for %s.", guestName))

	return nil
}

// GetAll lists bookings, optionally filtered by booking id fragment or
// guest name.
func (s *serviceImpl) GetAll(ctx context.Context, search string) dto.GetBookingsResponse {
	bookings := s.repo.GetAll(ctx)
	guests := s.guestRepo.GetAll(ctx)

	names := make(map[string]string, len(guests))
	for _, guest := range guests {
		names[guest.ID] = guest.Name
	}

	res := dto.GetBookingsResponse{Bookings: []dto.BookingResponse{}}
	needle := strings.ToLower(search)

	for _, booking := range bookings {
		name := names[booking.GuestID]

		if search != constant.Empty &&
			!strings.Contains(booking.ID, search) &&
			!strings.Contains(strings.ToLower(name), needle) {
			continue
		}

		var entry dto.BookingResponse

		entry.FromModel(booking)
		entry.GuestName = name

		res.Bookings = append(res.Bookings, entry)
	}

	res.TotalData = len(res.Bookings)

	return res
}

// Occupancy reports, for every room, the booking covering the given date.
// A booking covers a date when date >= checkIn and date < checkOut; the
// check-out morning itself is free.
func (s *serviceImpl) Occupancy(ctx context.Context, date string) dto.OccupancyResponse {
	bookings := s.repo.GetAll(ctx)
	rooms := s.roomRepo.GetAll(ctx)

	res := dto.OccupancyResponse{Date: date, Rooms: make([]dto.RoomOccupancy, 0, len(rooms))}

	for _, room := range rooms {
		entry := dto.RoomOccupancy{RoomID: room.ID, RoomNumber: room.Number}

		for _, booking := range bookings {
			if booking.RoomID == room.ID && booking.Covers(date) {
				var covering dto.BookingResponse

				covering.FromModel(booking)
				entry.Booking = &covering
				res.BusyCount++

				break
			}
		}

		res.Rooms = append(res.Rooms, entry)
	}

	return res
}

func (s *serviceImpl) transitionRoom(ctx context.Context, roomID int, status roomModel.Status) error {
	rooms := s.roomRepo.GetAll(ctx)
	for i := range rooms {
		if rooms[i].ID == roomID {
			rooms[i].Status = status
		}
	}

	return s.roomRepo.Save(ctx, rooms) //nolint:wrapcheck
}
