package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	activityRepo "hus/internal/domains/activity/repository"
	bookingRepo "hus/internal/domains/booking/repository"
	guestRepo "hus/internal/domains/guest/repository"
	paymentRepo "hus/internal/domains/payment/repository"
	roomRepo "hus/internal/domains/room/repository"
	settingsRepo "hus/internal/domains/settings/repository"
	"hus/internal/domains/snapshot/model/dto"
	userRepo "hus/internal/domains/user/repository"
	"hus/internal/store"
	"hus/shared/failure"
	"hus/shared/timezone"
)

type Snapshot interface {
	Export(ctx context.Context) dto.SnapshotResponse
	Wipe(ctx context.Context, confirm bool) error
}

type serviceImpl struct {
	store        store.Store
	roomRepo     roomRepo.Room
	bookingRepo  bookingRepo.Booking
	guestRepo    guestRepo.Guest
	paymentRepo  paymentRepo.Payment
	userRepo     userRepo.User
	activityRepo activityRepo.Activity
	settingsRepo settingsRepo.Settings
}

func New(
	store store.Store,
	roomRepo roomRepo.Room,
	bookingRepo bookingRepo.Booking,
	guestRepo guestRepo.Guest,
	paymentRepo paymentRepo.Payment,
	userRepo userRepo.User,
	activityRepo activityRepo.Activity,
	settingsRepo settingsRepo.Settings,
) Snapshot {
	return &serviceImpl{
		store:        store,
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		guestRepo:    guestRepo,
		paymentRepo:  paymentRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
		settingsRepo: settingsRepo,
	}
}

// Export combines every collection into one dated document.
func (s *serviceImpl) Export(ctx context.Context) dto.SnapshotResponse {
	return dto.SnapshotResponse{
		Rooms:      s.roomRepo.GetAll(ctx),
		Bookings:   s.bookingRepo.GetAll(ctx),
		Guests:     s.guestRepo.GetAll(ctx),
		Payments:   s.paymentRepo.GetAll(ctx),
		Users:      s.userRepo.GetAll(ctx),
		Logs:       s.activityRepo.GetAll(ctx),
		Settings:   s.settingsRepo.Get(ctx),
		ExportedAt: timezone.Now().Format(time.RFC3339),
	}
}

// Wipe destroys all persisted state unconditionally. Irreversible, so the
// caller must pass an explicit confirmation.
func (s *serviceImpl) Wipe(_ context.Context, confirm bool) error {
	if !confirm {
		return failure.WipeNotConfirmedError //nolint:wrapcheck
	}

	if err := s.store.WipeAll(); err != nil {
		log.Error().Err(err).Msg("failed to wipe property data")

		return fmt.Errorf("failed to wipe property data: %w", err)
	}

	log.Warn().Msg("All property data wiped")

	return nil
}
