//go:build wireinject
// +build wireinject

package di

import (
	"hus/config"
	"hus/infras/jwt"
	"hus/internal/store"
	"hus/permissions"
	"hus/transport/http"
	"hus/transport/http/middleware"
	"hus/transport/http/router"

	"github.com/google/wire"

	activityRepository "hus/internal/domains/activity/repository"
	"hus/internal/domains/activity/recorder"

	authService "hus/internal/domains/auth/service"
	bookingRepository "hus/internal/domains/booking/repository"
	bookingService "hus/internal/domains/booking/service"
	guestRepository "hus/internal/domains/guest/repository"
	guestService "hus/internal/domains/guest/service"
	paymentRepository "hus/internal/domains/payment/repository"
	paymentService "hus/internal/domains/payment/service"
	reportService "hus/internal/domains/report/service"
	roomRepository "hus/internal/domains/room/repository"
	roomService "hus/internal/domains/room/service"
	settingsRepository "hus/internal/domains/settings/repository"
	settingsService "hus/internal/domains/settings/service"
	snapshotService "hus/internal/domains/snapshot/service"
	userRepository "hus/internal/domains/user/repository"
	userService "hus/internal/domains/user/service"

	activityHandler "hus/internal/handlers/activity"
	authHandler "hus/internal/handlers/auth"
	bookingHandler "hus/internal/handlers/booking"
	guestHandler "hus/internal/handlers/guest"
	paymentHandler "hus/internal/handlers/payment"
	reportHandler "hus/internal/handlers/report"
	roomHandler "hus/internal/handlers/room"
	settingsHandler "hus/internal/handlers/settings"
	snapshotHandler "hus/internal/handlers/snapshot"
	userHandler "hus/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	store.New,
	jwt.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var auditTrail = wire.NewSet(
	activityRepository.New,
	recorder.New,
)

var domains = wire.NewSet(
	roomRepository.New,
	roomService.New,
	bookingRepository.New,
	bookingService.New,
	guestRepository.New,
	guestService.New,
	paymentRepository.New,
	paymentService.New,
	userRepository.New,
	userService.New,
	authService.New,
	settingsRepository.New,
	settingsService.New,
	snapshotService.New,
	reportService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	guestHandler.New,
	paymentHandler.New,
	userHandler.New,
	activityHandler.New,
	settingsHandler.New,
	snapshotHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		auditTrail,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
