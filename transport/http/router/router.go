package router

import (
	"github.com/go-chi/chi/v5"

	"hus/internal/handlers/activity"
	"hus/internal/handlers/auth"
	"hus/internal/handlers/booking"
	"hus/internal/handlers/guest"
	"hus/internal/handlers/payment"
	"hus/internal/handlers/report"
	"hus/internal/handlers/room"
	"hus/internal/handlers/settings"
	"hus/internal/handlers/snapshot"
	"hus/internal/handlers/user"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Room     room.Handler
	Booking  booking.Handler
	Guest    guest.Handler
	Payment  payment.Handler
	User     user.Handler
	Activity activity.Handler
	Settings settings.Handler
	Snapshot snapshot.Handler
	Report   report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Activity.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Snapshot.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
