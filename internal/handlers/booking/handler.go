package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hus/internal/domains/booking/model/dto"
	"hus/internal/domains/booking/service"
	"hus/shared/constant"
	"hus/shared/failure"
	"hus/shared/timezone"
	"hus/shared/validator"
	"hus/transport/http/response"
)

type Handler struct {
	service service.Booking
}

func New(service service.Booking) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/occupancy", handler.GetOccupancy)
		routerGroup.Post("/{id}/checkin", handler.CheckIn)
	})
}

// CreateBooking runs the full booking flow: guest registration, optional
// initial payment, booking record and room transition.
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(request.Context(), req)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookings lists bookings, optionally filtered by id fragment or guest
// name.
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	search := request.URL.Query().Get(constant.RequestParamSearch)

	response.WithJSON(writer, http.StatusOK, handler.service.GetAll(request.Context(), search))
}

// GetOccupancy reports the booking covering each room on a date,
// defaulting to today.
func (handler *Handler) GetOccupancy(writer http.ResponseWriter, request *http.Request) {
	date := request.URL.Query().Get(constant.RequestParamDate)
	if date == constant.Empty {
		date = timezone.Today()
	}

	if err := validator.ValidateVar(date, "businessdate"); err != nil {
		response.WithError(writer, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD"))

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.service.Occupancy(request.Context(), date))
}

// CheckIn advances a pending booking to CHECKED_IN.
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.CheckIn(request.Context(), id); err != nil {
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Booking checked in successfully")
}
