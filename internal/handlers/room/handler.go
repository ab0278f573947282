package room

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hus/internal/domains/room/model/dto"
	"hus/internal/domains/room/service"
	"hus/shared/constant"
	"hus/shared/failure"
	"hus/shared/validator"
	"hus/transport/http/response"
)

type Handler struct {
	service service.Room
}

func New(service service.Room) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Put("/{id}/housekeeping", handler.SetHousekeeping)
	})
}

// GetRooms lists the full room inventory.
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, handler.service.GetAll(request.Context()))
}

// UpdateRoom applies a partial patch to the room master file.
func (handler *Handler) UpdateRoom(writer http.ResponseWriter, request *http.Request) {
	id, err := roomID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateRoomRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(request.Context(), id, req); err != nil {
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Room updated successfully")
}

// SetHousekeeping flips a unit between ready and dirty.
func (handler *Handler) SetHousekeeping(writer http.ResponseWriter, request *http.Request) {
	id, err := roomID(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req := dto.HousekeepingRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.SetCleaningState(request.Context(), id, *req.Clean); err != nil {
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Housekeeping state updated")
}

func roomID(request *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		return 0, failure.BadRequestFromString("room id must be numeric") //nolint:wrapcheck
	}

	return id, nil
}
