package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hus/internal/domains/user/model/dto"
	"hus/internal/domains/user/service"
	"hus/shared/constant"
	"hus/shared/validator"
	"hus/transport/http/response"
)

type Handler struct {
	service service.User
}

func New(service service.User) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetUsers)
		routerGroup.Post("/", handler.CreateUser)
		routerGroup.Patch("/{id}", handler.UpdateUser)
		routerGroup.Delete("/{id}", handler.DeleteUser)
	})
}

// GetUsers lists the staff roster without passwords.
func (handler *Handler) GetUsers(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, handler.service.GetAll(request.Context()))
}

// CreateUser adds a staff account with the default starter password.
func (handler *Handler) CreateUser(writer http.ResponseWriter, request *http.Request) {
	req := dto.CreateUserRequest{}

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

// UpdateUser applies a partial patch to a personnel file.
func (handler *Handler) UpdateUser(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateUserRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(request.Context(), id, req); err != nil {
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "User updated successfully")
}

// DeleteUser removes a staff account permanently.
func (handler *Handler) DeleteUser(writer http.ResponseWriter, request *http.Request) {
	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(request.Context(), id); err != nil {
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "User deleted successfully")
}
