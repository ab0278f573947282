package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hus/internal/domains/auth/model/dto"
	"hus/internal/domains/auth/service"
	"hus/shared/validator"
	"hus/transport/http/response"
)

type Handler struct {
	service service.Auth
}

func New(service service.Auth) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)
	})
}

// Login authenticates a staff member and opens a terminal session.
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Login(request.Context(), req)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
