package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hus/internal/domains/settings/model/dto"
	"hus/internal/domains/settings/service"
	"hus/shared/validator"
	"hus/transport/http/response"
)

type Handler struct {
	service service.Settings
}

func New(service service.Settings) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Put("/", handler.SaveSettings)
	})
}

// GetSettings returns the property profile.
func (handler *Handler) GetSettings(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, handler.service.Get(request.Context()))
}

// SaveSettings overwrites the property profile.
func (handler *Handler) SaveSettings(writer http.ResponseWriter, request *http.Request) {
	req := dto.SaveSettingsRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Save(request.Context(), req); err != nil {
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Settings saved successfully")
}
