package snapshot

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hus/internal/domains/snapshot/model/dto"
	"hus/internal/domains/snapshot/service"
	"hus/shared/timezone"
	"hus/shared/validator"
	"hus/transport/http/response"
)

type Handler struct {
	service service.Snapshot
}

func New(service service.Snapshot) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/snapshot", func(routerGroup chi.Router) {
		routerGroup.Get("/export", handler.Export)
		routerGroup.Post("/wipe", handler.Wipe)
	})
}

// Export downloads the whole property state as a dated backup document.
func (handler *Handler) Export(writer http.ResponseWriter, request *http.Request) {
	filename := fmt.Sprintf("hus-backup-%s.json", timezone.Today())

	response.WithAttachment(writer, filename, handler.service.Export(request.Context()))
}

// Wipe destroys every collection. The confirmation flag must be set
// explicitly; there is no undo.
func (handler *Handler) Wipe(writer http.ResponseWriter, request *http.Request) {
	req := dto.WipeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Wipe(request.Context(), req.Confirm); err != nil {
		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "All property data wiped")
}
