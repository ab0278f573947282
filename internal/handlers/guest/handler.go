package guest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hus/internal/domains/guest/service"
	"hus/shared/constant"
	"hus/transport/http/response"
)

type Handler struct {
	service service.Guest
}

func New(service service.Guest) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGuests)
	})
}

// GetGuests lists the guest registry, optionally filtered by name.
func (handler *Handler) GetGuests(writer http.ResponseWriter, request *http.Request) {
	search := request.URL.Query().Get(constant.RequestParamSearch)

	response.WithJSON(writer, http.StatusOK, handler.service.GetAll(request.Context(), search))
}
