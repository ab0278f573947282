package report

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hus/internal/domains/report/service"
	"hus/transport/http/response"
)

type Handler struct {
	service service.Report
}

func New(service service.Report) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/dashboard", handler.GetDashboard)
	})
}

// GetDashboard returns the landing-screen stats: room status counts and
// today's collected revenue.
func (handler *Handler) GetDashboard(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, handler.service.Dashboard(request.Context()))
}
