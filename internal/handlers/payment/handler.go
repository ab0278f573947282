package payment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hus/internal/domains/payment/service"
	"hus/transport/http/response"
)

type Handler struct {
	service service.Payment
}

func New(service service.Payment) Handler {
	return Handler{
		service: service,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPayments)
	})
}

// GetPayments lists the payment ledger.
func (handler *Handler) GetPayments(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, handler.service.GetAll(request.Context()))
}
