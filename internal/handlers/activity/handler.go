package activity

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hus/internal/domains/activity/model/dto"
	"hus/internal/domains/activity/recorder"
	"hus/transport/http/response"
)

type Handler struct {
	recorder recorder.Recorder
}

func New(recorder recorder.Recorder) Handler {
	return Handler{
		recorder: recorder,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/activity", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetActivityLogs)
	})
}

// GetActivityLogs returns the audit trail, newest first.
func (handler *Handler) GetActivityLogs(writer http.ResponseWriter, request *http.Request) {
	res := dto.GetActivityLogsResponse{}
	res.FromModels(handler.recorder.GetAll(request.Context()))

	response.WithJSON(writer, http.StatusOK, res)
}
