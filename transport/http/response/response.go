package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"hus/shared/constant"
	"hus/shared/failure"
	"hus/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	response(writer, code, Error{Error: &errMsg})
}

// WithAttachment sends a JSON payload as a downloadable file.
func WithAttachment(writer http.ResponseWriter, filename string, payload interface{}) {
	body, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		logger.ErrorWithStack(err)
		WithError(writer, failure.InternalError(err))

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.Header().Set(constant.RequestHeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	writer.WriteHeader(http.StatusOK)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
