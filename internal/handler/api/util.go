package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/renderer"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/validation"
)

// Response is the success envelope.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
	Success    bool   `json:"success"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	StatusCode   int    `json:"statusCode"`
	Message      string `json:"message"`
	ErrorDetails any    `json:"errorDetails"`
	Success      bool   `json:"success"`
}

func RespondOK(w http.ResponseWriter, status int, data any, msg string) {
	RespondJSON(w, status, Response{StatusCode: status, Data: data, Message: msg, Success: status < http.StatusBadRequest})
}

// RespondCacheable is RespondOK with an ETag, answering 304 when the client copy is current.
func RespondCacheable(w http.ResponseWriter, r *http.Request, data any, msg string) {
	env := Response{StatusCode: http.StatusOK, Data: data, Message: msg, Success: true}
	if err := renderer.JSON(w, r, http.StatusOK, env); err != nil {
		logger.Errorf(r.Context(), "❌  Failed to render JSON response: %v", err)
	}
}

// WriteError logs err and writes the failure envelope. Validator errors are listed in errorDetails.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	ctx := r.Context()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}

	var details any = []string{}
	if d := validation.Details(err); d != nil {
		details = d
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{StatusCode: status, Message: msg, ErrorDetails: details, Success: false})
}

// WriteUsecaseError maps the kind of err to a status code. Server side causes are logged and
// replaced by fallback in the response.
func WriteUsecaseError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	kind := usecase.Kind(err)
	status := StatusFor(kind)
	if status >= http.StatusInternalServerError {
		logger.Errorf(r.Context(), "❌  %s: %v", fallback, err)
		w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
		RespondJSON(w, status, ErrorResponse{StatusCode: status, Message: fallback, ErrorDetails: []string{}, Success: false})
		return
	}

	msg := publicMessage(err, kind)
	if errors.Is(kind, usecase.ErrValidation) && validation.Details(err) != nil {
		msg = validation.Summary(err)
	}
	WriteError(w, r, status, msg, err)
}

func StatusFor(kind error) int {
	switch {
	case errors.Is(kind, usecase.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(kind, usecase.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, usecase.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(kind, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, usecase.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage drops the leading kind from err's text, "not found: video x" becoming "video x".
func publicMessage(err, kind error) string {
	if err == nil {
		return ""
	}
	msg, ok := strings.CutPrefix(err.Error(), kind.Error()+": ")
	if !ok || msg == "" {
		msg = err.Error()
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

// AccessTokenCookie carries the access token issued at login.
const AccessTokenCookie = "accessToken"
