package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"github.com/fhuszti/videotube-ms-go/internal/validation"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind error
		want int
	}{
		{usecase.ErrValidation, http.StatusBadRequest},
		{usecase.ErrUnauthorized, http.StatusUnauthorized},
		{usecase.ErrForbidden, http.StatusForbidden},
		{usecase.ErrNotFound, http.StatusNotFound},
		{usecase.ErrConflict, http.StatusConflict},
		{usecase.ErrUpstream, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := StatusFor(tc.kind); got != tc.want {
			t.Errorf("StatusFor(%v) = %d; want %d", tc.kind, got, tc.want)
		}
	}
}

func TestWriteUsecaseError(t *testing.T) {
	type input struct {
		Title string `json:"title" validate:"required"`
	}
	vErr := fmt.Errorf("%w: %w", usecase.ErrValidation, validation.ValidateStruct(input{}))

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMsg     string
		wantDetails bool
	}{
		{"not found", fmt.Errorf("%w: video does not exist", usecase.ErrNotFound), http.StatusNotFound, "Video does not exist", false},
		{"forbidden", fmt.Errorf("%w: not the owner", usecase.ErrForbidden), http.StatusForbidden, "Not the owner", false},
		{"validator details", vErr, http.StatusBadRequest, validation.Summary(vErr), true},
		{"upstream hides cause", errors.New("dial tcp: refused"), http.StatusInternalServerError, "fallback", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			WriteUsecaseError(rec, req, tc.err, "fallback")

			env := assertResponse(t, rec, tc.wantStatus, tc.wantMsg)
			if tc.wantDetails {
				var details map[string]string
				if err := json.Unmarshal(env.ErrorDetails, &details); err != nil {
					t.Fatalf("errorDetails is not an object: %s", env.ErrorDetails)
				}
				if details["title"] != "required" {
					t.Errorf("errorDetails = %v; want title=required", details)
				}
			}
			if got := rec.Header().Get("Cache-Control"); got == "" {
				t.Error("expected Cache-Control header on error responses")
			}
		})
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFoundHandler()(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assertResponse(t, rec, http.StatusNotFound, "Route GET /nope not found")

	rec = httptest.NewRecorder()
	MethodNotAllowedHandler()(rec, httptest.NewRequest(http.MethodPut, "/videos", nil))
	assertResponse(t, rec, http.StatusMethodNotAllowed, "This method is not allowed")
}

func TestWriteError_LogsRequestPrincipal(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	buf := &bytes.Buffer{}
	logger.InitWriter(buf)
	t.Cleanup(func() { logger.InitWriter(os.Stdout) })

	req := withCtx(httptest.NewRequest(http.MethodGet, "/videos", nil), uuid.Nil, uuid.Nil, userID)
	rec := httptest.NewRecorder()
	WriteError(rec, req, http.StatusBadRequest, "Bad input", errors.New("boom"))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	if line["uid"] != userID.String() {
		t.Errorf("uid = %v; want %s", line["uid"], userID)
	}
	assertResponse(t, rec, http.StatusBadRequest, "Bad input")
}
