package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fhuszti/videotube-ms-go/internal/api_context"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

var (
	userID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	otherID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	subID   = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

type envelope struct {
	StatusCode   int             `json:"statusCode"`
	Data         json.RawMessage `json:"data"`
	Message      string          `json:"message"`
	ErrorDetails json.RawMessage `json:"errorDetails"`
	Success      bool            `json:"success"`
}

// withCtx attaches the given path id, sub id and principal; zero values are left out.
func withCtx(r *http.Request, id, sub, user uuid.UUID) *http.Request {
	ctx := r.Context()
	if !id.IsZero() {
		ctx = context.WithValue(ctx, api_context.IDKey, id)
	}
	if !sub.IsZero() {
		ctx = context.WithValue(ctx, api_context.SubIDKey, sub)
	}
	if !user.IsZero() {
		ctx = context.WithValue(ctx, api_context.AuthUserIDKey, user)
	}
	return r.WithContext(ctx)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func assertResponse(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantMsg string) envelope {
	t.Helper()
	if rec.Code != wantStatus {
		t.Fatalf("status = %d; want %d (body %s)", rec.Code, wantStatus, rec.Body.String())
	}
	env := decode(t, rec)
	if env.StatusCode != wantStatus {
		t.Errorf("envelope statusCode = %d; want %d", env.StatusCode, wantStatus)
	}
	if wantMsg != "" && env.Message != wantMsg {
		t.Errorf("message = %q; want %q", env.Message, wantMsg)
	}
	if env.Success != (wantStatus < http.StatusBadRequest) {
		t.Errorf("success = %v for status %d", env.Success, wantStatus)
	}
	return env
}
