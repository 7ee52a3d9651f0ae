package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/api_context"
	"github.com/fhuszti/videotube-ms-go/internal/mock"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

func TestRegisterHandler(t *testing.T) {
	avatar := &port.StagedFile{Path: "/tmp/a.png", Filename: "a.png"}
	svc := &mock.UserService{Out: &model.User{ID: userID, Username: "bob", PasswordHash: "secret-hash"}}
	req := httptest.NewRequest(http.MethodPost, "/users/register",
		strings.NewReader(`{"username":"Bob","email":"bob@example.com","fullName":"Bob B","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(context.WithValue(req.Context(), api_context.StagedFilesKey, map[string]*port.StagedFile{AvatarField: avatar}))
	rec := httptest.NewRecorder()

	RegisterHandler(svc)(rec, req)

	env := assertResponse(t, rec, http.StatusCreated, "User registered successfully")
	in := svc.RegisterIn
	if in.Username != "Bob" || in.Email != "bob@example.com" || in.FullName != "Bob B" || in.Password != "hunter22" {
		t.Errorf("service input = %+v", in)
	}
	if in.Avatar != avatar || in.CoverImage != nil {
		t.Errorf("avatar = %v, cover = %v", in.Avatar, in.CoverImage)
	}
	if strings.Contains(string(env.Data), "secret-hash") {
		t.Error("password hash leaked into the response")
	}
}

func TestRegisterHandler_Conflict(t *testing.T) {
	svc := &mock.UserService{Err: fmt.Errorf("%w: user with email or username already exists", usecase.ErrConflict)}
	req := httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	RegisterHandler(svc)(rec, req)

	assertResponse(t, rec, http.StatusConflict, "User with email or username already exists")
}

func TestLoginHandler_SetsCookie(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	svc := &mock.UserService{LoginOut: port.LoginOutput{User: &model.User{ID: userID}, AccessToken: "tok", ExpiresAt: exp}}
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"email":"bob@example.com","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	LoginHandler(svc, true)(rec, req)

	env := assertResponse(t, rec, http.StatusOK, "User logged in successfully")
	if want := (port.LoginInput{Email: "bob@example.com", Password: "hunter22"}); svc.LoginIn != want {
		t.Errorf("service input = %+v; want %+v", svc.LoginIn, want)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies; want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != AccessTokenCookie || c.Value != "tok" || !c.HttpOnly || !c.Secure {
		t.Errorf("cookie = %+v", c)
	}

	var data struct {
		AccessToken string `json:"accessToken"`
		ExpiresAt   int64  `json:"expiresAt"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.AccessToken != "tok" || data.ExpiresAt != exp {
		t.Errorf("data = %+v", data)
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	svc := &mock.UserService{Err: fmt.Errorf("%w: invalid credentials", usecase.ErrUnauthorized)}
	req := httptest.NewRequest(http.MethodPost, "/users/login", strings.NewReader(`{"username":"bob","password":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	LoginHandler(svc, false)(rec, req)

	assertResponse(t, rec, http.StatusUnauthorized, "Invalid credentials")
	if len(rec.Result().Cookies()) != 0 {
		t.Error("no cookie should be set on failure")
	}
}

func TestLogoutHandler_ClearsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	LogoutHandler(false)(rec, httptest.NewRequest(http.MethodPost, "/users/logout", nil))

	assertResponse(t, rec, http.StatusOK, "User logged out successfully")
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != AccessTokenCookie || cookies[0].MaxAge >= 0 {
		t.Errorf("cookies = %+v", cookies)
	}
}

func TestCurrentUserHandler(t *testing.T) {
	svc := &mock.UserService{Out: &model.User{ID: userID, Username: "bob"}}
	rec := httptest.NewRecorder()
	CurrentUserHandler(svc)(rec, withCtx(httptest.NewRequest(http.MethodGet, "/users/current-user", nil), uuid.Nil, uuid.Nil, userID))

	assertResponse(t, rec, http.StatusOK, "Current user fetched successfully")
	if svc.GotID != userID {
		t.Errorf("id = %s; want %s", svc.GotID, userID)
	}
}
