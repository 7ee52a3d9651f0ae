package api

import (
	"net/http"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/api_context"
	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/port"
)

// Multipart fields staged for registration.
const (
	AvatarField     = "avatar"
	CoverImageField = "coverImage"
)

func RegisterHandler(svc port.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := readFields(w, r)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not register user")
			return
		}

		u, err := svc.Register(r.Context(), port.RegisterInput{
			Username:   fields["username"],
			Email:      fields["email"],
			FullName:   fields["fullName"],
			Password:   fields["password"],
			Avatar:     api_context.StagedFile(r.Context(), AvatarField),
			CoverImage: api_context.StagedFile(r.Context(), CoverImageField),
		})
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not register user")
			return
		}

		RespondOK(w, http.StatusCreated, u, "User registered successfully")
		logger.Infof(r.Context(), "✅  Registered user #%s", u.ID)
	}
}

// LoginHandler sets the access token as an HttpOnly cookie and also returns it in data.
func LoginHandler(svc port.UserService, secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := readFields(w, r)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not log in")
			return
		}

		out, err := svc.Login(r.Context(), port.LoginInput{
			Email:    fields["email"],
			Username: fields["username"],
			Password: fields["password"],
		})
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not log in")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     AccessTokenCookie,
			Value:    out.AccessToken,
			Path:     "/",
			Expires:  time.Unix(out.ExpiresAt, 0),
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
		RespondOK(w, http.StatusOK, map[string]any{
			"user":        out.User,
			"accessToken": out.AccessToken,
			"expiresAt":   out.ExpiresAt,
		}, "User logged in successfully")
		logger.Infof(r.Context(), "✅  User #%s logged in", out.User.ID)
	}
}

func LogoutHandler(secureCookie bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     AccessTokenCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
		RespondOK(w, http.StatusOK, nil, "User logged out successfully")
	}
}

func CurrentUserHandler(svc port.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := principal(w, r)
		if !ok {
			return
		}

		u, err := svc.CurrentUser(r.Context(), user)
		if err != nil {
			WriteUsecaseError(w, r, err, "Could not fetch current user")
			return
		}

		RespondOK(w, http.StatusOK, u, "Current user fetched successfully")
	}
}
