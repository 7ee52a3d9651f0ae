package user

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/auth"
	"github.com/fhuszti/videotube-ms-go/internal/mock"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

var userID = uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

func stage(t *testing.T, name string) *port.StagedFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("img"), 0o600); err != nil {
		t.Fatalf("could not write staged file: %v", err)
	}
	return &port.StagedFile{Path: path, Filename: name, Size: 3}
}

type fixture struct {
	users  *mock.UserRepo
	strg   *mock.ObjectStore
	hasher *mock.Hasher
	tokens *mock.TokenIssuer
	svc    port.UserService
}

func newFixture() *fixture {
	f := &fixture{
		users: &mock.UserRepo{},
		strg: &mock.ObjectStore{UploadOut: map[port.MediaKind]port.UploadResult{
			port.MediaKindImage: {ExternalRef: "http://m/videotube/image/upload/av.png", PublicID: "av"},
		}},
		hasher: &mock.Hasher{},
		tokens: &mock.TokenIssuer{Token: "tok", ExpiresAt: time.Unix(1700000000, 0)},
	}
	f.svc = NewUserService(f.users, f.strg, f.hasher, f.tokens, func() uuid.UUID { return userID })
	return f
}

func validRegistration(t *testing.T) port.RegisterInput {
	return port.RegisterInput{
		Username: " JoDoe ",
		Email:    "Jo@Example.com",
		FullName: "Jo Doe",
		Password: "correct horse",
		Avatar:   stage(t, "avatar.png"),
	}
}

func TestRegister_Success(t *testing.T) {
	f := newFixture()
	in := validRegistration(t)

	u, err := f.svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Username != "jodoe" || u.Email != "jo@example.com" {
		t.Errorf("got %q / %q; want lower-cased username and email", u.Username, u.Email)
	}
	if u.PasswordHash != "hashed:correct horse" {
		t.Errorf("PasswordHash = %q", u.PasswordHash)
	}
	if u.Avatar != "http://m/videotube/image/upload/av.png" || u.CoverImage != "" {
		t.Errorf("Avatar = %q, CoverImage = %q", u.Avatar, u.CoverImage)
	}
	if len(f.strg.Uploaded) != 1 {
		t.Errorf("uploads = %v; want only the avatar", f.strg.Uploaded)
	}
	if in.Avatar.Exists() {
		t.Error("staged avatar still on disk")
	}
}

func TestRegister_ValidationFailsBeforeAnyUpload(t *testing.T) {
	f := newFixture()
	in := validRegistration(t)
	in.Email = "not-an-email"

	if _, err := f.svc.Register(context.Background(), in); !errors.Is(err, usecase.ErrValidation) {
		t.Fatalf("got %v; want ErrValidation", err)
	}
	if len(f.strg.Uploaded) != 0 || f.users.Created != nil {
		t.Error("no upload nor record expected")
	}
	if in.Avatar.Exists() {
		t.Error("staged avatar still on disk")
	}
}

func TestRegister_DuplicateRemovesUploads(t *testing.T) {
	f := newFixture()
	f.users.CreateErr = fmt.Errorf("%w: user with this email or username already exists", usecase.ErrConflict)
	in := validRegistration(t)
	in.CoverImage = stage(t, "cover.png")

	_, err := f.svc.Register(context.Background(), in)
	if !errors.Is(err, usecase.ErrConflict) {
		t.Fatalf("got %v; want ErrConflict", err)
	}
	if len(f.strg.Deleted) != 2 {
		t.Errorf("deleted = %v; want both images removed", f.strg.Deleted)
	}
}

func TestLogin(t *testing.T) {
	stored := &model.User{ID: userID, Username: "jodoe", PasswordHash: "hashed:pw"}

	tests := []struct {
		name       string
		in         port.LoginInput
		record     *model.User
		compareErr error
		wantErr    error
	}{
		{name: "by username", in: port.LoginInput{Username: "JoDoe", Password: "pw"}, record: stored},
		{name: "by email", in: port.LoginInput{Email: "jo@example.com", Password: "pw"}, record: stored},
		{name: "no identifier", in: port.LoginInput{Password: "pw"}, wantErr: usecase.ErrValidation},
		{name: "unknown user", in: port.LoginInput{Username: "ghost", Password: "pw"}, wantErr: usecase.ErrUnauthorized},
		{name: "wrong password", in: port.LoginInput{Username: "jodoe", Password: "nope"}, record: stored, compareErr: auth.ErrBadCredentials, wantErr: usecase.ErrUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.users.Record = tc.record
			f.hasher.CompareErr = tc.compareErr

			out, err := f.svc.Login(context.Background(), tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v; want %v", err, tc.wantErr)
			}
			if tc.wantErr != nil {
				if f.tokens.IssuedFor != uuid.Nil {
					t.Error("no token expected")
				}
				return
			}
			if out.AccessToken != "tok" || out.ExpiresAt != 1700000000 || out.User != tc.record {
				t.Errorf("unexpected output %+v", out)
			}
			if f.tokens.IssuedFor != userID {
				t.Errorf("token issued for %s; want %s", f.tokens.IssuedFor, userID)
			}
		})
	}
}

func TestCurrentUser(t *testing.T) {
	f := newFixture()
	if _, err := f.svc.CurrentUser(context.Background(), userID); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("got %v; want ErrNotFound", err)
	}
}
