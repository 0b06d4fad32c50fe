package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cardoctor/cardoctor-go/internal/crypto"
	"github.com/cardoctor/cardoctor-go/internal/model"
)

func newTestUserService(t *testing.T) (*UserService, *memUserStore, string) {
	t.Helper()
	users := newMemUserStore()
	authSvc := NewAuthService(users, "test-secret", time.Hour, testBcryptCost)

	resp, err := authSvc.Register(context.Background(), model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret1",
		FullName: "Alice",
	})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	return NewUserService(users, testBcryptCost), users, resp.User.ID
}

func TestGetProfile(t *testing.T) {
	svc, _, userID := newTestUserService(t)

	user, err := svc.GetProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetProfile() unexpected error: %v", err)
	}
	if user.Email != "alice@example.com" || user.FullName != "Alice" {
		t.Errorf("GetProfile() = %+v", user)
	}
}

func TestGetProfileUnknownUser(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.GetProfile(context.Background(), "no-such-user")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetProfile() error = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _, userID := newTestUserService(t)
	pic := "https://cdn.example.com/alice.png"

	user, err := svc.UpdateProfile(context.Background(), userID, model.UpdateProfileRequest{
		ProfilePic: &pic,
	})
	if err != nil {
		t.Fatalf("UpdateProfile() unexpected error: %v", err)
	}

	if user.ProfilePic != pic {
		t.Errorf("ProfilePic = %q, want %q", user.ProfilePic, pic)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("Email changed without being in the patch: %q", user.Email)
	}
}

func TestUpdateProfileInvalidEmail(t *testing.T) {
	svc, _, userID := newTestUserService(t)
	bad := "not-an-email"

	_, err := svc.UpdateProfile(context.Background(), userID, model.UpdateProfileRequest{
		Email: &bad,
	})
	if !errors.Is(err, ErrEmailInvalid) {
		t.Errorf("UpdateProfile() error = %v, want ErrEmailInvalid", err)
	}
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	svc, users, userID := newTestUserService(t)

	authSvc := NewAuthService(users, "test-secret", time.Hour, testBcryptCost)
	if _, err := authSvc.Register(context.Background(), model.RegisterRequest{
		Email:    "bob@example.com",
		Password: "secret1",
	}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	taken := "bob@example.com"
	_, err := svc.UpdateProfile(context.Background(), userID, model.UpdateProfileRequest{
		Email: &taken,
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("UpdateProfile() error = %v, want ErrEmailTaken", err)
	}
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc, _, userID := newTestUserService(t)

	err := svc.ChangePassword(context.Background(), userID, model.ChangePasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "newsecret",
	})
	if !errors.Is(err, ErrInvalidCurrentPassword) {
		t.Errorf("ChangePassword() error = %v, want ErrInvalidCurrentPassword", err)
	}
}

func TestChangePasswordMissingFields(t *testing.T) {
	svc, _, userID := newTestUserService(t)

	err := svc.ChangePassword(context.Background(), userID, model.ChangePasswordRequest{
		CurrentPassword: "",
		NewPassword:     "newsecret",
	})
	if !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("ChangePassword() error = %v, want ErrPasswordRequired", err)
	}
}

func TestChangePasswordShortNew(t *testing.T) {
	svc, _, userID := newTestUserService(t)

	err := svc.ChangePassword(context.Background(), userID, model.ChangePasswordRequest{
		CurrentPassword: "secret1",
		NewPassword:     "12345",
	})
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("ChangePassword() error = %v, want ErrPasswordTooShort", err)
	}
}

func TestChangePasswordSuccess(t *testing.T) {
	svc, users, userID := newTestUserService(t)

	if err := svc.ChangePassword(context.Background(), userID, model.ChangePasswordRequest{
		CurrentPassword: "secret1",
		NewPassword:     "newsecret",
	}); err != nil {
		t.Fatalf("ChangePassword() unexpected error: %v", err)
	}

	stored, err := users.GetByID(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if !crypto.VerifyPassword("newsecret", stored.PasswordHash) {
		t.Error("new password does not verify against stored hash")
	}
	if crypto.VerifyPassword("secret1", stored.PasswordHash) {
		t.Error("old password still verifies against stored hash")
	}
}
