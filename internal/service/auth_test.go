package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cardoctor/cardoctor-go/internal/crypto"
	"github.com/cardoctor/cardoctor-go/internal/model"
)

// Low bcrypt cost keeps the tests fast; cost is not under test here.
const testBcryptCost = 4

func newTestAuthService() (*AuthService, *memUserStore) {
	users := newMemUserStore()
	return NewAuthService(users, "test-secret", time.Hour, testBcryptCost), users
}

func TestRegisterEmptyEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "",
		Password: "password123",
	})

	if !errors.Is(err, ErrEmailRequired) {
		t.Errorf("expected ErrEmailRequired, got %v", err)
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "not-an-email",
		Password: "password123",
	})

	if !errors.Is(err, ErrEmailInvalid) {
		t.Errorf("expected ErrEmailInvalid, got %v", err)
	}
}

func TestRegisterEmptyPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "test@example.com",
		Password: "",
	})

	if !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "test@example.com",
		Password: "12345",
	})

	if !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestRegisterDerivesFullName(t *testing.T) {
	svc, _ := newTestAuthService()

	resp, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	if resp.User.FullName != "alice" {
		t.Errorf("FullName = %q, want %q", resp.User.FullName, "alice")
	}
	if resp.Token == "" {
		t.Error("Register() returned empty token")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	req := model.RegisterRequest{Email: "alice@example.com", Password: "secret1"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register() unexpected error: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second Register() expected ErrEmailTaken, got %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret1",
		FullName: "Alice",
	}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	claims, err := crypto.ValidateToken(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Errorf("token UserID = %q, want %q", claims.UserID, resp.User.ID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("token Email = %q, want %q", claims.Email, "alice@example.com")
	}
}

// Unknown email and wrong password must be indistinguishable so accounts
// cannot be enumerated through the login endpoint.
func TestLoginFailureUndifferentiated(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret1",
	}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	_, unknownErr := svc.Login(context.Background(), model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret1",
	})
	_, wrongErr := svc.Login(context.Background(), model.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("login failures differ: %q vs %q", unknownErr, wrongErr)
	}
}

func TestRegisterDoesNotExposeHash(t *testing.T) {
	svc, users := newTestAuthService()

	resp, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	stored, err := users.GetByID(context.Background(), resp.User.ID)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "secret1" {
		t.Error("stored password hash missing or unhashed")
	}
}
