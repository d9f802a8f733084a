package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/resenia/resenia-go/internal/crypto"
	"github.com/resenia/resenia-go/internal/model"
	"github.com/resenia/resenia-go/internal/repository"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := repository.NewDB("file:" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB() unexpected error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := repository.Migrate(context.Background(), db); err != nil {
		t.Fatalf("Migrate() unexpected error: %v", err)
	}

	return NewAuthService(repository.NewUserRepository(db), "test-secret", "HS256", time.Hour)
}

func TestRegisterInvalidEmail(t *testing.T) {
	svc := newTestAuthService(t)

	for _, email := range []string{"", "not-an-email", "a@", "Name <a@x.com>"} {
		err := svc.Register(context.Background(), model.RegisterRequest{
			Email:    email,
			Password: "secret1",
		})
		if !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("Register(%q) error = %v, want ErrInvalidEmail", email, err)
		}
	}
}

func TestRegisterPasswordTooShort(t *testing.T) {
	svc := newTestAuthService(t)

	err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "a@x.com",
		Password: "short",
	})
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("Register() error = %v, want ErrPasswordTooShort", err)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, model.RegisterRequest{Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	token, err := svc.Login(ctx, "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login() unexpected error: %v", err)
	}

	subject, err := crypto.ValidateToken(token, "test-secret", "HS256")
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if subject != "a@x.com" {
		t.Errorf("token subject = %q, want %q", subject, "a@x.com")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, model.RegisterRequest{Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	err := svc.Register(ctx, model.RegisterRequest{Email: "a@x.com", Password: "other-password"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Register() duplicate error = %v, want ErrEmailTaken", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	if err := svc.Register(ctx, model.RegisterRequest{Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	_, err := svc.Login(ctx, "a@x.com", "wrong-password")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(t)

	// Same error as a wrong password: the caller cannot tell which
	// factor failed.
	_, err := svc.Login(context.Background(), "nobody@x.com", "secret1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}
