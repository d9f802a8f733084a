package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/resenia/resenia-go/internal/crypto"
)

func authTestHandler(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := EmailFromContext(r.Context())
		if !ok {
			t.Error("EmailFromContext() not set on authenticated request")
		}
		gotEmail = email
		w.WriteHeader(http.StatusOK)
	})
	return JWTAuth("test-secret", "HS256")(next), &gotEmail
}

func doAuthRequest(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/reviews", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMissingHeader(t *testing.T) {
	h, _ := authTestHandler(t)

	rec := doAuthRequest(h, "")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthWrongScheme(t *testing.T) {
	h, _ := authTestHandler(t)

	rec := doAuthRequest(h, "Basic dXNlcjpwYXNz")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	h, _ := authTestHandler(t)

	rec := doAuthRequest(h, "Bearer garbage")
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	h, _ := authTestHandler(t)

	token, err := crypto.GenerateToken("a@x.com", "test-secret", "HS256", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	// Same status as any other auth failure, different message.
	rec := doAuthRequest(h, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	h, gotEmail := authTestHandler(t)

	token, err := crypto.GenerateToken("a@x.com", "test-secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	rec := doAuthRequest(h, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if *gotEmail != "a@x.com" {
		t.Errorf("context email = %q, want %q", *gotEmail, "a@x.com")
	}
}
