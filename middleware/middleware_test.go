package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dokan/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func wrappedHandler(called *bool) httprouter.Handle {
	return Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func signToken(t *testing.T) string {
	t.Helper()
	now := time.Now()
	claims := Claims{
		Username: "admin",
		UserID:   "admin",
		Role:     []string{"admin"},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	var called bool
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	wrappedHandler(&called)(rec, req, nil)

	if rec.Code != http.StatusUnauthorized || called {
		t.Fatalf("status = %d, handler called = %v", rec.Code, called)
	}
}

func TestAuthenticateRejectsForgedUpgradeHeaders(t *testing.T) {
	// upgrade headers must not open a side door past token validation
	var called bool
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	wrappedHandler(&called)(rec, req, nil)

	if rec.Code != http.StatusUnauthorized || called {
		t.Fatalf("status = %d, handler called = %v", rec.Code, called)
	}
}

func TestAuthenticateAcceptsValidToken(t *testing.T) {
	var called bool
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t))
	wrappedHandler(&called)(rec, req, nil)

	if rec.Code != http.StatusOK || !called {
		t.Fatalf("status = %d, handler called = %v", rec.Code, called)
	}
}

func TestAuthenticateRejectsBadFormat(t *testing.T) {
	var called bool
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", signToken(t)) // missing Bearer prefix
	wrappedHandler(&called)(rec, req, nil)

	if rec.Code != http.StatusUnauthorized || called {
		t.Fatalf("status = %d, handler called = %v", rec.Code, called)
	}
}
