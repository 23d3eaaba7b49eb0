package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

// guardServer builds a server with just enough wiring to exercise the access
// guard; no database is involved.
func guardServer() *server {
	return &server{
		cfg:    DefaultConfig(),
		tokens: newTokenService("guard-secret", time.Hour),
	}
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()
	s := guardServer()
	valid, err := s.tokens.issue(9, "alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	expired, err := newTokenService("guard-secret", -time.Hour).issue(9, "alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"scheme without token", "Bearer", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
		{"lowercase scheme", "bearer " + valid, http.StatusOK},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			handler := s.requireAuth(func(c echo.Context) error {
				caller := identity(c)
				if caller == nil || caller.UserID != 9 || caller.Username != "alice" {
					t.Errorf("handler saw wrong identity: %+v", caller)
				}
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			if test.header != "" {
				req.Header.Set(echo.HeaderAuthorization, test.header)
			}
			rec := httptest.NewRecorder()
			if err := handler(e.NewContext(req, rec)); err != nil {
				t.Fatalf("handler: %v", err)
			}
			if rec.Code != test.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, test.wantStatus)
			}
		})
	}
}

func TestCanIsAuthenticationOnly(t *testing.T) {
	t.Parallel()
	s := guardServer()
	token, err := s.tokens.issue(3, "bob")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Any permission name passes for an authenticated caller; none passes
	// without a token.
	for _, permission := range []string{"view_tasks", "made_up_permission"} {
		handler := s.can(permission)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		if err := handler(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("permission %q: got %d, want 200", permission, rec.Code)
		}

		req = httptest.NewRequest(http.MethodGet, "/", nil)
		rec = httptest.NewRecorder()
		if err := handler(e.NewContext(req, rec)); err != nil {
			t.Fatalf("handler: %v", err)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("permission %q without token: got %d, want 401", permission, rec.Code)
		}
	}
}
