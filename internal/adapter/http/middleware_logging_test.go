package adapthttp

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dailytrack/internal/adapter/memory"
	"dailytrack/internal/app"
)

func TestLoggingMiddleware(t *testing.T) {
	s := &Server{}
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("OK"))
	})

	handler := s.loggingMiddleware(nextHandler)

	var buf bytes.Buffer
	originalOutput := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(originalOutput)

	req := httptest.NewRequest("GET", "/test-path", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status %d, got %d", http.StatusTeapot, w.Code)
	}
	if got := w.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("Expected request id to be echoed, got %q", got)
	}

	logOutput := buf.String()
	for _, want := range []string{"req-123", "GET", "/test-path", "418"} {
		if !strings.Contains(logOutput, want) {
			t.Errorf("Log output missing %q. Got: %s", want, logOutput)
		}
	}
}

func TestAuthMiddlewareRemoteUser(t *testing.T) {
	db := memory.New()
	if _, err := db.Create(context.Background(), "owner", ""); err != nil {
		t.Fatal(err)
	}
	authSvc := app.NewAuthService(db, db.NewSessionRepo(), app.DefaultSessionTTL)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u := userFromContext(r); u != nil {
			seen = u.Username
		}
	})

	tests := []struct {
		name       string
		trust      bool
		header     string
		wantStatus int
		wantUser   string
	}{
		{"trusted known user", true, "owner", http.StatusOK, "owner"},
		{"trusted stranger rejected once owner exists", true, "guest", http.StatusUnauthorized, ""},
		{"trusted empty header", true, "", http.StatusUnauthorized, ""},
		{"untrusted header ignored", false, "owner", http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			s := &Server{authSvc: authSvc, trustRemoteUser: tt.trust}
			req := httptest.NewRequest(http.MethodGet, "/entries", nil)
			req.Header.Set("Remote-User", tt.header)
			w := httptest.NewRecorder()

			s.authMiddleware(next).ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if seen != tt.wantUser {
				t.Fatalf("expected user %q, got %q", tt.wantUser, seen)
			}
		})
	}
}
