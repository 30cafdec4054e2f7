package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fittrack/apiserver/internal/auth"
)

func newTestCodec(t *testing.T) *auth.Codec {
	t.Helper()
	codec, err := auth.NewCodec("handler-test-secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return codec
}

func protectedEcho(t *testing.T, codec *auth.Codec) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r.Context())
		if err != nil {
			t.Errorf("user id missing from context: %v", err)
		}
		writeJSON(w, http.StatusOK, map[string]int{"user_id": userID})
	})
	return RequireAuth(codec)(next)
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	codec := newTestCodec(t)
	pair, err := codec.IssuePair(7)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()

	protectedEcho(t, codec).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestRequireAuthRejections(t *testing.T) {
	codec := newTestCodec(t)

	foreign, err := auth.NewCodec("some-other-secret", "HS256", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	foreignPair, err := foreign.IssuePair(7)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc123"},
		{name: "empty token", header: "Bearer "},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "foreign signature", header: "Bearer " + foreignPair.AccessToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler := RequireAuth(codec)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Error("handler must not be reached")
			}))
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestRequireAuthCaseInsensitiveScheme(t *testing.T) {
	codec := newTestCodec(t)
	pair, err := codec.IssuePair(3)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+pair.AccessToken)
	rec := httptest.NewRecorder()

	protectedEcho(t, codec).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
