package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/genpass/genpass-go/internal/crypto"
)

func okHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTAuth(t *testing.T) {
	secret := "test-secret"
	valid, err := crypto.GenerateToken("ci-runner", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token", header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var subject string
			h := JWTAuth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				subject, _ = SubjectFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && subject != "ci-runner" {
				t.Errorf("subject = %q, want %q", subject, "ci-runner")
			}
		})
	}
}

func TestJWTAuthDisabledWithoutSecret(t *testing.T) {
	h := JWTAuth("")(okHandler(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := RateLimit(ctx, 0.001, 2)(okHandler(t))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := send("10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d status = %d, want %d", i, code, http.StatusOK)
		}
	}
	if code := send("10.0.0.1:5678"); code != http.StatusTooManyRequests {
		t.Errorf("burst exceeded status = %d, want %d", code, http.StatusTooManyRequests)
	}
	if code := send("10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("other client status = %d, want %d", code, http.StatusOK)
	}
}

func TestRateLimiterEvict(t *testing.T) {
	rl := newIPRateLimiter(1, 1)
	start := time.Now()
	rl.getLimiter("10.0.0.1", start)
	rl.getLimiter("10.0.0.2", start.Add(visitorTTL))

	rl.evict(start.Add(visitorTTL + time.Second))

	if _, ok := rl.visitors["10.0.0.1"]; ok {
		t.Error("idle visitor was not evicted")
	}
	if _, ok := rl.visitors["10.0.0.2"]; !ok {
		t.Error("recent visitor was evicted")
	}
}

func TestLogger(t *testing.T) {
	h := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}
