package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		allowed     []string
		origin      string
		method      string
		wantStatus  int
		wantOrigin  string
		nextReached bool
	}{
		{
			name:        "wildcard allows any origin",
			allowed:     []string{"*"},
			origin:      "http://localhost:5173",
			method:      http.MethodPost,
			wantStatus:  http.StatusOK,
			wantOrigin:  "*",
			nextReached: true,
		},
		{
			name:       "preflight short-circuits",
			allowed:    []string{"*"},
			origin:     "http://localhost:5173",
			method:     http.MethodOptions,
			wantStatus: http.StatusNoContent,
			wantOrigin: "*",
		},
		{
			name:        "explicit origin echoed back",
			allowed:     []string{"https://app.example.com"},
			origin:      "https://app.example.com",
			method:      http.MethodGet,
			wantStatus:  http.StatusOK,
			wantOrigin:  "https://app.example.com",
			nextReached: true,
		},
		{
			name:        "unknown origin gets no allow header",
			allowed:     []string{"https://app.example.com"},
			origin:      "https://evil.example.com",
			method:      http.MethodGet,
			wantStatus:  http.StatusOK,
			wantOrigin:  "",
			nextReached: true,
		},
		{
			name:        "no origin header passes through untouched",
			allowed:     []string{"*"},
			origin:      "",
			method:      http.MethodGet,
			wantStatus:  http.StatusOK,
			wantOrigin:  "",
			nextReached: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			handler := CORS(tt.allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				next.ServeHTTP(w, r)
			}))

			req := httptest.NewRequest(tt.method, "/api/v1/clean", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if reached != tt.nextReached {
				t.Errorf("next reached = %v, want %v", reached, tt.nextReached)
			}
		})
	}
}
