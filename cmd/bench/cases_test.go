package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeAPI answers like a healthy travel API.
func fakeAPI() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-ID", r.Header.Get("X-Request-ID"))
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "AI-Powered Travel Agent API is running"})
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-ID", r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte("OK"))
	})
	mux.HandleFunc("POST /api/suggest-by-image", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Error processing image: cannot decode image"})
	})
	mux.HandleFunc("POST /api/weather", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if strings.TrimSpace(req["destination"]) == "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"detail":"destination is required"}`))
			return
		}
		_, _ = w.Write([]byte(`{"weather_data":{"location":"Paris","temperature":21,"unit":"celsius"},"description":"Mild."}`))
	})
	mux.HandleFunc("POST /api/suggest-by-location", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["location"] == nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"detail":"location is required"}`))
			return
		}
		_, _ = w.Write([]byte(`{"destinations":[{"name":"Nara","attractions":["a","b","c"]}]}`))
	})
	return mux
}

func TestRunAllAgainstHealthyAPI(t *testing.T) {
	srv := httptest.NewServer(fakeAPI())
	defer srv.Close()

	r := NewRunner(Config{BaseURL: srv.URL, Location: "Kyoto", Destination: "Paris", Concurrency: 2, Duration: 100 * time.Millisecond})
	results := r.RunAll(context.Background())

	require.Len(t, results, len(r.cases()))
	for _, res := range results {
		require.Equal(t, statusPass, res.Status, "%s: %s", res.Name, res.Note)
	}
}

func TestRunAllSkipsModelChecks(t *testing.T) {
	srv := httptest.NewServer(fakeAPI())
	defer srv.Close()

	r := NewRunner(Config{BaseURL: srv.URL, SkipModel: true, Concurrency: 1, Duration: 50 * time.Millisecond})
	skipped := 0
	for _, res := range r.RunAll(context.Background()) {
		if res.Status == statusSkip {
			skipped++
		}
	}
	require.Equal(t, 2, skipped)
}

func TestHTTPCaseWrongStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	tc := httpCase("down", http.MethodGet, srv.URL, nil, http.StatusOK, false, nil)
	res := tc.Run(context.Background(), NewRunner(Config{}))
	require.Equal(t, statusFail, res.Status)
	require.Contains(t, res.Note, "status=502")
}

func TestCheckDestinations(t *testing.T) {
	require.Empty(t, checkDestinations([]byte(`{"destinations":[{"name":"Uji"}]}`)))
	require.Equal(t, "no destinations", checkDestinations([]byte(`{"destinations":[]}`)))
	require.Equal(t, "destination without name", checkDestinations([]byte(`{"destinations":[{"name":""}]}`)))
	require.Contains(t, checkDestinations([]byte(`nope`)), "invalid json")
}
