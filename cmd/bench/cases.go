// README: Check cases for the travel API; liveness, model-backed endpoints, error paths and a load run.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	statusPass = "PASS"
	statusFail = "FAIL"
	statusSkip = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name  string
	Model bool
	Run   func(ctx context.Context, r *Runner) Result
}

// bodyCheck inspects a response body and returns a failure note, or "".
type bodyCheck func(body []byte) string

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 90 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		var res Result
		if tc.Model && r.cfg.SkipModel {
			res = Result{Status: statusSkip, Note: "model checks disabled"}
		} else {
			res = tc.Run(ctx, r)
		}
		res.Name = tc.Name
		results = append(results, res)
		fmt.Printf("%-7s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}
	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	return []TestCase{
		httpCase("Liveness: GET /", http.MethodGet, base+"/", nil, http.StatusOK, false,
			expectField("message", "AI-Powered Travel Agent API is running")),
		httpCase("Liveness: GET /health", http.MethodGet, base+"/health", nil, http.StatusOK, false,
			func(body []byte) string {
				if strings.TrimSpace(string(body)) != "OK" {
					return fmt.Sprintf("body=%q", body)
				}
				return ""
			}),
		httpCase("Validation: suggest-by-location without location", http.MethodPost, base+"/api/suggest-by-location",
			map[string]any{"preferences": []string{"beach"}}, http.StatusUnprocessableEntity, false, nil),
		httpCase("Validation: weather without destination", http.MethodPost, base+"/api/weather",
			map[string]any{}, http.StatusUnprocessableEntity, false, nil),
		httpCase("Weather: "+r.cfg.Destination, http.MethodPost, base+"/api/weather",
			map[string]any{"destination": r.cfg.Destination}, http.StatusOK, true, checkWeather),
		httpCase("Suggestions: "+r.cfg.Location, http.MethodPost, base+"/api/suggest-by-location",
			map[string]any{"location": r.cfg.Location, "preferences": []string{"nature", "budget"}}, http.StatusOK, true, checkDestinations),
		{
			Name: "Image: non-image upload rejected",
			Run: func(ctx context.Context, r *Runner) Result {
				return uploadCase(ctx, r, base+"/api/suggest-by-image", []byte("this is not an image"))
			},
		},
		{
			Name: "Tracing: X-Request-ID echoed",
			Run: func(ctx context.Context, r *Runner) Result {
				return requestIDCase(ctx, r, base+"/health")
			},
		},
		{
			Name: "Perf: GET / load",
			Run: func(ctx context.Context, r *Runner) Result {
				return perfLoad(ctx, r, base+"/")
			},
		},
	}
}

func httpCase(name, method, url string, body any, want int, model bool, check bodyCheck) TestCase {
	return TestCase{
		Name:  name,
		Model: model,
		Run: func(ctx context.Context, r *Runner) Result {
			var reader io.Reader
			if body != nil {
				b, _ := json.Marshal(body)
				reader = bytes.NewReader(b)
			}
			req, err := http.NewRequestWithContext(ctx, method, url, reader)
			if err != nil {
				return Result{Status: statusFail, Note: err.Error()}
			}
			if body != nil {
				req.Header.Set("Content-Type", "application/json")
			}
			start := time.Now()
			resp, err := r.httpc.Do(req)
			if err != nil {
				return Result{Status: statusFail, Note: err.Error()}
			}
			payload, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			latency := time.Since(start)

			if resp.StatusCode != want {
				return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("status=%d body=%s", resp.StatusCode, truncate(payload))}
			}
			if check != nil {
				if note := check(payload); note != "" {
					return Result{Status: statusFail, Latency: latency, Note: note}
				}
			}
			return Result{Status: statusPass, Latency: latency, Note: fmt.Sprintf("status=%d", resp.StatusCode)}
		},
	}
}

func expectField(key, want string) bodyCheck {
	return func(body []byte) string {
		var m map[string]any
		if err := json.Unmarshal(body, &m); err != nil {
			return "invalid json: " + err.Error()
		}
		if got, _ := m[key].(string); got != want {
			return fmt.Sprintf("%s=%q", key, got)
		}
		return ""
	}
}

func checkWeather(body []byte) string {
	var report struct {
		WeatherData struct {
			Location    string  `json:"location"`
			Temperature float64 `json:"temperature"`
			Unit        string  `json:"unit"`
		} `json:"weather_data"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body, &report); err != nil {
		return "invalid json: " + err.Error()
	}
	if report.WeatherData.Location == "" || report.Description == "" {
		return "missing location or description"
	}
	return ""
}

func checkDestinations(body []byte) string {
	var resp struct {
		Destinations []struct {
			Name        string   `json:"name"`
			Attractions []string `json:"attractions"`
		} `json:"destinations"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "invalid json: " + err.Error()
	}
	if len(resp.Destinations) == 0 {
		return "no destinations"
	}
	for _, d := range resp.Destinations {
		if d.Name == "" {
			return "destination without name"
		}
	}
	return ""
}

func uploadCase(ctx context.Context, r *Runner, url string, data []byte) Result {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "notes.txt")
	if err != nil {
		return Result{Status: statusFail, Note: err.Error()}
	}
	_, _ = part.Write(data)
	_ = mw.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return Result{Status: statusFail, Note: err.Error()}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	start := time.Now()
	resp, err := r.httpc.Do(req)
	if err != nil {
		return Result{Status: statusFail, Note: err.Error()}
	}
	payload, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	latency := time.Since(start)

	var body struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(payload, &body)
	if resp.StatusCode != http.StatusInternalServerError || !strings.HasPrefix(body.Detail, "Error processing image:") {
		return Result{Status: statusFail, Latency: latency, Note: fmt.Sprintf("status=%d body=%s", resp.StatusCode, truncate(payload))}
	}
	return Result{Status: statusPass, Latency: latency, Note: body.Detail}
}

func requestIDCase(ctx context.Context, r *Runner, url string) Result {
	id := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{Status: statusFail, Note: err.Error()}
	}
	req.Header.Set("X-Request-ID", id)
	resp, err := r.httpc.Do(req)
	if err != nil {
		return Result{Status: statusFail, Note: err.Error()}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if got := resp.Header.Get("X-Request-ID"); got != id {
		return Result{Status: statusFail, Note: fmt.Sprintf("got %q", got)}
	}
	return Result{Status: statusPass}
}

func perfLoad(ctx context.Context, r *Runner, url string) Result {
	end := time.Now().Add(r.cfg.Duration)
	var count, errCount atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < r.cfg.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for time.Now().Before(end) && ctx.Err() == nil {
				req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
				resp, err := r.httpc.Do(req)
				if err != nil {
					errCount.Add(1)
					continue
				}
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					errCount.Add(1)
					continue
				}
				count.Add(1)
			}
		}()
	}
	wg.Wait()

	if count.Load() == 0 {
		return Result{Status: statusFail, Note: "no requests completed"}
	}
	rps := float64(count.Load()) / r.cfg.Duration.Seconds()
	return Result{Status: statusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount.Load())}
}

func truncate(b []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(b))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
