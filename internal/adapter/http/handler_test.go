package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"backend-scaffold/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		AppName:  "backend-scaffold",
		AppEnv:   "test",
		Port:     "3000",
		DBDriver: "postgres",
	}
}

func TestHealth_ReturnsOKWithFreshUTCTimestamp(t *testing.T) {
	e := echo.New()
	h := NewHandler(testConfig(), time.Now())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	start := time.Now().UTC()

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	ct := rec.Header().Get(echo.HeaderContentType)
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var body HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v; raw=%s", err, rec.Body.String())
	}

	if body.Message != "Server is running!" {
		t.Errorf("message = %q", body.Message)
	}
	if body.Environment != "test" {
		t.Errorf("environment = %q, want test", body.Environment)
	}
	if body.Version != config.Version {
		t.Errorf("version = %q, want %q", body.Version, config.Version)
	}

	parsed, err := time.Parse(time.RFC3339, body.Timestamp)
	if err != nil {
		t.Fatalf("timestamp not RFC3339: %v (value=%q)", err, body.Timestamp)
	}
	if parsed.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", parsed.Location())
	}
	now := time.Now().UTC()
	if parsed.Before(start.Add(-2*time.Second)) || parsed.After(now.Add(2*time.Second)) {
		t.Fatalf("timestamp not within expected window: parsed=%v start=%v now=%v", parsed, start, now)
	}
}

func TestInfo_ReportsRuntimeIntrospection(t *testing.T) {
	e := echo.New()
	h := NewHandler(testConfig(), time.Now().Add(-2*time.Second))

	req := httptest.NewRequest(http.MethodGet, "/info", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Info(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body InfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v; raw=%s", err, rec.Body.String())
	}

	if body.AppName != "backend-scaffold" {
		t.Errorf("appName = %q", body.AppName)
	}
	if body.GoVersion != runtime.Version() {
		t.Errorf("goVersion = %q, want %q", body.GoVersion, runtime.Version())
	}
	if want := runtime.GOOS + "/" + runtime.GOARCH; body.Platform != want {
		t.Errorf("platform = %q, want %q", body.Platform, want)
	}
	if body.Uptime < 2 {
		t.Errorf("uptime = %v, want >= 2s", body.Uptime)
	}

	for name, v := range map[string]string{
		"rss":      body.MemoryUsage.RSS,
		"heapUsed": body.MemoryUsage.HeapUsed,
	} {
		if !strings.HasSuffix(v, " MB") {
			t.Errorf("%s = %q, want suffix \" MB\"", name, v)
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSuffix(v, " MB"), 64)
		if err != nil {
			t.Errorf("%s prefix not numeric: %v (value=%q)", name, err, v)
		}
		if n < 0 {
			t.Errorf("%s = %q, want non-negative", name, v)
		}
	}
}
