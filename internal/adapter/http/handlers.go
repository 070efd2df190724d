package http

import (
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"backend-scaffold/internal/config"
	"backend-scaffold/pkg/bytefmt"
)

type Handler struct {
	cfg   *config.Config
	start time.Time
}

// NewHandler takes the immutable config and the process start time so the
// handlers stay testable without touching process globals.
func NewHandler(cfg *config.Config, start time.Time) *Handler {
	return &Handler{cfg: cfg, start: start}
}

// Health godoc
// @Summary      Health check
// @Description  Confirms the service process is running
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       / [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Message:     "Server is running!",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Environment: h.cfg.AppEnv,
		Version:     config.Version,
	})
}

// Info godoc
// @Summary      System info
// @Description  Runtime introspection: version, platform, uptime and memory usage
// @Tags         system
// @Produce      json
// @Success      200 {object} InfoResponse
// @Router       /info [get]
func (h *Handler) Info(c echo.Context) error {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return c.JSON(http.StatusOK, InfoResponse{
		AppName:   h.cfg.AppName,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Uptime:    time.Since(h.start).Seconds(),
		MemoryUsage: MemoryUsage{
			RSS:      bytefmt.MB(ms.Sys),
			HeapUsed: bytefmt.MB(ms.HeapAlloc),
		},
	})
}
