package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	probedomain "backend-scaffold/internal/domain/probe"
	probeuc "backend-scaffold/internal/usecase/probe"
)

type ProbeHandler struct {
	db    *probeuc.Usecase
	cache probedomain.Cache
}

func NewProbeHandler(db *probeuc.Usecase, cache probedomain.Cache) *ProbeHandler {
	return &ProbeHandler{db: db, cache: cache}
}

// DBTest godoc
// @Summary      Database connectivity probe
// @Description  Pings the database and counts the users and posts tables
// @Tags         probes
// @Produce      json
// @Success      200 {object} probe.ResultDTO
// @Failure      500 {object} ErrorResponse
// @Router       /db-test [get]
func (h *ProbeHandler) DBTest(c echo.Context) error {
	dto, err := h.db.Check(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Database connection failed",
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, dto)
}

// CacheTest godoc
// @Summary      Cache connectivity probe
// @Description  Pings the Redis cache
// @Tags         probes
// @Produce      json
// @Success      200 {object} CacheProbeResponse
// @Failure      500 {object} ErrorResponse
// @Router       /cache-test [get]
func (h *ProbeHandler) CacheTest(c echo.Context) error {
	if err := h.cache.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Cache connection failed",
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, CacheProbeResponse{
		Message:   "Cache connection successful",
		Cache:     "Redis",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
