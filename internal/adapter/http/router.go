package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RegisterRoutes wires the global middlewares, the fixed route table and the
// fallback error handler onto e.
func RegisterRoutes(e *echo.Echo, h *Handler, p *ProbeHandler) {
	e.Use(middleware.CORS(), middleware.Logger(), middleware.Recover())
	e.HTTPErrorHandler = errorHandler

	e.GET("/", h.Health)
	e.GET("/info", h.Info)
	e.GET("/db-test", p.DBTest)
	e.GET("/cache-test", p.CacheTest)

	e.GET("/api-docs", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html")
	})
	e.GET("/api-docs/*", echoSwagger.WrapHandler)
	e.GET("/api-docs.json", apiDocsJSON)
}

// apiDocsJSON godoc
// @Summary      Raw OpenAPI document
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api-docs.json [get]
func apiDocsJSON(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, []byte(doc))
}

// errorHandler flattens every failure to one of the two contract shapes:
// unmatched routes (including wrong methods on known paths) get the 404
// shape, everything else gets the generic 500 shape.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && (he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed) {
		_ = c.JSON(http.StatusNotFound, ErrorResponse{
			Error:  "Route not found",
			Path:   c.Request().URL.Path,
			Method: c.Request().Method,
		})
		return
	}

	msg := err.Error()
	if errors.As(err, &he) {
		msg = fmt.Sprintf("%v", he.Message)
	}

	c.Logger().Error(err)
	_ = c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal Server Error",
		Message: msg,
	})
}
