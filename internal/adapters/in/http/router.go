package http

import (
	"net/http"
	"strings"

	"github.com/satheeshkumar89/fastfoodie-backend/api"
	"github.com/satheeshkumar89/fastfoodie-backend/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// publicRoutes need no token.
var publicRoutes = []string{"/health", "/metrics", "/openapi.yml", "/swagger/"}

// NewRouter wires the API, its middlewares and the operational endpoints.
func NewRouter(server *Server, jwtSecret []byte, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(Observe(logger))
	e.Use(Auth(jwtSecret, isPublic))

	e.GET("/health", func(c echo.Context) error {
		return ok(c, http.StatusOK, "Healthy", nil)
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/openapi.yml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.OpenAPI)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.yml")))

	servers.RegisterHandlers(e, server)
	return e
}

func isPublic(c echo.Context) bool {
	path := c.Request().URL.Path
	for _, p := range publicRoutes {
		if path == p || (strings.HasSuffix(p, "/") && strings.HasPrefix(path, p)) {
			return true
		}
	}
	return false
}
