package middleware

import (
	"time"

	"github.com/AnushkaAn/Online-Auction-Platform/pkg/logger"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// CORS allows any origin; the API carries no cookies or tokens.
func CORS() echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.HEAD, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderXRequestedWith,
		},
		MaxAge: 86400,
	})
}

// RequestLogger logs one line per request through log, tagged with the
// request id set by echo's RequestID middleware.
func RequestLogger(log logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			log.Info("Request handled",
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"method", req.Method,
				"path", req.URL.Path,
				"remote_addr", c.RealIP(),
				"status", c.Response().Status,
				"latency", time.Since(start).String())
			return nil
		}
	}
}

// Setup installs the standard middleware chain on e.
func Setup(e *echo.Echo, log logger.Logger) {
	e.Use(echomw.RequestID())
	e.Use(RequestLogger(log))
	e.Use(echomw.Recover())
	e.Use(CORS())
}
