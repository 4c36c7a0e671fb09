package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/premium-auto/showroom-api/internal/dto"
)

// ErrorHandler renders every error echo surfaces itself (unmatched routes,
// panics caught by Recover, stray HTTPErrors) as the standard error envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if code == http.StatusNotFound {
		msg = "Route not found"
	}

	_ = c.JSON(code, dto.Error(msg))
}
