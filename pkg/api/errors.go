package api

import (
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/pkg/execerr"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	if ent.IsNotFound(err) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	switch execerr.KindOf(err) {
	case execerr.KindInputInvalid, execerr.KindParameterInvalid:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case execerr.KindNotFound:
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	case execerr.KindConflict:
		return echo.NewHTTPError(http.StatusConflict, "conflicting state")
	case execerr.KindPermissionDenied:
		return echo.NewHTTPError(http.StatusForbidden, "not permitted")
	case execerr.KindUpstreamUnavailable, execerr.KindTimeout:
		return echo.NewHTTPError(http.StatusBadGateway, "upstream unavailable")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
