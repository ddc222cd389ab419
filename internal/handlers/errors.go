package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/SscSPs/asset_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal Server Error"

var errorStatuses = []struct {
	sentinel error
	status   int
}{
	{apperrors.ErrValidation, http.StatusBadRequest},
	{apperrors.ErrDuplicate, http.StatusBadRequest},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized},
	{apperrors.ErrForbidden, http.StatusForbidden},
	{apperrors.ErrNotFound, http.StatusNotFound},
	{apperrors.ErrConflict, http.StatusConflict},
	{apperrors.ErrInsufficientInventory, http.StatusConflict},
}

// respondError maps err onto a status and a client-safe message. Anything
// not tagged with an apperrors sentinel is a 500 whose detail only reaches the log.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		logger.Warn("Request failed", slog.Int("status", appErr.Code), slog.String("error", err.Error()))
		c.JSON(appErr.Code, dto.ErrorResponse{Success: false, Message: appErr.Message})
		return
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.sentinel) {
			logger.Warn("Request failed", slog.Int("status", e.status), slog.String("error", err.Error()))
			c.JSON(e.status, dto.ErrorResponse{Success: false, Message: clientMessage(err, e.sentinel)})
			return
		}
	}

	logger.Error("Request failed", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Message: internalErrorMessage})
}

// clientMessage drops everything up to and including the sentinel's text, so
// "validation error: Unknown package" becomes "Unknown package".
func clientMessage(err error, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		if rest := msg[i+len(prefix):]; rest != "" {
			return rest
		}
	}
	return sentinel.Error()
}

// badRequest answers a binding failure.
func badRequest(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Message: "Invalid request: " + err.Error()})
}

// callerEmail returns the verified caller. Routes using it sit behind VerifyIdentity.
func callerEmail(c *gin.Context) (string, bool) {
	email, ok := middleware.GetCallerEmailFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Caller email not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Success: false, Message: "unauthorized access"})
	}
	return email, ok
}

// requireSelf rejects callers asking for another person's records.
func requireSelf(c *gin.Context, caller, target string) bool {
	if strings.EqualFold(caller, target) {
		return true
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Caller asked for another account's records", slog.String("target_email", target))
	c.JSON(http.StatusForbidden, dto.ErrorResponse{Success: false, Message: "forbidden access"})
	return false
}
