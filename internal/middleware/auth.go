package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/asset_management_app/internal/core/ports/services"
	"github.com/SscSPs/asset_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// VerifyIdentity creates a Gin middleware handler that validates the bearer
// credential with verifier and stores the caller email in the request context.
func VerifyIdentity(verifier gateways.IdentityVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			abortWithMessage(c, http.StatusUnauthorized, "unauthorized access")
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			abortWithMessage(c, http.StatusUnauthorized, "unauthorized access")
			return
		}

		identity, err := verifier.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			abortWithMessage(c, http.StatusUnauthorized, "unauthorized access")
			return
		}

		enrichedLogger := logger.With(slog.String("caller_email", identity.Email))
		ctx := WithCallerEmail(c.Request.Context(), identity.Email)
		c.Request = c.Request.WithContext(WithLogger(ctx, enrichedLogger))

		c.Next()
	}
}

// RequireRole creates a Gin middleware handler that only lets callers holding
// role through. It must run after VerifyIdentity.
func RequireRole(authSvc portssvc.AuthSvcFacade, role domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		email, ok := GetCallerEmailFromContext(c)
		if !ok {
			logger.Error("RequireRole used without VerifyIdentity")
			abortWithMessage(c, http.StatusUnauthorized, "unauthorized access")
			return
		}

		if err := authSvc.AuthorizeRole(c.Request.Context(), email, role); err != nil {
			if errors.Is(err, apperrors.ErrForbidden) {
				logger.Warn("Role check failed", slog.String("required_role", string(role)))
				abortWithMessage(c, http.StatusForbidden, "forbidden access")
				return
			}
			logger.Error("Role check errored", slog.String("error", err.Error()))
			abortWithMessage(c, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		c.Next()
	}
}

func abortWithMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Success: false, Message: message})
}
