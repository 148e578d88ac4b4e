package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/finacc/internal/apperrors"
	"github.com/SscSPs/finacc/internal/dto"
	"github.com/SscSPs/finacc/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statusForError maps an error kind to its HTTP status.
func statusForError(err error) int {
	switch apperrors.Kind(err) {
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindDuplicate, apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindInsufficientFunds:
		return http.StatusUnprocessableEntity
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as a dto.ErrorResponse. Internal errors are logged in full
// and replaced by failMsg in the response.
func respondError(c *gin.Context, logger *slog.Logger, err error, failMsg string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(failMsg, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: failMsg, Code: apperrors.KindInternal})
		return
	}
	logger.Warn(failMsg, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, dto.ErrorResponse{Error: err.Error(), Code: apperrors.Kind(err)})
}

// respondBindError reports a request that failed binding or validation.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error(), Code: apperrors.KindValidation})
}

// pathID parses a positive integer path parameter, answering 400 when it is malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: fmt.Sprintf("invalid %s %q", name, c.Param(name)), Code: apperrors.KindValidation})
		return 0, false
	}
	return id, true
}

// currentUser returns the authenticated user id, answering 401 when it is missing.
func currentUser(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized", Code: apperrors.KindUnauthorized})
		return "", false
	}
	return userID, true
}

// orgScope resolves the organization id and the acting user of an organization-scoped route.
func orgScope(c *gin.Context) (logger *slog.Logger, orgID int64, userID string, ok bool) {
	logger = middleware.GetLoggerFromCtx(c.Request.Context())
	if userID, ok = currentUser(c, logger); !ok {
		return logger, 0, "", false
	}
	if orgID, ok = pathID(c, "organization_id"); !ok {
		return logger, 0, "", false
	}
	logger = logger.With(slog.Int64("organization_id", orgID))
	return logger, orgID, userID, true
}
