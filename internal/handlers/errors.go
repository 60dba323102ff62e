package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fin_automation_app/internal/apperrors"
	"github.com/SscSPs/fin_automation_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// writeServiceError maps a service error to its HTTP response. failureMsg is
// the body for unexpected errors, whose details stay in the log.
// An imbalance reports totalDebit and totalCredit as decimal strings ("100000"),
// the same encoding every amount in the API uses.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	var imbalance *domain.ImbalanceError
	var unknown *domain.UnknownAccountError

	switch {
	case errors.As(err, &imbalance):
		logger.Warn("Journal not balanced",
			slog.String("total_debit", imbalance.TotalDebit.String()),
			slog.String("total_credit", imbalance.TotalCredit.String()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       "Journal not balanced",
			"totalDebit":  imbalance.TotalDebit,
			"totalCredit": imbalance.TotalCredit,
		})
	case errors.As(err, &unknown):
		logger.Warn("Unknown account in journal", slog.Int64("account_id", unknown.AccountID))
		body := gin.H{"error": err.Error(), "accountID": unknown.AccountID}
		if unknown.LineIndex >= 0 {
			body["line"] = unknown.LineIndex + 1
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}

// writeBindError reports a request that failed binding or validation.
func writeBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
