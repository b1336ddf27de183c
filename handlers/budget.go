package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"webmaker/middleware"
	"webmaker/models"
	"webmaker/services/notification"
	"webmaker/services/request"
	"webmaker/utils"
)

// SubmitBudget handles the budget-request form: sanitize, validate, then
// dispatch the two emails. Validation failures return every violation at
// once so the client can surface them together.
func SubmitBudget(mailer notification.MailerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		logger := getLogger(c)

		var payload models.BudgetRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Cuerpo de la petición no válido.", []string{err.Error()})
			return
		}

		clean := request.SanitizeBudget(payload)
		result := request.ValidateBudget(clean)
		if !result.IsValid {
			logger.Warn("budget request rejected by validation",
				zap.Int("violations", len(result.Errors)))
			utils.JSONError(c, http.StatusBadRequest, "Datos del formulario no válidos.", result.Errors)
			return
		}

		clientIP := middleware.ClientIP(c)
		dispatch := mailer.SendBudgetRequest(c.Request.Context(), clean, clientIP)
		if !dispatch.Success {
			utils.JSONError(c, http.StatusInternalServerError, dispatch.Message, nil)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"message":        dispatch.Message,
			"processingTime": time.Since(started).Milliseconds(),
		})
	}
}
