package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"webmaker/middleware"
	"webmaker/models"
	"webmaker/services/notification"
	"webmaker/services/request"
	"webmaker/utils"
)

// SubmitContact handles the contact form. Same pipeline as the budget
// endpoint, minus the client confirmation.
func SubmitContact(mailer notification.MailerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var payload models.ContactRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Cuerpo de la petición no válido.", []string{err.Error()})
			return
		}

		clean := request.SanitizeContact(payload)
		result := request.ValidateContact(clean)
		if !result.IsValid {
			logger.Warn("contact request rejected by validation",
				zap.Int("violations", len(result.Errors)))
			utils.JSONError(c, http.StatusBadRequest, "Datos del formulario no válidos.", result.Errors)
			return
		}

		clientIP := middleware.ClientIP(c)
		dispatch := mailer.SendContactRequest(c.Request.Context(), clean, clientIP)
		if !dispatch.Success {
			utils.JSONError(c, http.StatusInternalServerError, dispatch.Message, nil)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": dispatch.Message,
		})
	}
}
