package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"webmaker/services/plan"
	"webmaker/utils"
)

// PlanHandler exposes the pricing configurator over HTTP. All engine
// semantics live in services/plan; this layer only translates transport.
type PlanHandler struct {
	Service plan.PlanService
}

func NewPlanHandler(service plan.PlanService) *PlanHandler {
	return &PlanHandler{Service: service}
}

// StartSession creates a fresh configurator session and returns the initial
// snapshot together with the catalog the client renders.
func (h *PlanHandler) StartSession(c *gin.Context) {
	view, err := h.Service.StartSession(c.Request.Context())
	if err != nil {
		getLogger(c).Error("failed to start plan session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo iniciar la sesión.", nil)
		return
	}
	catalog := h.Service.Catalog()
	c.JSON(http.StatusOK, gin.H{
		"sessionId":   view.SessionID,
		"currentStep": view.CurrentStep,
		"totalSteps":  view.TotalSteps,
		"selection":   view.Selection,
		"totalPrice":  view.TotalPrice,
		"steps":       catalog.Steps(),
		"bundles":     catalog.Bundles(),
	})
}

// GetCatalog returns the plan steps, bundles and catalog version.
func (h *PlanHandler) GetCatalog(c *gin.Context) {
	catalog := h.Service.Catalog()
	c.JSON(http.StatusOK, gin.H{
		"version": plan.CatalogVersion,
		"steps":   catalog.Steps(),
		"bundles": catalog.Bundles(),
	})
}

// GetSession returns the current session snapshot.
func (h *PlanHandler) GetSession(c *gin.Context) {
	view, err := h.Service.GetSession(c.Request.Context(), c.Param("id"))
	h.respond(c, view, err)
}

// SelectBundle applies a bundle to the session.
func (h *PlanHandler) SelectBundle(c *gin.Context) {
	var input struct {
		BundleID string `json:"bundleId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", []string{err.Error()})
		return
	}
	view, err := h.Service.SelectBundle(c.Request.Context(), c.Param("id"), input.BundleID)
	h.respond(c, view, err)
}

// ToggleService adds or removes a single service.
func (h *PlanHandler) ToggleService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", []string{err.Error()})
		return
	}
	view, err := h.Service.ToggleService(c.Request.Context(), c.Param("id"), input.ServiceID)
	h.respond(c, view, err)
}

// ChangeQuantity adjusts a quantity-bearing service by a signed delta.
func (h *PlanHandler) ChangeQuantity(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId"`
		Delta     int    `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", []string{err.Error()})
		return
	}
	view, err := h.Service.ChangeQuantity(c.Request.Context(), c.Param("id"), input.ServiceID, input.Delta)
	h.respond(c, view, err)
}

// Advance moves the session to the next step, honouring the step-one gate.
func (h *PlanHandler) Advance(c *gin.Context) {
	view, err := h.Service.Advance(c.Request.Context(), c.Param("id"))
	h.respond(c, view, err)
}

// Back moves the session to the previous step.
func (h *PlanHandler) Back(c *gin.Context) {
	view, err := h.Service.Back(c.Request.Context(), c.Param("id"))
	h.respond(c, view, err)
}

// Search returns the paginated additional-services listing.
func (h *PlanHandler) Search(c *gin.Context) {
	page := 0
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			page = parsed
		}
	}
	result, err := h.Service.Search(c.Request.Context(), c.Param("id"), c.Query("q"), page)
	if err != nil {
		h.respond(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PlanHandler) respond(c *gin.Context, view *plan.SessionView, err error) {
	if err != nil {
		var notFound *plan.SessionNotFoundError
		if errors.As(err, &notFound) {
			utils.JSONError(c, http.StatusNotFound, "Sesión no encontrada o caducada.", nil)
			return
		}
		var blocked *plan.StepBlockedError
		if errors.As(err, &blocked) {
			utils.JSONError(c, http.StatusBadRequest, blocked.Message, nil)
			return
		}
		getLogger(c).Error("plan operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Error interno del servidor", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}
