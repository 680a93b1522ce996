package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"coworking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/locations/:id/spaces", h.ListSpaces)
	rg.GET("/locations/:id/rules", h.GetRules)
	rg.PUT("/locations/:id/rules", h.UpdateRules)
	rg.GET("/spaces/:id", h.GetSpace)
}

func (h *Handler) ListSpaces(c *gin.Context) {
	spaces, err := h.service.ListSpaces(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list spaces")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"spaces": spaces})
}

func (h *Handler) GetSpace(c *gin.Context) {
	space, err := h.service.GetSpace(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Space not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load space")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"space": space})
}

func (h *Handler) GetRules(c *gin.Context) {
	rules, err := h.service.GetLocationRules(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rules")
		return
	}
	if rules == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No rules configured for location")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rules": rules})
}

func (h *Handler) UpdateRules(c *gin.Context) {
	var req UpdateRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rules, err := h.service.UpdateLocationRules(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrInvalidRules) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Rules are not valid", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update rules")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rules": rules})
}
