package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alimgiray/crewmatch/internal/models"
	"github.com/alimgiray/crewmatch/internal/repositories"
	"github.com/alimgiray/crewmatch/internal/services"
	"github.com/alimgiray/crewmatch/pkg/logger"
	"github.com/gin-gonic/gin"
)

type CollaborationRequestHandler struct {
	requestService *services.RequestService
}

func NewCollaborationRequestHandler(requestService *services.RequestService) *CollaborationRequestHandler {
	return &CollaborationRequestHandler{requestService: requestService}
}

// List returns collaboration requests, optionally filtered by project or
// collaborator.
func (h *CollaborationRequestHandler) List(c *gin.Context) {
	requests, err := h.requestService.List(c.Query("projectId"), c.Query("collaboratorId"))
	if err != nil {
		logger.WithError(err).Error("Failed to list collaboration requests")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to get collaboration requests",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"requests": requests,
	})
}

// Create posts a collaboration request from the current user to a
// collaborator.
func (h *CollaborationRequestHandler) Create(c *gin.Context) {
	var payload models.CreateCollaborationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	request, err := h.requestService.Create(&payload)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": validationErr.Error(),
			})
			return
		}
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Collaborator or project not found",
			})
			return
		}
		logger.WithError(err).Error("Failed to create collaboration request")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create collaboration request",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"request": request,
	})
}

// Accept marks a pending request accepted.
func (h *CollaborationRequestHandler) Accept(c *gin.Context) {
	h.resolve(c, h.requestService.Accept)
}

// Decline marks a pending request declined.
func (h *CollaborationRequestHandler) Decline(c *gin.Context) {
	h.resolve(c, h.requestService.Decline)
}

func (h *CollaborationRequestHandler) resolve(c *gin.Context, resolve func(string) (*models.CollaborationRequest, error)) {
	request, err := resolve(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Collaboration request not found",
			})
			return
		}
		if errors.Is(err, services.ErrAlreadyResolved) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "Collaboration request has already been resolved",
			})
			return
		}
		logger.WithError(err).Error("Failed to resolve collaboration request")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update collaboration request",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Collaboration request %s", request.Status),
		"request": request,
	})
}
