package handlers

import (
	"errors"
	"net/http"

	"github.com/alimgiray/crewmatch/internal/models"
	"github.com/alimgiray/crewmatch/internal/repositories"
	"github.com/alimgiray/crewmatch/internal/services"
	"github.com/alimgiray/crewmatch/pkg/logger"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List returns projects, optionally filtered by owner and status.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Query("userId"), c.Query("status"))
	if err != nil {
		logger.WithError(err).Error("Failed to list projects")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to get projects",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"projects": projects,
	})
}

// Get returns one project by ID.
func (h *ProjectHandler) Get(c *gin.Context) {
	project, err := h.projectService.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Project not found",
			})
			return
		}
		logger.WithError(err).Error("Failed to get project")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to get project",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"project": project,
	})
}

// Create posts a new project and kicks off request generation for it.
func (h *ProjectHandler) Create(c *gin.Context) {
	var payload models.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), &payload)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": validationErr.Error(),
			})
			return
		}
		logger.WithError(err).Error("Failed to create project")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create project",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"project": project,
	})
}

// RemoveCollaborator decrements a project's collaborator count.
func (h *ProjectHandler) RemoveCollaborator(c *gin.Context) {
	project, err := h.projectService.RemoveCollaborator(c.Param("id"), c.Param("collaboratorId"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Project not found",
			})
			return
		}
		logger.WithError(err).Error("Failed to remove collaborator from project")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to remove collaborator",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Collaborator removed from project",
		"project": project,
	})
}
