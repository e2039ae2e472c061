package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alimgiray/crewmatch/internal/repositories"
	"github.com/alimgiray/crewmatch/internal/services"
	"github.com/alimgiray/crewmatch/pkg/logger"
	"github.com/gin-gonic/gin"
)

type CollaboratorHandler struct {
	collaboratorService *services.CollaboratorService
}

func NewCollaboratorHandler(collaboratorService *services.CollaboratorService) *CollaboratorHandler {
	return &CollaboratorHandler{collaboratorService: collaboratorService}
}

// List returns collaborators, filtered by search term and project-type bucket.
// When projectId resolves to a stored project the result is ranked against it
// instead; an unknown projectId falls through to the normal listing.
func (h *CollaboratorHandler) List(c *gin.Context) {
	limit := intQuery(c, "limit", 0)

	if projectID := c.Query("projectId"); projectID != "" {
		collaborators, err := h.collaboratorService.RecommendedForProject(projectID, limit)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			logger.WithError(err).Error("Failed to rank collaborators for project")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to get collaborators",
			})
			return
		}
		if err == nil {
			c.JSON(http.StatusOK, gin.H{
				"success":       true,
				"collaborators": collaborators,
			})
			return
		}
	}

	collaborators, err := h.collaboratorService.Search(c.Query("search"), c.Query("projectType"), limit)
	if err != nil {
		logger.WithError(err).Error("Failed to list collaborators")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to get collaborators",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"collaborators": collaborators,
	})
}

// Profile returns the extended profile view for one collaborator.
func (h *CollaboratorHandler) Profile(c *gin.Context) {
	profile, err := h.collaboratorService.Profile(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Collaborator not found",
			})
			return
		}
		logger.WithError(err).Error("Failed to build collaborator profile")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to get collaborator profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"profile": profile,
	})
}

// Export streams the collaborator roster as an xlsx workbook.
func (h *CollaboratorHandler) Export(c *gin.Context) {
	file, err := h.collaboratorService.RosterWorkbook()
	if err != nil {
		logger.WithError(err).Error("Failed to build roster workbook")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to export collaborators",
		})
		return
	}
	defer file.Close()

	c.Header("Content-Disposition", `attachment; filename="collaborators.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		logger.WithError(err).Error("Failed to write roster workbook")
	}
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
