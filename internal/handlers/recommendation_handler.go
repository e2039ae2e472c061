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

type RecommendationHandler struct {
	recommendationService *services.RecommendationService
}

func NewRecommendationHandler(recommendationService *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// ForProject returns an assessed, ranked shortlist of collaborators for a
// project. Generation failures are absorbed inside the service, so this only
// fails on bad input or storage errors.
func (h *RecommendationHandler) ForProject(c *gin.Context) {
	projectID := c.Query("projectId")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "projectId is required",
		})
		return
	}

	matches, err := h.recommendationService.RecommendedMatches(c.Request.Context(), projectID, intQuery(c, "limit", 0))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Project not found",
			})
			return
		}
		logger.WithError(err).Error("Failed to build recommendations")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to get recommendations",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"matches": matches,
	})
}

// Recommend is the POST variant: either a stored project ID or an ad-hoc
// project description. The ad-hoc path ranks with the weighted scorer.
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var payload struct {
		ProjectID   string   `json:"projectId"`
		ProjectType string   `json:"projectType"`
		LookingFor  []string `json:"lookingFor"`
		Description string   `json:"description"`
		Budget      string   `json:"budget"`
		Timeline    string   `json:"timeline"`
		Limit       int      `json:"limit"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	if payload.ProjectID == "" {
		if payload.ProjectType == "" && len(payload.LookingFor) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "projectId or project criteria is required",
			})
			return
		}

		matches, err := h.recommendationService.RecommendedForCriteria(services.ProjectCriteria{
			ProjectType: payload.ProjectType,
			LookingFor:  payload.LookingFor,
			Description: payload.Description,
			Budget:      payload.Budget,
			Timeline:    payload.Timeline,
		}, payload.Limit)
		if err != nil {
			logger.WithError(err).Error("Failed to build recommendations")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to get recommendations",
			})
			return
		}
		respondRecommended(c, payload.ProjectID, matches)
		return
	}

	matches, err := h.recommendationService.RecommendedMatches(c.Request.Context(), payload.ProjectID, payload.Limit)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Project not found",
			})
			return
		}
		logger.WithError(err).Error("Failed to build recommendations")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to get recommendations",
		})
		return
	}

	respondRecommended(c, payload.ProjectID, matches)
}

func respondRecommended(c *gin.Context, projectID string, matches []*services.RecommendedMatch) {
	collaborators := make([]*models.Collaborator, 0, len(matches))
	for _, match := range matches {
		collaborators = append(collaborators, match.Collaborator)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                  true,
		"recommendedCollaborators": collaborators,
		"projectId":                projectID,
		"totalMatches":             len(collaborators),
	})
}
