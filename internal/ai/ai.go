// Package ai defines the boundary types for the external generative service.
// Every call through this boundary is treated as fallible; callers keep a
// local fallback and never surface generation failures.
package ai

import (
	"context"

	"github.com/alimgiray/crewmatch/internal/models"
)

// Generator produces free text from a prompt. Implementations wrap a remote
// model API and may fail for any reason (network, quota, empty output).
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// MatchProposal is one generated collaboration match for a project.
type MatchProposal struct {
	CollaboratorID    string                    `json:"collaboratorId"`
	Message           string                    `json:"message"`
	Skills            []string                  `json:"skills"`
	Availability      string                    `json:"availability"`
	InterestLevel     int                       `json:"interest_level"`
	EstimatedHours    int                       `json:"estimated_hours"`
	EnhancedPortfolio *models.EnhancedPortfolio `json:"enhanced_portfolio"`
}

// MatchResult is the full response of a match-generation call.
type MatchResult struct {
	Matches   []MatchProposal `json:"matches"`
	Reasoning string          `json:"reasoning"`
}

// RecommendationLevel buckets a recommendation by confidence.
type RecommendationLevel string

const (
	LevelHighlyRecommended RecommendationLevel = "highly_recommended"
	LevelRecommended       RecommendationLevel = "recommended"
	LevelGoodFit           RecommendationLevel = "good_fit"
	LevelPotentialFit      RecommendationLevel = "potential_fit"
)

// Valid reports whether the level is one of the known buckets.
func (l RecommendationLevel) Valid() bool {
	switch l {
	case LevelHighlyRecommended, LevelRecommended, LevelGoodFit, LevelPotentialFit:
		return true
	}
	return false
}

// Recommendation is one model-ranked collaborator for a project.
type Recommendation struct {
	CollaboratorID      string              `json:"collaboratorId"`
	MatchScore          int                 `json:"matchScore"`
	Reasoning           string              `json:"reasoning"`
	KeyStrengths        []string            `json:"keyStrengths"`
	PotentialConcerns   []string            `json:"potentialConcerns,omitempty"`
	RecommendationLevel RecommendationLevel `json:"recommendationLevel"`
}
