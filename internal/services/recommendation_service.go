package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alimgiray/crewmatch/internal/ai"
	"github.com/alimgiray/crewmatch/internal/models"
	"github.com/alimgiray/crewmatch/internal/repositories"
	"github.com/alimgiray/crewmatch/pkg/logger"
)

// Recommender produces assessed match recommendations for a project.
type Recommender interface {
	Recommend(ctx context.Context, project *models.Project, candidates []*models.Collaborator, limit int) ([]*ai.Recommendation, error)
}

// RecommendedMatch pairs an assessment with the collaborator it refers to.
type RecommendedMatch struct {
	Collaborator        *models.Collaborator   `json:"collaborator"`
	MatchScore          int                    `json:"matchScore"`
	Reasoning           string                 `json:"reasoning"`
	KeyStrengths        []string               `json:"keyStrengths"`
	PotentialConcerns   []string               `json:"potentialConcerns"`
	RecommendationLevel ai.RecommendationLevel `json:"recommendationLevel"`
}

// RecommendationService answers "who should join this project" with an
// assessed, ranked shortlist. The recommender is optional; when it is absent
// or fails, scoring falls back to the local match scorer.
type RecommendationService struct {
	projectRepo      repositories.ProjectRepository
	collaboratorRepo repositories.CollaboratorRepository
	matchService     *MatchService
	recommender      Recommender
	rng              *Rand
	timeout          time.Duration
}

// weightedScoreThreshold drops weak candidates from ad-hoc criteria ranking.
const weightedScoreThreshold = 60

func NewRecommendationService(
	projectRepo repositories.ProjectRepository,
	collaboratorRepo repositories.CollaboratorRepository,
	matchService *MatchService,
	recommender Recommender,
	rng *Rand,
	timeout time.Duration,
) *RecommendationService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RecommendationService{
		projectRepo:      projectRepo,
		collaboratorRepo: collaboratorRepo,
		matchService:     matchService,
		recommender:      recommender,
		rng:              rng,
		timeout:          timeout,
	}
}

// RecommendedMatches returns up to limit assessed matches for a project,
// ordered by descending match score.
func (s *RecommendationService) RecommendedMatches(ctx context.Context, projectID string, limit int) ([]*RecommendedMatch, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}

	collaborators, err := s.collaboratorRepo.List()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	if matches := s.assessedMatches(ctx, project, collaborators, limit); matches != nil {
		return matches, nil
	}
	return s.scoredMatches(project, collaborators, limit), nil
}

// assessedMatches asks the recommender for assessments and resolves them
// against the roster. Returns nil when the recommender is unavailable or
// produced nothing usable, signalling local fallback.
func (s *RecommendationService) assessedMatches(ctx context.Context, project *models.Project, collaborators []*models.Collaborator, limit int) []*RecommendedMatch {
	if s.recommender == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	recommendations, err := s.recommender.Recommend(ctx, project, collaborators, limit)
	if err != nil {
		logger.WithError(err).WithField("project_id", project.ID).Warn("Recommendation generation failed, falling back to local scoring")
		return nil
	}

	byID := make(map[string]*models.Collaborator, len(collaborators))
	for _, c := range collaborators {
		byID[c.ID] = c
	}

	matches := make([]*RecommendedMatch, 0, len(recommendations))
	for _, rec := range recommendations {
		collaborator, ok := byID[rec.CollaboratorID]
		if !ok {
			logger.WithFields(map[string]interface{}{
				"project_id":      project.ID,
				"collaborator_id": rec.CollaboratorID,
			}).Warn("Recommendation references unknown collaborator, skipping")
			continue
		}

		annotated := *collaborator
		annotated.MatchScore = rec.MatchScore
		matches = append(matches, &RecommendedMatch{
			Collaborator:        &annotated,
			MatchScore:          rec.MatchScore,
			Reasoning:           rec.Reasoning,
			KeyStrengths:        rec.KeyStrengths,
			PotentialConcerns:   rec.PotentialConcerns,
			RecommendationLevel: rec.RecommendationLevel,
		})
	}
	if len(matches) == 0 {
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// RecommendedForCriteria ranks the roster against an ad-hoc project
// description that is not stored yet, using the weighted scorer. Candidates
// scoring at or below the threshold are dropped.
func (s *RecommendationService) RecommendedForCriteria(criteria ProjectCriteria, limit int) ([]*RecommendedMatch, error) {
	collaborators, err := s.collaboratorRepo.List()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	ranked := s.matchService.RankWeighted(criteria, collaborators, weightedScoreThreshold, limit, s.rng)

	matches := make([]*RecommendedMatch, 0, len(ranked))
	for _, c := range ranked {
		matches = append(matches, &RecommendedMatch{
			Collaborator:        c,
			MatchScore:          c.MatchScore,
			Reasoning:           fallbackReasoning(c),
			KeyStrengths:        keyStrengths(c),
			PotentialConcerns:   []string{},
			RecommendationLevel: ai.LevelGoodFit,
		})
	}
	return matches, nil
}

// scoredMatches builds the fallback shortlist from the local match scorer.
func (s *RecommendationService) scoredMatches(project *models.Project, collaborators []*models.Collaborator, limit int) []*RecommendedMatch {
	ranked := s.matchService.Rank(project, collaborators, limit)

	matches := make([]*RecommendedMatch, 0, len(ranked))
	for _, c := range ranked {
		matches = append(matches, &RecommendedMatch{
			Collaborator:        c,
			MatchScore:          c.MatchScore,
			Reasoning:           fallbackReasoning(c),
			KeyStrengths:        keyStrengths(c),
			PotentialConcerns:   []string{},
			RecommendationLevel: ai.LevelGoodFit,
		})
	}
	return matches
}

func fallbackReasoning(c *models.Collaborator) string {
	skills := c.Skills
	if len(skills) > 2 {
		skills = skills[:2]
	}
	return fmt.Sprintf("Good match based on skills in %s and %s experience level.",
		strings.Join(skills, " and "), strings.ToLower(c.Experience))
}

func keyStrengths(c *models.Collaborator) []string {
	if len(c.Skills) > 3 {
		return c.Skills[:3]
	}
	return c.Skills
}
