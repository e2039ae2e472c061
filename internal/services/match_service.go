package services

import (
	"math"
	"sort"
	"strings"

	"github.com/alimgiray/crewmatch/internal/models"
)

// DefaultRecommendationLimit bounds ranked results when the caller does not
// ask for a specific count.
const DefaultRecommendationLimit = 6

// DefaultSeniorExperienceLevels are the experience tiers that earn the
// seniority bonus in the basic score.
var DefaultSeniorExperienceLevels = []string{"Professional", "Expert Level", "Senior Level"}

// MatchService computes project/collaborator fit scores and rankings.
type MatchService struct {
	seniorLevels map[string]struct{}
}

func NewMatchService(seniorLevels []string) *MatchService {
	if len(seniorLevels) == 0 {
		seniorLevels = DefaultSeniorExperienceLevels
	}
	levels := make(map[string]struct{}, len(seniorLevels))
	for _, level := range seniorLevels {
		levels[level] = struct{}{}
	}
	return &MatchService{seniorLevels: levels}
}

// Score computes the basic match score for a collaborator against a
// project's needs. Deterministic and pure: base 70, plus bonuses for skill
// overlap, availability, seniority, portfolio size and rating offset,
// clamped to a maximum of 100. No lower clamp is applied; a sufficiently
// low rating can push the result below the base.
func (s *MatchService) Score(project *models.Project, collaborator *models.Collaborator) int {
	score := 70.0

	score += float64(10 * countMatchingSkills(collaborator.Skills, project.LookingFor))

	if collaborator.Availability == models.AvailabilityAvailable {
		score += 10
	}
	if _, ok := s.seniorLevels[collaborator.Experience]; ok {
		score += 5
	}

	score += float64(min(collaborator.Portfolio, 10))
	score += (collaborator.Rating - 4) * 10

	// Rounded, not truncated: 70 + (4.6-4)*10 must be 76, not 75.
	result := int(math.Round(score))
	if result > 100 {
		result = 100
	}
	return result
}

// countMatchingSkills counts collaborator skills where the skill and a
// required role are substrings of each other, case-insensitive in either
// direction ("Director" matches "Film Director" and vice versa).
func countMatchingSkills(skills, lookingFor []string) int {
	count := 0
	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		for _, needed := range lookingFor {
			neededLower := strings.ToLower(needed)
			if strings.Contains(neededLower, skillLower) || strings.Contains(skillLower, neededLower) {
				count++
				break
			}
		}
	}
	return count
}

// Rank annotates every candidate with its computed match score and returns
// them sorted by score descending, truncated to limit. The sort is stable:
// ties keep their original collection order. Empty input yields an empty
// slice.
func (s *MatchService) Rank(project *models.Project, collaborators []*models.Collaborator, limit int) []*models.Collaborator {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	ranked := make([]*models.Collaborator, 0, len(collaborators))
	for _, c := range collaborators {
		copied := *c
		copied.MatchScore = s.Score(project, &copied)
		ranked = append(ranked, &copied)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ProjectCriteria carries the project attributes the weighted score uses.
// It mirrors the ad-hoc payload of the AI-recommend endpoint, which scores
// against a project that may not be stored yet.
type ProjectCriteria struct {
	ProjectType string
	LookingFor  []string
	Description string
	Budget      string
	Timeline    string
}

// Weighted score factor weights; they sum to 100.
const (
	skillsWeight       = 40.0
	typeWeight         = 25.0
	availabilityWeight = 20.0
	qualityWeight      = 15.0
)

// WeightedScore computes the richer four-factor score: skill overlap 40%,
// coarse project-type compatibility 25%, availability 20% and rating 15%,
// plus a bounded perturbation of up to ±5 points drawn from the injected
// source. The result is clamped to [0,100].
func (s *MatchService) WeightedScore(criteria ProjectCriteria, collaborator *models.Collaborator, rng *Rand) int {
	score := 0.0

	if len(criteria.LookingFor) > 0 {
		matches := 0
		for _, role := range criteria.LookingFor {
			roleLower := strings.ToLower(role)
			for _, skill := range collaborator.Skills {
				skillLower := strings.ToLower(skill)
				if strings.Contains(skillLower, roleLower) || strings.Contains(roleLower, skillLower) {
					matches++
					break
				}
			}
		}
		score += float64(matches) / float64(len(criteria.LookingFor)) * skillsWeight
	}

	score += typeCompatibility(criteria.ProjectType, collaborator.Role) * typeWeight

	switch collaborator.Availability {
	case models.AvailabilityAvailable:
		score += availabilityWeight
	case models.AvailabilityBusy:
		score += availabilityWeight * 0.5
	}

	score += collaborator.Rating / 5 * qualityWeight

	if rng != nil {
		score += (rng.Float64() - 0.5) * 10
	}

	result := int(math.Round(score))
	if result < 0 {
		result = 0
	}
	if result > 100 {
		result = 100
	}
	return result
}

// typeCompatibility is a coarse fit between the project type and the
// collaborator's role label. General film roles earn partial credit.
func typeCompatibility(projectType, role string) float64 {
	roleLower := strings.ToLower(role)

	switch {
	case strings.Contains(projectType, "film") && strings.Contains(roleLower, "film"):
		return 1
	case strings.Contains(projectType, "music") && strings.Contains(roleLower, "music"):
		return 1
	case strings.Contains(roleLower, "director"),
		strings.Contains(roleLower, "producer"),
		strings.Contains(roleLower, "cinematographer"):
		return 0.8
	}
	return 0
}

// RankWeighted scores every candidate with the weighted variant, drops
// results at or below minScore, and returns the top limit sorted descending.
func (s *MatchService) RankWeighted(criteria ProjectCriteria, collaborators []*models.Collaborator, minScore, limit int, rng *Rand) []*models.Collaborator {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	scored := make([]*models.Collaborator, 0, len(collaborators))
	for _, c := range collaborators {
		copied := *c
		copied.MatchScore = s.WeightedScore(criteria, &copied, rng)
		if copied.MatchScore > minScore {
			scored = append(scored, &copied)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
