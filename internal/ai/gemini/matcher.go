package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	_ "embed"

	"github.com/alimgiray/crewmatch/internal/ai"
	"github.com/alimgiray/crewmatch/internal/models"
)

// contentGenerator is the narrow slice of Generator the matcher needs,
// kept as an interface so tests can stub the model.
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Matcher turns project/candidate data into generation prompts and parses
// the structured responses. It never recovers from failures itself; the
// calling service owns the fallback.
type Matcher struct {
	generator contentGenerator
}

//go:embed match_prompt.md
var matchPromptTemplate string

//go:embed recommend_prompt.md
var recommendPromptTemplate string

// maxCandidateProfiles bounds how many profiles are described in a prompt.
const maxCandidateProfiles = 8

const maxBioLength = 300

func NewMatcher(generator contentGenerator) *Matcher {
	return &Matcher{generator: generator}
}

// candidateProfile is the bounded profile summary sent to the model.
type candidateProfile struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Location      string   `json:"location"`
	Skills        []string `json:"skills"`
	Experience    string   `json:"experience_level"`
	PortfolioSize int      `json:"portfolio_size"`
	Availability  string   `json:"availability"`
	Bio           string   `json:"bio"`
	ProfileURL    string   `json:"profile_url,omitempty"`
}

func summarizeCandidates(candidates []*models.Collaborator) []candidateProfile {
	if len(candidates) > maxCandidateProfiles {
		candidates = candidates[:maxCandidateProfiles]
	}

	profiles := make([]candidateProfile, 0, len(candidates))
	for _, c := range candidates {
		bio := c.Bio
		if len(bio) > maxBioLength {
			bio = bio[:maxBioLength]
		}
		profiles = append(profiles, candidateProfile{
			ID:            c.ID,
			Name:          c.Name,
			Role:          c.Role,
			Location:      c.Location,
			Skills:        c.Skills,
			Experience:    c.Experience,
			PortfolioSize: c.Portfolio,
			Availability:  string(c.Availability),
			Bio:           bio,
			ProfileURL:    c.ProfileURL,
		})
	}
	return profiles
}

// ProposeMatches asks the model to pick count collaborators for the project
// and draft a personalized request for each.
func (m *Matcher) ProposeMatches(ctx context.Context, project *models.Project, candidates []*models.Collaborator, count int) (*ai.MatchResult, error) {
	if project == nil {
		return nil, fmt.Errorf("project is required")
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidates to match")
	}

	profilesJSON, err := json.MarshalIndent(summarizeCandidates(candidates), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal candidate profiles: %w", err)
	}

	replacer := strings.NewReplacer(
		"{{PROJECT_TITLE}}", project.Title,
		"{{PROJECT_TYPE}}", string(project.Type),
		"{{PROJECT_DESCRIPTION}}", project.Description,
		"{{REQUIRED_ROLES}}", strings.Join(project.LookingFor, ", "),
		"{{MATCH_COUNT}}", strconv.Itoa(count),
		"{{PROFILES_JSON}}", string(profilesJSON),
	)
	prompt := replacer.Replace(matchPromptTemplate)

	raw, err := m.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result := &ai.MatchResult{}
	if err := json.Unmarshal([]byte(extractJSON(raw)), result); err != nil {
		return nil, fmt.Errorf("parse match response: %w", err)
	}
	if err := validateMatches(result); err != nil {
		return nil, err
	}
	return result, nil
}

func validateMatches(result *ai.MatchResult) error {
	if len(result.Matches) == 0 {
		return fmt.Errorf("match response contains no matches")
	}
	for i := range result.Matches {
		match := &result.Matches[i]
		if match.CollaboratorID == "" {
			return fmt.Errorf("match %d is missing collaboratorId", i)
		}
		if match.Message == "" {
			return fmt.Errorf("match %d is missing message", i)
		}
		if match.Availability == "" {
			match.Availability = string(models.AvailabilityAvailable)
		}
		if match.InterestLevel < 1 || match.InterestLevel > 10 {
			return fmt.Errorf("match %d has interest_level out of range: %d", i, match.InterestLevel)
		}
		if match.EstimatedHours <= 0 {
			return fmt.Errorf("match %d has invalid estimated_hours: %d", i, match.EstimatedHours)
		}
	}
	return nil
}

// Recommend asks the model to rank collaborators for the project, returning
// at most limit recommendations.
func (m *Matcher) Recommend(ctx context.Context, project *models.Project, candidates []*models.Collaborator, limit int) ([]*ai.Recommendation, error) {
	if project == nil {
		return nil, fmt.Errorf("project is required")
	}

	roster := make([]candidateProfile, 0, len(candidates))
	for _, c := range candidates {
		roster = append(roster, candidateProfile{
			ID:            c.ID,
			Name:          c.Name,
			Role:          c.Role,
			Location:      c.Location,
			Skills:        c.Skills,
			Experience:    c.Experience,
			PortfolioSize: c.Portfolio,
			Availability:  string(c.Availability),
			Bio:           c.Bio,
		})
	}
	profilesJSON, err := json.MarshalIndent(roster, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal collaborator roster: %w", err)
	}

	replacer := strings.NewReplacer(
		"{{PROJECT_TITLE}}", project.Title,
		"{{PROJECT_TYPE}}", string(project.Type),
		"{{PROJECT_DESCRIPTION}}", project.Description,
		"{{PROJECT_BUDGET}}", project.Budget,
		"{{PROJECT_TIMELINE}}", project.Timeline,
		"{{REQUIRED_ROLES}}", strings.Join(project.LookingFor, ", "),
		"{{PROJECT_STATUS}}", string(project.Status),
		"{{LIMIT}}", strconv.Itoa(limit),
		"{{PROFILES_JSON}}", string(profilesJSON),
	)
	prompt := replacer.Replace(recommendPromptTemplate)

	raw, err := m.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Recommendations []*ai.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("parse recommendation response: %w", err)
	}
	if len(parsed.Recommendations) == 0 {
		return nil, fmt.Errorf("recommendation response contains no recommendations")
	}
	for i, rec := range parsed.Recommendations {
		if rec.CollaboratorID == "" {
			return nil, fmt.Errorf("recommendation %d is missing collaboratorId", i)
		}
		if rec.MatchScore < 0 || rec.MatchScore > 100 {
			return nil, fmt.Errorf("recommendation %d has matchScore out of range: %d", i, rec.MatchScore)
		}
		if !rec.RecommendationLevel.Valid() {
			return nil, fmt.Errorf("recommendation %d has unknown recommendationLevel: %q", i, rec.RecommendationLevel)
		}
	}
	return parsed.Recommendations, nil
}

// extractJSON strips markdown code fences and surrounding prose, leaving the
// outermost JSON object in the response.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	raw = strings.TrimSpace(raw)

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		raw = raw[start : end+1]
	}
	return strings.TrimSpace(raw)
}
