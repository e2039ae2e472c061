package services

import (
	"fmt"
	"testing"

	"github.com/alimgiray/crewmatch/internal/models"
	"github.com/stretchr/testify/assert"
)

func testProject(lookingFor ...string) *models.Project {
	return &models.Project{
		ID:          "p-1",
		Title:       "Midnight in Istanbul",
		Type:        models.ProjectTypeShortFilm,
		Description: "A short film about a night market",
		LookingFor:  lookingFor,
		Status:      models.ProjectStatusRecruiting,
	}
}

func TestScoreBase(t *testing.T) {
	service := NewMatchService(nil)

	// No bonuses apply: no skill overlap, busy, junior, empty portfolio,
	// rating exactly at the neutral point.
	collaborator := &models.Collaborator{
		ID:           "c-1",
		Skills:       []string{"Pottery"},
		Availability: models.AvailabilityBusy,
		Experience:   "Emerging Artist",
		Portfolio:    0,
		Rating:       4.0,
	}

	assert.Equal(t, 70, service.Score(testProject("Director"), collaborator))
}

func TestScoreBonuses(t *testing.T) {
	service := NewMatchService(nil)
	project := testProject("Director", "Editor")

	tests := []struct {
		name         string
		collaborator *models.Collaborator
		expected     int
	}{
		{
			name: "availability and portfolio",
			collaborator: &models.Collaborator{
				Skills:       []string{"Pottery"},
				Availability: models.AvailabilityAvailable,
				Experience:   "Emerging Artist",
				Portfolio:    3,
				Rating:       4.0,
			},
			expected: 83, // 70 + 10 + 3
		},
		{
			name: "single matching skill with seniority",
			collaborator: &models.Collaborator{
				Skills:       []string{"Director"},
				Availability: models.AvailabilityBusy,
				Experience:   "Professional",
				Portfolio:    0,
				Rating:       4.0,
			},
			expected: 85, // 70 + 10 + 5
		},
		{
			name: "portfolio capped at ten",
			collaborator: &models.Collaborator{
				Skills:       []string{"Pottery"},
				Availability: models.AvailabilityBusy,
				Experience:   "Emerging Artist",
				Portfolio:    40,
				Rating:       4.0,
			},
			expected: 80, // 70 + 10
		},
		{
			name: "fractional rating bonus rounds instead of truncating",
			collaborator: &models.Collaborator{
				Skills:       []string{"Pottery"},
				Availability: models.AvailabilityBusy,
				Experience:   "Emerging Artist",
				Portfolio:    0,
				Rating:       4.6,
			},
			expected: 76, // 70 + 6, not 75 from float truncation
		},
		{
			name: "rating below neutral drags the score under base",
			collaborator: &models.Collaborator{
				Skills:       []string{"Pottery"},
				Availability: models.AvailabilityBusy,
				Experience:   "Emerging Artist",
				Portfolio:    0,
				Rating:       3.0,
			},
			expected: 60, // 70 - 10
		},
		{
			name: "everything maxed clamps to one hundred",
			collaborator: &models.Collaborator{
				Skills:       []string{"Director", "Editor"},
				Availability: models.AvailabilityAvailable,
				Experience:   "Expert Level",
				Portfolio:    10,
				Rating:       4.5,
			},
			expected: 100, // 70 + 20 + 10 + 5 + 10 + 5 = 120 before clamp
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Score(project, tt.collaborator))
		})
	}
}

func TestCountMatchingSkills(t *testing.T) {
	tests := []struct {
		name       string
		skills     []string
		lookingFor []string
		expected   int
	}{
		{"exact match", []string{"Director"}, []string{"Director"}, 1},
		{"skill is substring of role", []string{"Director"}, []string{"Film Director"}, 1},
		{"role is substring of skill", []string{"Music Producer"}, []string{"Producer"}, 1},
		{"case insensitive", []string{"director"}, []string{"DIRECTOR"}, 1},
		{"no overlap", []string{"Pottery"}, []string{"Director"}, 0},
		{"each skill counted once", []string{"Director"}, []string{"Director", "Film Director"}, 1},
		{"two distinct skills", []string{"Director", "Editor"}, []string{"Director", "Editor"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, countMatchingSkills(tt.skills, tt.lookingFor))
		})
	}
}

func TestRankOrdersAndTruncates(t *testing.T) {
	service := NewMatchService(nil)
	project := testProject("Director")

	collaborators := make([]*models.Collaborator, 0, 10)
	for i := 0; i < 10; i++ {
		c := &models.Collaborator{
			ID:           fmt.Sprintf("c-%d", i),
			Skills:       []string{"Pottery"},
			Availability: models.AvailabilityBusy,
			Experience:   "Emerging Artist",
			Rating:       4.0,
			Portfolio:    i, // scores 70..79
		}
		collaborators = append(collaborators, c)
	}

	ranked := service.Rank(project, collaborators, 3)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "c-9", ranked[0].ID)
	assert.Equal(t, "c-8", ranked[1].ID)
	assert.Equal(t, "c-7", ranked[2].ID)
	assert.Equal(t, 79, ranked[0].MatchScore)

	// Input is never mutated, scores land on copies only.
	assert.Equal(t, 0, collaborators[9].MatchScore)
}

func TestRankStableOnTies(t *testing.T) {
	service := NewMatchService(nil)
	project := testProject("Director")

	// Identical profiles score identically; order must follow input order.
	collaborators := []*models.Collaborator{
		{ID: "first", Skills: []string{"Director"}, Availability: models.AvailabilityAvailable, Rating: 4.0},
		{ID: "second", Skills: []string{"Director"}, Availability: models.AvailabilityAvailable, Rating: 4.0},
		{ID: "third", Skills: []string{"Director"}, Availability: models.AvailabilityAvailable, Rating: 4.0},
	}

	ranked := service.Rank(project, collaborators, 0)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].ID)
	assert.Equal(t, "second", ranked[1].ID)
	assert.Equal(t, "third", ranked[2].ID)
}

func TestRankEmptyInput(t *testing.T) {
	service := NewMatchService(nil)

	ranked := service.Rank(testProject("Director"), nil, 5)

	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}

func TestWeightedScoreWithoutPerturbation(t *testing.T) {
	service := NewMatchService(nil)

	criteria := ProjectCriteria{
		ProjectType: "film",
		LookingFor:  []string{"Editor"},
	}

	tests := []struct {
		name         string
		collaborator *models.Collaborator
		expected     int
	}{
		{
			name: "perfect fit",
			collaborator: &models.Collaborator{
				Role:         "Film Editor",
				Skills:       []string{"Editor"},
				Availability: models.AvailabilityAvailable,
				Rating:       5.0,
			},
			expected: 100, // 40 + 25 + 20 + 15
		},
		{
			name: "busy halves the availability factor",
			collaborator: &models.Collaborator{
				Role:         "Film Editor",
				Skills:       []string{"Editor"},
				Availability: models.AvailabilityBusy,
				Rating:       5.0,
			},
			expected: 90, // 40 + 25 + 10 + 15
		},
		{
			name: "general film role earns partial type credit",
			collaborator: &models.Collaborator{
				Role:         "Producer",
				Skills:       []string{"Editor"},
				Availability: models.AvailabilityAvailable,
				Rating:       4.0,
			},
			expected: 92, // 40 + 20 + 20 + 12
		},
		{
			name: "no overlap at all",
			collaborator: &models.Collaborator{
				Role:         "Potter",
				Skills:       []string{"Ceramics"},
				Availability: models.AvailabilityUnavailable,
				Rating:       0,
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.WeightedScore(criteria, tt.collaborator, nil))
		})
	}
}

func TestWeightedScoreDeterministicForSeed(t *testing.T) {
	service := NewMatchService(nil)
	criteria := ProjectCriteria{ProjectType: "music", LookingFor: []string{"Composer"}}
	collaborator := &models.Collaborator{
		Role:         "Music Composer",
		Skills:       []string{"Composer", "Piano"},
		Availability: models.AvailabilityAvailable,
		Rating:       4.7,
	}

	first := service.WeightedScore(criteria, collaborator, NewRand(42))
	second := service.WeightedScore(criteria, collaborator, NewRand(42))

	assert.Equal(t, first, second)

	// The perturbation is bounded by five points around the deterministic
	// score.
	base := service.WeightedScore(criteria, collaborator, nil)
	assert.InDelta(t, base, first, 5)
}

func TestRankWeightedFiltersAndLimits(t *testing.T) {
	service := NewMatchService(nil)
	criteria := ProjectCriteria{ProjectType: "film", LookingFor: []string{"Editor"}}

	collaborators := []*models.Collaborator{
		{ID: "strong", Role: "Film Editor", Skills: []string{"Editor"}, Availability: models.AvailabilityAvailable, Rating: 5.0},
		{ID: "weak", Role: "Potter", Skills: []string{"Ceramics"}, Availability: models.AvailabilityUnavailable, Rating: 0},
	}

	ranked := service.RankWeighted(criteria, collaborators, 60, 6, nil)

	assert.Len(t, ranked, 1)
	assert.Equal(t, "strong", ranked[0].ID)
	assert.Greater(t, ranked[0].MatchScore, 60)
}
