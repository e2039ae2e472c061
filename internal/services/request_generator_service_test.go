package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alimgiray/crewmatch/internal/ai"
	"github.com/alimgiray/crewmatch/internal/models"
	"github.com/alimgiray/crewmatch/internal/repositories"
	"github.com/stretchr/testify/assert"
)

type stubProposer struct {
	result *ai.MatchResult
	err    error
	calls  int
}

func (s *stubProposer) ProposeMatches(ctx context.Context, project *models.Project, candidates []*models.Collaborator, count int) (*ai.MatchResult, error) {
	s.calls++
	return s.result, s.err
}

func generatorFixture(proposer MatchProposer) (*RequestGeneratorService, repositories.CollaborationRequestRepository, repositories.ProjectRepository, *models.Project) {
	collaborators := []*models.Collaborator{
		{ID: "c-1", Name: "Maya Chen", Role: "Cinematographer", Skills: []string{"Cinematography", "Lighting"}, Availability: models.AvailabilityAvailable, Experience: "Professional", Rating: 4.9, Portfolio: 12},
		{ID: "c-2", Name: "Jordan Rivera", Role: "Sound Engineer", Skills: []string{"Sound Design", "Mixing"}, Availability: models.AvailabilityAvailable, Experience: "Expert Level", Rating: 4.5, Portfolio: 8},
		{ID: "c-3", Name: "Sam Okafor", Role: "Editor", Skills: []string{"Editing", "Color Grading"}, Availability: models.AvailabilityAvailable, Experience: "Emerging Artist", Rating: 4.2, Portfolio: 3},
		{ID: "c-4", Name: "Lena Petrova", Role: "Director", Skills: []string{"Directing"}, Availability: models.AvailabilityBusy, Experience: "Professional", Rating: 5.0, Portfolio: 20},
	}

	project := &models.Project{
		ID:         "p-1",
		Title:      "Harbor Lights",
		Type:       models.ProjectTypeShortFilm,
		LookingFor: []string{"Cinematographer", "Editor"},
		Status:     models.ProjectStatusRecruiting,
	}

	collaboratorRepo := repositories.NewMemoryCollaboratorRepository(collaborators)
	requestRepo := repositories.NewMemoryCollaborationRequestRepository(nil)
	projectRepo := repositories.NewMemoryProjectRepository([]*models.Project{project})

	service := NewRequestGeneratorService(
		collaboratorRepo, requestRepo, projectRepo,
		NewMatchService(nil), proposer, NewRand(1), time.Second,
	)
	return service, requestRepo, projectRepo, project
}

func TestGenerateUsesProposedMatches(t *testing.T) {
	proposer := &stubProposer{result: &ai.MatchResult{
		Matches: []ai.MatchProposal{
			{CollaboratorID: "c-1", Message: "Your lighting work is a perfect match.", InterestLevel: 9, EstimatedHours: 25},
			{CollaboratorID: "c-3", Message: "This edit needs your pacing.", InterestLevel: 7, EstimatedHours: 15},
		},
	}}
	service, requestRepo, projectRepo, project := generatorFixture(proposer)

	requests, err := service.Generate(context.Background(), project, 2)

	assert.NoError(t, err)
	assert.Len(t, requests, 2)
	assert.Equal(t, 1, proposer.calls)
	assert.Equal(t, "Your lighting work is a perfect match.", requests[0].Message)
	assert.Equal(t, "c-1", requests[0].CollaboratorID)
	assert.Equal(t, models.RequestStatusPending, requests[0].Status)
	assert.Equal(t, "Maya Chen", requests[0].Collaborator.Name)
	assert.Equal(t, "Harbor Lights", requests[0].Project.Title)
	// The proposal carried no skills or portfolio, so profile data fills in.
	assert.Equal(t, []string{"Cinematography", "Lighting"}, requests[0].Skills)
	assert.NotNil(t, requests[0].EnhancedPortfolio)

	stored, err := requestRepo.List()
	assert.NoError(t, err)
	assert.Len(t, stored, 2)

	updated, err := projectRepo.GetByID("p-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, updated.Requests)
}

func TestGenerateFallsBackOnProposerError(t *testing.T) {
	proposer := &stubProposer{err: errors.New("model unavailable")}
	service, _, projectRepo, project := generatorFixture(proposer)

	requests, err := service.Generate(context.Background(), project, 2)

	assert.NoError(t, err)
	assert.Len(t, requests, 2)
	for _, request := range requests {
		assert.Equal(t, models.RequestStatusPending, request.Status)
		assert.Contains(t, request.Message, request.Collaborator.Name)
		assert.Contains(t, request.Message, `"Harbor Lights"`)
		assert.GreaterOrEqual(t, request.InterestLevel, 7)
		assert.LessOrEqual(t, request.InterestLevel, 9)
		assert.GreaterOrEqual(t, request.EstimatedHours, 10)
		assert.LessOrEqual(t, request.EstimatedHours, 30)
		assert.NotNil(t, request.EnhancedPortfolio)
	}

	updated, err := projectRepo.GetByID("p-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, updated.Requests)
}

func TestGenerateFallsBackOnUnknownCollaborator(t *testing.T) {
	// One proposal is valid, one references a collaborator outside the
	// roster. The fallback is all-or-nothing; the valid proposal must not
	// survive either.
	proposer := &stubProposer{result: &ai.MatchResult{
		Matches: []ai.MatchProposal{
			{CollaboratorID: "c-1", Message: "generated message one", InterestLevel: 8, EstimatedHours: 20},
			{CollaboratorID: "nobody", Message: "generated message two", InterestLevel: 8, EstimatedHours: 20},
		},
	}}
	service, _, _, project := generatorFixture(proposer)

	requests, err := service.Generate(context.Background(), project, 2)

	assert.NoError(t, err)
	assert.Len(t, requests, 2)
	for _, request := range requests {
		assert.NotContains(t, request.Message, "generated message")
	}
}

func TestGenerateFallsBackOnDuplicateCollaborator(t *testing.T) {
	proposer := &stubProposer{result: &ai.MatchResult{
		Matches: []ai.MatchProposal{
			{CollaboratorID: "c-1", Message: "first", InterestLevel: 8, EstimatedHours: 20},
			{CollaboratorID: "c-1", Message: "second", InterestLevel: 8, EstimatedHours: 20},
		},
	}}
	service, _, _, project := generatorFixture(proposer)

	requests, err := service.Generate(context.Background(), project, 2)

	assert.NoError(t, err)
	assert.Len(t, requests, 2)
	seen := map[string]bool{}
	for _, request := range requests {
		assert.False(t, seen[request.CollaboratorID])
		seen[request.CollaboratorID] = true
	}
}

func TestGenerateWithNilProposerUsesTemplates(t *testing.T) {
	service, requestRepo, _, project := generatorFixture(nil)

	requests, err := service.Generate(context.Background(), project, 4)

	assert.NoError(t, err)
	// Only three collaborators are available; the busy one never receives
	// a generated request.
	assert.Len(t, requests, 3)
	for _, request := range requests {
		assert.NotEqual(t, "c-4", request.CollaboratorID)
	}

	stored, err := requestRepo.List()
	assert.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestGenerateTargetsTopRankedCollaborators(t *testing.T) {
	service, _, _, project := generatorFixture(nil)

	requests, err := service.Generate(context.Background(), project, 1)

	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	// c-1 matches a required role, is available, senior and highly rated.
	assert.Equal(t, "c-1", requests[0].CollaboratorID)
}
