package services

import (
	"context"
	"time"

	"github.com/alimgiray/crewmatch/internal/ai"
	"github.com/alimgiray/crewmatch/internal/models"
	"github.com/alimgiray/crewmatch/internal/repositories"
	"github.com/alimgiray/crewmatch/pkg/logger"
	"github.com/google/uuid"
)

// MatchProposer drafts collaboration matches through the external
// generative service. A nil proposer disables the delegated policy and the
// generator always uses templates.
type MatchProposer interface {
	ProposeMatches(ctx context.Context, project *models.Project, candidates []*models.Collaborator, count int) (*ai.MatchResult, error)
}

// RequestGeneratorService creates pending collaboration requests for a
// project, preferring the delegated generative policy and falling back to
// the deterministic template policy whenever the generation call fails or
// returns unusable output. The fallback is all-or-nothing: one invocation
// never mixes results from both policies.
type RequestGeneratorService struct {
	collaboratorRepo repositories.CollaboratorRepository
	requestRepo      repositories.CollaborationRequestRepository
	projectRepo      repositories.ProjectRepository
	matchService     *MatchService
	proposer         MatchProposer
	rng              *Rand
	timeout          time.Duration
}

func NewRequestGeneratorService(
	collaboratorRepo repositories.CollaboratorRepository,
	requestRepo repositories.CollaborationRequestRepository,
	projectRepo repositories.ProjectRepository,
	matchService *MatchService,
	proposer MatchProposer,
	rng *Rand,
	timeout time.Duration,
) *RequestGeneratorService {
	return &RequestGeneratorService{
		collaboratorRepo: collaboratorRepo,
		requestRepo:      requestRepo,
		projectRepo:      projectRepo,
		matchService:     matchService,
		proposer:         proposer,
		rng:              rng,
		timeout:          timeout,
	}
}

// Generate creates up to count pending requests for the project, each
// referencing a distinct top-ranked available collaborator. The requests
// are persisted and the project's Requests counter is set to the number
// generated in this call (not incremented: this mirrors the
// project-creation flow, which generates into a fresh counter).
func (s *RequestGeneratorService) Generate(ctx context.Context, project *models.Project, count int) ([]*models.CollaborationRequest, error) {
	collaborators, err := s.collaboratorRepo.List()
	if err != nil {
		return nil, err
	}

	available := make([]*models.Collaborator, 0, len(collaborators))
	for _, c := range collaborators {
		if c.Availability == models.AvailabilityAvailable {
			available = append(available, c)
		}
	}
	ranked := s.matchService.Rank(project, available, len(available))

	requests := s.generateDelegated(ctx, project, ranked, count)
	if requests == nil {
		requests = s.generateFromTemplates(project, ranked, count)
	}

	for _, request := range requests {
		if err := s.requestRepo.Insert(request); err != nil {
			return nil, err
		}
	}

	project.Requests = len(requests)
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	return requests, nil
}

// generateDelegated runs the generative policy. Any failure (call error,
// parse error, unknown or duplicate collaborator reference) is absorbed
// here: the method logs and returns nil so the caller falls back to the
// template policy.
func (s *RequestGeneratorService) generateDelegated(ctx context.Context, project *models.Project, ranked []*models.Collaborator, count int) []*models.CollaborationRequest {
	if s.proposer == nil || len(ranked) == 0 {
		return nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result, err := s.proposer.ProposeMatches(ctx, project, ranked, count)
	if err != nil {
		logger.WithError(err).WithField("project_id", project.ID).Warn("Match generation failed, using template fallback")
		return nil
	}

	byID := make(map[string]*models.Collaborator, len(ranked))
	for _, c := range ranked {
		byID[c.ID] = c
	}

	seen := make(map[string]bool, len(result.Matches))
	requests := make([]*models.CollaborationRequest, 0, count)
	for _, match := range result.Matches {
		if len(requests) == count {
			break
		}
		collaborator, ok := byID[match.CollaboratorID]
		if !ok || seen[match.CollaboratorID] {
			logger.WithFields(map[string]interface{}{
				"project_id":      project.ID,
				"collaborator_id": match.CollaboratorID,
			}).Warn("Generated match references unknown or duplicate collaborator, using template fallback")
			return nil
		}
		seen[match.CollaboratorID] = true

		portfolio := match.EnhancedPortfolio
		if portfolio == nil {
			portfolio = fallbackPortfolio(collaborator, s.rng)
		}
		skills := match.Skills
		if len(skills) == 0 {
			skills = collaborator.Skills
		}

		requests = append(requests, s.newRequest(project, collaborator, match.Message, skills,
			models.Availability(match.Availability), match.InterestLevel, match.EstimatedHours, portfolio))
	}

	if len(requests) == 0 {
		return nil
	}
	return requests
}

// generateFromTemplates runs the deterministic-safe template policy over
// the top-ranked available collaborators.
func (s *RequestGeneratorService) generateFromTemplates(project *models.Project, ranked []*models.Collaborator, count int) []*models.CollaborationRequest {
	if len(ranked) > count {
		ranked = ranked[:count]
	}

	requests := make([]*models.CollaborationRequest, 0, len(ranked))
	for _, collaborator := range ranked {
		interest := 8
		hours := 20
		if s.rng != nil {
			interest = s.rng.Intn(3) + 7
			hours = s.rng.Intn(20) + 10
		}
		requests = append(requests, s.newRequest(project, collaborator,
			templateMessage(collaborator, project, s.rng),
			collaborator.Skills, collaborator.Availability, interest, hours,
			fallbackPortfolio(collaborator, s.rng)))
	}
	return requests
}

func (s *RequestGeneratorService) newRequest(
	project *models.Project,
	collaborator *models.Collaborator,
	message string,
	skills []string,
	availability models.Availability,
	interest, hours int,
	portfolio *models.EnhancedPortfolio,
) *models.CollaborationRequest {
	return &models.CollaborationRequest{
		ID:                uuid.New().String(),
		ProjectID:         project.ID,
		CollaboratorID:    collaborator.ID,
		Message:           message,
		Status:            models.RequestStatusPending,
		CreatedAt:         time.Now().Format("2006-01-02"),
		Collaborator:      collaborator.Snapshot(),
		Project:           project.Snapshot(),
		Type:              models.RequestDirectionReceived,
		Skills:            skills,
		Availability:      availability,
		InterestLevel:     interest,
		EstimatedHours:    hours,
		EnhancedPortfolio: portfolio,
	}
}
