package services

import (
	"context"
	"time"

	"github.com/alimgiray/crewmatch/internal/models"
	"github.com/alimgiray/crewmatch/internal/repositories"
	"github.com/alimgiray/crewmatch/pkg/logger"
	"github.com/google/uuid"
)

// Counts used by the project-creation flow: how many collaboration
// requests are generated and how many initial collaborators are selected.
const (
	createRequestCount      = 4
	initialCollaboratorPick = 2
)

// ProjectService manages projects and the creation flow that seeds a new
// project with generated requests and initial collaborators.
type ProjectService struct {
	projectRepo      repositories.ProjectRepository
	collaboratorRepo repositories.CollaboratorRepository
	matchService     *MatchService
	requestGenerator *RequestGeneratorService
}

func NewProjectService(
	projectRepo repositories.ProjectRepository,
	collaboratorRepo repositories.CollaboratorRepository,
	matchService *MatchService,
	requestGenerator *RequestGeneratorService,
) *ProjectService {
	return &ProjectService{
		projectRepo:      projectRepo,
		collaboratorRepo: collaboratorRepo,
		matchService:     matchService,
		requestGenerator: requestGenerator,
	}
}

// List returns projects, optionally filtered by creator and status.
func (s *ProjectService) List(userID, status string) ([]*models.Project, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, err
	}

	filtered := make([]*models.Project, 0, len(projects))
	for _, project := range projects {
		if userID != "" && project.CreatedBy != userID {
			continue
		}
		if status != "" && string(project.Status) != status {
			continue
		}
		filtered = append(filtered, project)
	}
	return filtered, nil
}

// GetByID retrieves a project by ID.
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	return s.projectRepo.GetByID(id)
}

// Create validates and stores a new recruiting project, generates
// collaboration requests for it and pre-selects initial collaborators.
// Request generation never fails the creation: the generator falls back to
// templates internally, and any residual generation error only logs.
func (s *ProjectService) Create(ctx context.Context, payload *models.CreateProjectRequest) (*models.Project, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	createdBy := payload.UserID
	if createdBy == "" {
		createdBy = "user-1"
	}

	project := &models.Project{
		ID:            uuid.New().String(),
		Title:         payload.Title,
		Type:          models.ProjectType(payload.Type),
		Description:   payload.Description,
		Budget:        payload.Budget,
		Timeline:      payload.Timeline,
		LookingFor:    payload.LookingFor,
		Status:        models.ProjectStatusRecruiting,
		Collaborators: 0,
		Requests:      0,
		Deadline:      payload.Deadline,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now().Format("2006-01-02"),
	}
	if project.LookingFor == nil {
		project.LookingFor = []string{}
	}

	if err := s.projectRepo.Insert(project); err != nil {
		return nil, err
	}

	requests, err := s.requestGenerator.Generate(ctx, project, createRequestCount)
	if err != nil {
		logger.WithError(err).WithField("project_id", project.ID).Error("Request generation failed during project creation")
	} else {
		logger.WithFields(map[string]interface{}{
			"project_id": project.ID,
			"requests":   len(requests),
		}).Info("Generated collaboration requests for new project")
	}

	// Initial collaborators are counted, not materialized as requests.
	project.Collaborators = s.initialCollaboratorCount(project)
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectService) initialCollaboratorCount(project *models.Project) int {
	collaborators, err := s.collaboratorRepo.List()
	if err != nil {
		return 0
	}

	available := make([]*models.Collaborator, 0, len(collaborators))
	for _, c := range collaborators {
		if c.Availability == models.AvailabilityAvailable {
			available = append(available, c)
		}
	}
	return len(s.matchService.Rank(project, available, initialCollaboratorPick))
}

// RemoveCollaborator decrements the project's Collaborators counter,
// floored at zero, and returns the updated project.
func (s *ProjectService) RemoveCollaborator(projectID, collaboratorID string) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}

	if project.Collaborators > 0 {
		project.Collaborators--
	}
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"project_id":      projectID,
		"collaborator_id": collaboratorID,
	}).Info("Removed collaborator from project")

	return project, nil
}
