package services

import (
	"errors"
	"time"

	"github.com/alimgiray/crewmatch/internal/models"
	"github.com/alimgiray/crewmatch/internal/repositories"
	"github.com/google/uuid"
)

// ErrAlreadyResolved is returned when accept/decline is called on a request
// that already reached a terminal status. Transitions are guarded so counter
// side effects are applied exactly once per request.
var ErrAlreadyResolved = errors.New("collaboration request already resolved")

// RequestService manages the collaboration request lifecycle:
// pending -> accepted | declined, both terminal.
type RequestService struct {
	requestRepo      repositories.CollaborationRequestRepository
	projectRepo      repositories.ProjectRepository
	collaboratorRepo repositories.CollaboratorRepository
}

func NewRequestService(
	requestRepo repositories.CollaborationRequestRepository,
	projectRepo repositories.ProjectRepository,
	collaboratorRepo repositories.CollaboratorRepository,
) *RequestService {
	return &RequestService{
		requestRepo:      requestRepo,
		projectRepo:      projectRepo,
		collaboratorRepo: collaboratorRepo,
	}
}

// Create creates a pending request with denormalized snapshots of the
// referenced collaborator and project, and bumps the project's Requests
// counter.
func (s *RequestService) Create(payload *models.CreateCollaborationRequest) (*models.CollaborationRequest, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	collaborator, err := s.collaboratorRepo.GetByID(payload.CollaboratorID)
	if err != nil {
		return nil, err
	}
	project, err := s.projectRepo.GetByID(payload.ProjectID)
	if err != nil {
		return nil, err
	}

	request := &models.CollaborationRequest{
		ID:             uuid.New().String(),
		ProjectID:      project.ID,
		CollaboratorID: collaborator.ID,
		Message:        payload.Message,
		Status:         models.RequestStatusPending,
		CreatedAt:      time.Now().Format("2006-01-02"),
		Collaborator:   collaborator.Snapshot(),
		Project:        project.Snapshot(),
		Type:           models.RequestDirectionReceived,
	}

	if err := s.requestRepo.Insert(request); err != nil {
		return nil, err
	}

	project.Requests++
	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}

	return request, nil
}

// List returns requests filtered by project and/or collaborator, each
// populated with snapshots. Requests that predate snapshot capture are
// populated from the live records, with a placeholder for dangling
// references.
func (s *RequestService) List(projectID, collaboratorID string) ([]*models.CollaborationRequest, error) {
	requests, err := s.requestRepo.List()
	if err != nil {
		return nil, err
	}

	filtered := make([]*models.CollaborationRequest, 0, len(requests))
	for _, request := range requests {
		if projectID != "" && request.ProjectID != projectID {
			continue
		}
		if collaboratorID != "" && request.CollaboratorID != collaboratorID {
			continue
		}
		s.populateSnapshots(request)
		filtered = append(filtered, request)
	}
	return filtered, nil
}

func (s *RequestService) populateSnapshots(request *models.CollaborationRequest) {
	if request.Collaborator == nil {
		if collaborator, err := s.collaboratorRepo.GetByID(request.CollaboratorID); err == nil {
			request.Collaborator = collaborator.Snapshot()
		} else {
			request.Collaborator = &models.CollaboratorSnapshot{
				ID:   "unknown",
				Name: "Unknown Collaborator",
				Role: "Unknown Role",
			}
		}
	}
	if request.Project == nil {
		if project, err := s.projectRepo.GetByID(request.ProjectID); err == nil {
			request.Project = project.Snapshot()
		} else {
			request.Project = &models.ProjectSnapshot{
				ID:    "unknown",
				Title: "Unknown Project",
				Type:  "unknown",
			}
		}
	}
}

// Accept transitions a pending request to accepted, incrementing the owning
// project's Collaborators counter and decrementing its Requests counter
// (floored at zero). Terminal requests are rejected.
func (s *RequestService) Accept(id string) (*models.CollaborationRequest, error) {
	return s.resolve(id, models.RequestStatusAccepted)
}

// Decline transitions a pending request to declined, decrementing the
// owning project's Requests counter (floored at zero). Terminal requests
// are rejected.
func (s *RequestService) Decline(id string) (*models.CollaborationRequest, error) {
	return s.resolve(id, models.RequestStatusDeclined)
}

func (s *RequestService) resolve(id string, status models.RequestStatus) (*models.CollaborationRequest, error) {
	request, err := s.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !request.IsPending() {
		return nil, ErrAlreadyResolved
	}

	request.Status = status
	if err := s.requestRepo.Update(request); err != nil {
		return nil, err
	}

	// Counter drift on a missing project is tolerated: the request itself
	// still resolves.
	project, err := s.projectRepo.GetByID(request.ProjectID)
	if err == nil {
		if status == models.RequestStatusAccepted {
			project.Collaborators++
		}
		if project.Requests > 0 {
			project.Requests--
		}
		if err := s.projectRepo.Update(project); err != nil {
			return nil, err
		}
	}

	return request, nil
}
