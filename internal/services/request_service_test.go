package services

import (
	"testing"

	"github.com/alimgiray/crewmatch/internal/models"
	"github.com/alimgiray/crewmatch/internal/repositories"
	"github.com/stretchr/testify/assert"
)

func requestServiceFixture() (*RequestService, repositories.ProjectRepository) {
	collaborators := []*models.Collaborator{
		{ID: "c-1", Name: "Maya Chen", Role: "Cinematographer", Avatar: "/avatars/maya.jpg"},
	}
	projects := []*models.Project{
		{ID: "p-1", Title: "Harbor Lights", Type: models.ProjectTypeShortFilm, Status: models.ProjectStatusRecruiting, Requests: 1, Collaborators: 0},
	}
	requests := []*models.CollaborationRequest{
		{ID: "r-1", ProjectID: "p-1", CollaboratorID: "c-1", Message: "hello", Status: models.RequestStatusPending},
	}

	projectRepo := repositories.NewMemoryProjectRepository(projects)
	service := NewRequestService(
		repositories.NewMemoryCollaborationRequestRepository(requests),
		projectRepo,
		repositories.NewMemoryCollaboratorRepository(collaborators),
	)
	return service, projectRepo
}

func TestCreateRequest(t *testing.T) {
	service, projectRepo := requestServiceFixture()

	request, err := service.Create(&models.CreateCollaborationRequest{
		ProjectID:      "p-1",
		CollaboratorID: "c-1",
		Message:        "I'd love to shoot this.",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, request.ID)
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Equal(t, "Maya Chen", request.Collaborator.Name)
	assert.Equal(t, "Harbor Lights", request.Project.Title)

	project, err := projectRepo.GetByID("p-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, project.Requests)
}

func TestCreateRequestValidation(t *testing.T) {
	service, _ := requestServiceFixture()

	tests := []struct {
		name    string
		payload *models.CreateCollaborationRequest
	}{
		{"missing project", &models.CreateCollaborationRequest{CollaboratorID: "c-1", Message: "hi"}},
		{"missing collaborator", &models.CreateCollaborationRequest{ProjectID: "p-1", Message: "hi"}},
		{"missing message", &models.CreateCollaborationRequest{ProjectID: "p-1", CollaboratorID: "c-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(tt.payload)
			var validationErr *models.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestCreateRequestUnknownReferences(t *testing.T) {
	service, _ := requestServiceFixture()

	_, err := service.Create(&models.CreateCollaborationRequest{
		ProjectID: "p-1", CollaboratorID: "nobody", Message: "hi",
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = service.Create(&models.CreateCollaborationRequest{
		ProjectID: "missing", CollaboratorID: "c-1", Message: "hi",
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestAcceptRequest(t *testing.T) {
	service, projectRepo := requestServiceFixture()

	request, err := service.Accept("r-1")

	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, request.Status)

	project, err := projectRepo.GetByID("p-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, project.Collaborators)
	assert.Equal(t, 0, project.Requests)
}

func TestDeclineRequest(t *testing.T) {
	service, projectRepo := requestServiceFixture()

	request, err := service.Decline("r-1")

	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusDeclined, request.Status)

	project, err := projectRepo.GetByID("p-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, project.Collaborators)
	assert.Equal(t, 0, project.Requests)
}

func TestResolveIsTerminal(t *testing.T) {
	service, projectRepo := requestServiceFixture()

	_, err := service.Accept("r-1")
	assert.NoError(t, err)

	// A second resolution attempt, in either direction, must fail and must
	// not touch the counters again.
	_, err = service.Accept("r-1")
	assert.ErrorIs(t, err, ErrAlreadyResolved)
	_, err = service.Decline("r-1")
	assert.ErrorIs(t, err, ErrAlreadyResolved)

	project, err := projectRepo.GetByID("p-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, project.Collaborators)
	assert.Equal(t, 0, project.Requests)
}

func TestResolveUnknownRequest(t *testing.T) {
	service, _ := requestServiceFixture()

	_, err := service.Accept("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestRequestsCounterFlooredAtZero(t *testing.T) {
	collaborators := []*models.Collaborator{{ID: "c-1", Name: "Maya Chen"}}
	// Counter already drifted to zero while a pending request exists.
	projects := []*models.Project{{ID: "p-1", Title: "Harbor Lights", Requests: 0}}
	requests := []*models.CollaborationRequest{
		{ID: "r-1", ProjectID: "p-1", CollaboratorID: "c-1", Status: models.RequestStatusPending},
	}

	projectRepo := repositories.NewMemoryProjectRepository(projects)
	service := NewRequestService(
		repositories.NewMemoryCollaborationRequestRepository(requests),
		projectRepo,
		repositories.NewMemoryCollaboratorRepository(collaborators),
	)

	_, err := service.Decline("r-1")
	assert.NoError(t, err)

	project, err := projectRepo.GetByID("p-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, project.Requests)
}

func TestListRequestsFilters(t *testing.T) {
	collaborators := []*models.Collaborator{
		{ID: "c-1", Name: "Maya Chen", Role: "Cinematographer"},
		{ID: "c-2", Name: "Jordan Rivera", Role: "Sound Engineer"},
	}
	projects := []*models.Project{
		{ID: "p-1", Title: "Harbor Lights", Type: models.ProjectTypeShortFilm},
		{ID: "p-2", Title: "Night Sessions", Type: models.ProjectTypeMusicVideo},
	}
	requests := []*models.CollaborationRequest{
		{ID: "r-1", ProjectID: "p-1", CollaboratorID: "c-1", Status: models.RequestStatusPending},
		{ID: "r-2", ProjectID: "p-1", CollaboratorID: "c-2", Status: models.RequestStatusPending},
		{ID: "r-3", ProjectID: "p-2", CollaboratorID: "c-1", Status: models.RequestStatusAccepted},
	}

	service := NewRequestService(
		repositories.NewMemoryCollaborationRequestRepository(requests),
		repositories.NewMemoryProjectRepository(projects),
		repositories.NewMemoryCollaboratorRepository(collaborators),
	)

	all, err := service.List("", "")
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	// Snapshots are filled from the live records when missing.
	assert.Equal(t, "Maya Chen", all[0].Collaborator.Name)
	assert.Equal(t, "Harbor Lights", all[0].Project.Title)

	byProject, err := service.List("p-1", "")
	assert.NoError(t, err)
	assert.Len(t, byProject, 2)

	byCollaborator, err := service.List("", "c-1")
	assert.NoError(t, err)
	assert.Len(t, byCollaborator, 2)

	both, err := service.List("p-2", "c-1")
	assert.NoError(t, err)
	assert.Len(t, both, 1)
	assert.Equal(t, "r-3", both[0].ID)
}

func TestListRequestsDanglingReference(t *testing.T) {
	requests := []*models.CollaborationRequest{
		{ID: "r-1", ProjectID: "gone", CollaboratorID: "gone", Status: models.RequestStatusPending},
	}

	service := NewRequestService(
		repositories.NewMemoryCollaborationRequestRepository(requests),
		repositories.NewMemoryProjectRepository(nil),
		repositories.NewMemoryCollaboratorRepository(nil),
	)

	listed, err := service.List("", "")
	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, "Unknown Collaborator", listed[0].Collaborator.Name)
	assert.Equal(t, "Unknown Project", listed[0].Project.Title)
}
