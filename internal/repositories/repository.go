// Package repositories owns the three record collections. Everything above
// this layer talks to the interfaces below, so the in-memory demo store can
// be swapped for the SQLite backend without touching scoring or generation
// logic.
package repositories

import (
	"errors"

	"github.com/alimgiray/crewmatch/internal/models"
)

// ErrNotFound is returned when a record id does not resolve.
var ErrNotFound = errors.New("record not found")

// CollaboratorRepository stores collaborator profiles.
type CollaboratorRepository interface {
	List() ([]*models.Collaborator, error)
	GetByID(id string) (*models.Collaborator, error)
	Insert(collaborator *models.Collaborator) error
	Update(collaborator *models.Collaborator) error
}

// ProjectRepository stores projects.
type ProjectRepository interface {
	List() ([]*models.Project, error)
	GetByID(id string) (*models.Project, error)
	Insert(project *models.Project) error
	Update(project *models.Project) error
}

// CollaborationRequestRepository stores collaboration requests. Requests are
// append-only apart from status transitions; they are never deleted.
type CollaborationRequestRepository interface {
	List() ([]*models.CollaborationRequest, error)
	GetByID(id string) (*models.CollaborationRequest, error)
	Insert(request *models.CollaborationRequest) error
	Update(request *models.CollaborationRequest) error
}
