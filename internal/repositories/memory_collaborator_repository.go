package repositories

import (
	"sync"

	"github.com/alimgiray/crewmatch/internal/models"
)

// MemoryCollaboratorRepository is an order-preserving in-memory collaborator
// store. Reads return copies so callers can annotate match scores without
// mutating stored records.
type MemoryCollaboratorRepository struct {
	mu            sync.RWMutex
	collaborators []*models.Collaborator
}

func NewMemoryCollaboratorRepository(seed []*models.Collaborator) *MemoryCollaboratorRepository {
	repo := &MemoryCollaboratorRepository{}
	for _, c := range seed {
		copied := *c
		repo.collaborators = append(repo.collaborators, &copied)
	}
	return repo
}

// List returns all collaborators in insertion order.
func (r *MemoryCollaboratorRepository) List() ([]*models.Collaborator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Collaborator, 0, len(r.collaborators))
	for _, c := range r.collaborators {
		copied := *c
		result = append(result, &copied)
	}
	return result, nil
}

// GetByID retrieves a collaborator by ID.
func (r *MemoryCollaboratorRepository) GetByID(id string) (*models.Collaborator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.collaborators {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Insert appends a new collaborator.
func (r *MemoryCollaboratorRepository) Insert(collaborator *models.Collaborator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *collaborator
	r.collaborators = append(r.collaborators, &copied)
	return nil
}

// Update replaces the stored collaborator with the same ID.
func (r *MemoryCollaboratorRepository) Update(collaborator *models.Collaborator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.collaborators {
		if c.ID == collaborator.ID {
			copied := *collaborator
			r.collaborators[i] = &copied
			return nil
		}
	}
	return ErrNotFound
}
