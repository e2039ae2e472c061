package repositories

import (
	"sync"

	"github.com/alimgiray/crewmatch/internal/models"
)

// MemoryProjectRepository is an order-preserving in-memory project store.
type MemoryProjectRepository struct {
	mu       sync.RWMutex
	projects []*models.Project
}

func NewMemoryProjectRepository(seed []*models.Project) *MemoryProjectRepository {
	repo := &MemoryProjectRepository{}
	for _, p := range seed {
		copied := *p
		repo.projects = append(repo.projects, &copied)
	}
	return repo
}

// List returns all projects in insertion order.
func (r *MemoryProjectRepository) List() ([]*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Project, 0, len(r.projects))
	for _, p := range r.projects {
		copied := *p
		result = append(result, &copied)
	}
	return result, nil
}

// GetByID retrieves a project by ID.
func (r *MemoryProjectRepository) GetByID(id string) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.projects {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Insert appends a new project.
func (r *MemoryProjectRepository) Insert(project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *project
	r.projects = append(r.projects, &copied)
	return nil
}

// Update replaces the stored project with the same ID.
func (r *MemoryProjectRepository) Update(project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.projects {
		if p.ID == project.ID {
			copied := *project
			r.projects[i] = &copied
			return nil
		}
	}
	return ErrNotFound
}
