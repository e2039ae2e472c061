package repositories

import (
	"sync"

	"github.com/alimgiray/crewmatch/internal/models"
)

// MemoryCollaborationRequestRepository is an order-preserving in-memory
// request store.
type MemoryCollaborationRequestRepository struct {
	mu       sync.RWMutex
	requests []*models.CollaborationRequest
}

func NewMemoryCollaborationRequestRepository(seed []*models.CollaborationRequest) *MemoryCollaborationRequestRepository {
	repo := &MemoryCollaborationRequestRepository{}
	for _, req := range seed {
		copied := *req
		repo.requests = append(repo.requests, &copied)
	}
	return repo
}

// List returns all requests in insertion order.
func (r *MemoryCollaborationRequestRepository) List() ([]*models.CollaborationRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.CollaborationRequest, 0, len(r.requests))
	for _, req := range r.requests {
		copied := *req
		result = append(result, &copied)
	}
	return result, nil
}

// GetByID retrieves a request by ID.
func (r *MemoryCollaborationRequestRepository) GetByID(id string) (*models.CollaborationRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, req := range r.requests {
		if req.ID == id {
			copied := *req
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Insert appends a new request.
func (r *MemoryCollaborationRequestRepository) Insert(request *models.CollaborationRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *request
	r.requests = append(r.requests, &copied)
	return nil
}

// Update replaces the stored request with the same ID.
func (r *MemoryCollaborationRequestRepository) Update(request *models.CollaborationRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, req := range r.requests {
		if req.ID == request.ID {
			copied := *request
			r.requests[i] = &copied
			return nil
		}
	}
	return ErrNotFound
}
