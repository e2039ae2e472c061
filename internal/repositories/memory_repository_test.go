package repositories

import (
	"sync"
	"testing"

	"github.com/alimgiray/crewmatch/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMemoryCollaboratorRepository(t *testing.T) {
	repo := NewMemoryCollaboratorRepository([]*models.Collaborator{
		{ID: "c-1", Name: "Maya Chen"},
		{ID: "c-2", Name: "Jordan Rivera"},
	})

	listed, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, "c-1", listed[0].ID)
	assert.Equal(t, "c-2", listed[1].ID)

	got, err := repo.GetByID("c-2")
	assert.NoError(t, err)
	assert.Equal(t, "Jordan Rivera", got.Name)

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Insert(&models.Collaborator{ID: "c-3", Name: "Sam Okafor"})
	assert.NoError(t, err)
	listed, _ = repo.List()
	assert.Len(t, listed, 3)
	assert.Equal(t, "c-3", listed[2].ID)

	err = repo.Update(&models.Collaborator{ID: "c-1", Name: "Maya C."})
	assert.NoError(t, err)
	got, _ = repo.GetByID("c-1")
	assert.Equal(t, "Maya C.", got.Name)

	err = repo.Update(&models.Collaborator{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryCollaboratorRepository([]*models.Collaborator{
		{ID: "c-1", Name: "Maya Chen"},
	})

	got, err := repo.GetByID("c-1")
	assert.NoError(t, err)

	// Mutating a returned record must not leak into the store.
	got.MatchScore = 99
	got.Name = "changed"

	fresh, err := repo.GetByID("c-1")
	assert.NoError(t, err)
	assert.Equal(t, "Maya Chen", fresh.Name)
	assert.Equal(t, 0, fresh.MatchScore)
}

func TestMemoryProjectRepository(t *testing.T) {
	repo := NewMemoryProjectRepository([]*models.Project{
		{ID: "p-1", Title: "Harbor Lights", Requests: 1},
	})

	project, err := repo.GetByID("p-1")
	assert.NoError(t, err)

	project.Requests = 5
	err = repo.Update(project)
	assert.NoError(t, err)

	updated, err := repo.GetByID("p-1")
	assert.NoError(t, err)
	assert.Equal(t, 5, updated.Requests)

	err = repo.Update(&models.Project{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRequestRepository(t *testing.T) {
	repo := NewMemoryCollaborationRequestRepository(nil)

	listed, err := repo.List()
	assert.NoError(t, err)
	assert.Empty(t, listed)

	err = repo.Insert(&models.CollaborationRequest{ID: "r-1", Status: models.RequestStatusPending})
	assert.NoError(t, err)

	request, err := repo.GetByID("r-1")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)

	request.Status = models.RequestStatusAccepted
	err = repo.Update(request)
	assert.NoError(t, err)

	updated, err := repo.GetByID("r-1")
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, updated.Status)
}

func TestMemoryRepositoryConcurrentAccess(t *testing.T) {
	repo := NewMemoryCollaborationRequestRepository(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = repo.Insert(&models.CollaborationRequest{ID: string(rune('a' + n)), Status: models.RequestStatusPending})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = repo.List()
		}()
	}
	wg.Wait()

	listed, err := repo.List()
	assert.NoError(t, err)
	assert.Len(t, listed, 20)
}
