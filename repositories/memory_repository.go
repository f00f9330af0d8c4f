package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/voleisexta/roster-system/models"
)

// InMemoryConfirmationRepository keeps the roster in process memory. It backs
// local runs without a database and serves as the repository double in tests.
type InMemoryConfirmationRepository struct {
	mu            sync.Mutex
	confirmations []*models.Confirmation
	nextID        int
}

func NewInMemoryConfirmationRepository() *InMemoryConfirmationRepository {
	return &InMemoryConfirmationRepository{nextID: 1}
}

func (r *InMemoryConfirmationRepository) Insert(_ context.Context, c *models.Confirmation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.confirmations {
		if strings.EqualFold(existing.Name, c.Name) {
			return ErrConfirmationNameConflict
		}
	}

	c.ID = r.nextID
	r.nextID++
	if c.ConfirmedAt.IsZero() {
		c.ConfirmedAt = time.Now()
	}

	stored := *c
	r.confirmations = append(r.confirmations, &stored)
	return nil
}

func (r *InMemoryConfirmationRepository) ListActive(_ context.Context, excludeTest bool) ([]*models.Confirmation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Confirmation, 0, len(r.confirmations))
	for _, c := range r.confirmations {
		if excludeTest && c.IsTest {
			continue
		}
		copied := *c
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ConfirmedAt.Equal(out[j].ConfirmedAt) {
			return out[i].ConfirmedAt.Before(out[j].ConfirmedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *InMemoryConfirmationRepository) FindByID(_ context.Context, id int) (*models.Confirmation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.confirmations {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, ErrConfirmationNotFound
}

func (r *InMemoryConfirmationRepository) DeleteByID(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.confirmations {
		if c.ID == id {
			r.confirmations = append(r.confirmations[:i], r.confirmations[i+1:]...)
			return nil
		}
	}
	return ErrConfirmationNotFound
}

func (r *InMemoryConfirmationRepository) DeleteByName(_ context.Context, name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.confirmations[:0]
	deleted := 0
	for _, c := range r.confirmations {
		if strings.EqualFold(c.Name, name) {
			deleted++
			continue
		}
		kept = append(kept, c)
	}
	r.confirmations = kept
	return deleted, nil
}

func (r *InMemoryConfirmationRepository) DeleteAll(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := len(r.confirmations)
	r.confirmations = nil
	return deleted, nil
}

func (r *InMemoryConfirmationRepository) CountActive(_ context.Context, excludeTest bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, c := range r.confirmations {
		if excludeTest && c.IsTest {
			continue
		}
		count++
	}
	return count, nil
}
