package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"superhero-api/internal/domains/superhero/model"
)

var errDuplicateID = errors.New("duplicate superhero id")

// memoryRepository keeps the record set in an insertion-ordered slice. All
// access goes through the mutex: the original demo mutated a bare list with
// no locking, which is not acceptable once gin serves requests from
// concurrent goroutines.
type memoryRepository struct {
	mu     sync.RWMutex
	heroes []*model.Superhero
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Insert(_ context.Context, hero *model.Superhero) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.heroes {
		if h.ID == hero.ID {
			return model.NewStoreFailureError("insert", errDuplicateID)
		}
	}

	now := time.Now()
	stored := *hero
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.heroes = append(r.heroes, &stored)

	hero.CreatedAt = stored.CreatedAt
	hero.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]*model.Superhero, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Copy before sorting so callers never observe the backing slice.
	out := make([]*model.Superhero, len(r.heroes))
	for i, h := range r.heroes {
		clone := *h
		out[i] = &clone
	}

	// Stable keeps insertion order for equal scores.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].HumilityScore > out[j].HumilityScore
	})

	return out, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id string) (*model.Superhero, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.heroes {
		if h.ID == id {
			clone := *h
			return &clone, nil
		}
	}
	return nil, model.ErrSuperheroNotFound
}

func (r *memoryRepository) Update(_ context.Context, id string, req model.UpdateSuperheroRequest) (*model.Superhero, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.heroes {
		if h.ID != id {
			continue
		}
		if req.Name != nil {
			h.Name = *req.Name
		}
		if req.Superpower != nil {
			h.Superpower = *req.Superpower
		}
		if req.HumilityScore != nil {
			h.HumilityScore = *req.HumilityScore
		}
		h.UpdatedAt = time.Now()

		clone := *h
		return &clone, nil
	}
	return nil, model.ErrSuperheroNotFound
}

func (r *memoryRepository) Delete(_ context.Context, id string) (*model.Superhero, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.heroes {
		if h.ID == id {
			deleted := *h
			r.heroes = append(r.heroes[:i], r.heroes[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, model.ErrSuperheroNotFound
}

func (r *memoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.heroes), nil
}
