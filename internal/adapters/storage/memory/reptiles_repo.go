package memory

import (
	"context"
	"sort"
	"sync"

	"reptile-husbandry/internal/domain/reptiles"
)

type reptilesRepo struct {
	mu     sync.RWMutex
	byID   map[int64]reptiles.Reptile
	nextID int64
}

func NewReptilesRepo() reptiles.Repository {
	return &reptilesRepo{
		byID:   make(map[int64]reptiles.Reptile),
		nextID: 1,
	}
}

func (r *reptilesRepo) Create(ctx context.Context, rp reptiles.Reptile) (reptiles.Reptile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rp.ID = r.nextID
	r.nextID++
	r.byID[rp.ID] = rp
	return rp, nil
}

func (r *reptilesRepo) GetByID(ctx context.Context, id int64) (reptiles.Reptile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rp, ok := r.byID[id]
	if !ok {
		return reptiles.Reptile{}, ErrNotFound
	}
	return rp, nil
}

func (r *reptilesRepo) ListByOwner(ctx context.Context, ownerUserID int64) ([]reptiles.Reptile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reptiles.Reptile, 0)
	for _, rp := range r.byID {
		if rp.OwnerUserID == ownerUserID {
			out = append(out, rp)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *reptilesRepo) Update(ctx context.Context, rp reptiles.Reptile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[rp.ID]; !ok {
		return ErrNotFound
	}
	r.byID[rp.ID] = rp
	return nil
}

func (r *reptilesRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
