package memory

import (
	"context"
	"sort"
	"sync"

	"reptile-husbandry/internal/domain/feedings"
)

type feedingsRepo struct {
	mu     sync.RWMutex
	byID   map[int64]feedings.Feeding
	nextID int64
}

func NewFeedingsRepo() feedings.Repository {
	return &feedingsRepo{
		byID:   make(map[int64]feedings.Feeding),
		nextID: 1,
	}
}

func (r *feedingsRepo) Create(ctx context.Context, f feedings.Feeding) (feedings.Feeding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f.ID = r.nextID
	r.nextID++
	r.byID[f.ID] = f
	return f, nil
}

func (r *feedingsRepo) ListByReptile(ctx context.Context, reptileID int64) ([]feedings.Feeding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]feedings.Feeding, 0)
	for _, f := range r.byID {
		if f.ReptileID == reptileID {
			out = append(out, f)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
