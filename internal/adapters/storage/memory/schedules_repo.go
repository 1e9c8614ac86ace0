package memory

import (
	"context"
	"sort"
	"sync"

	"reptile-husbandry/internal/domain/schedules"
)

type schedulesRepo struct {
	mu     sync.RWMutex
	byID   map[int64]schedules.Schedule
	nextID int64
}

func NewSchedulesRepo() schedules.Repository {
	return &schedulesRepo{
		byID:   make(map[int64]schedules.Schedule),
		nextID: 1,
	}
}

func (r *schedulesRepo) Create(ctx context.Context, sc schedules.Schedule) (schedules.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sc.ID = r.nextID
	r.nextID++
	r.byID[sc.ID] = sc
	return sc, nil
}

func (r *schedulesRepo) ListByReptile(ctx context.Context, reptileID int64) ([]schedules.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedules.Schedule, 0)
	for _, sc := range r.byID {
		if sc.ReptileID == reptileID {
			out = append(out, sc)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *schedulesRepo) ListByUser(ctx context.Context, userID int64) ([]schedules.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedules.Schedule, 0)
	for _, sc := range r.byID {
		if sc.UserID == userID {
			out = append(out, sc)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
