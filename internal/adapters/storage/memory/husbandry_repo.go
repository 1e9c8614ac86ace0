package memory

import (
	"context"
	"sort"
	"sync"

	"reptile-husbandry/internal/domain/husbandry"
)

type husbandryRepo struct {
	mu     sync.RWMutex
	byID   map[int64]husbandry.Record
	nextID int64
}

func NewHusbandryRepo() husbandry.Repository {
	return &husbandryRepo{
		byID:   make(map[int64]husbandry.Record),
		nextID: 1,
	}
}

func (r *husbandryRepo) Create(ctx context.Context, rec husbandry.Record) (husbandry.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec.ID = r.nextID
	r.nextID++
	r.byID[rec.ID] = rec
	return rec, nil
}

func (r *husbandryRepo) ListByReptile(ctx context.Context, reptileID int64) ([]husbandry.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]husbandry.Record, 0)
	for _, rec := range r.byID {
		if rec.ReptileID == reptileID {
			out = append(out, rec)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
