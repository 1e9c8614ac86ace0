package feedings

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, reptileID int64, foodItem string) (Feeding, error) {
	if reptileID <= 0 {
		return Feeding{}, ErrInvalidInput
	}

	f := Feeding{
		ReptileID: reptileID,
		FoodItem:  strings.TrimSpace(foodItem),
		CreatedAt: s.now(),
	}

	return s.repo.Create(ctx, f)
}

func (s *Service) ListByReptile(ctx context.Context, reptileID int64) ([]Feeding, error) {
	return s.repo.ListByReptile(ctx, reptileID)
}
