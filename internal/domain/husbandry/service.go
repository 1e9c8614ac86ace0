package husbandry

import (
	"context"
	"errors"
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

type CreateInput struct {
	Length      float64
	Weight      float64
	Temperature float64
	Humidity    float64
}

func (s *Service) Create(ctx context.Context, reptileID int64, in CreateInput) (Record, error) {
	if reptileID <= 0 {
		return Record{}, ErrInvalidInput
	}

	rec := Record{
		ReptileID:   reptileID,
		Length:      in.Length,
		Weight:      in.Weight,
		Temperature: in.Temperature,
		Humidity:    in.Humidity,
		CreatedAt:   s.now(),
	}

	return s.repo.Create(ctx, rec)
}

func (s *Service) ListByReptile(ctx context.Context, reptileID int64) ([]Record, error) {
	return s.repo.ListByReptile(ctx, reptileID)
}
