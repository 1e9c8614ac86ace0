package reptiles

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

type CreateInput struct {
	Species Species
	Name    string
	Sex     Sex
}

func (s *Service) Create(ctx context.Context, ownerUserID int64, in CreateInput) (Reptile, error) {
	if ownerUserID <= 0 {
		return Reptile{}, ErrInvalidInput
	}

	now := s.now()
	rp := Reptile{
		OwnerUserID: ownerUserID,
		Species:     in.Species,
		Name:        strings.TrimSpace(in.Name),
		Sex:         in.Sex,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.repo.Create(ctx, rp)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Reptile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID int64) ([]Reptile, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// Update reemplaza los campos mutables (species, name, sex) del reptil
// ya autorizado por la policy.
func (s *Service) Update(ctx context.Context, current Reptile, in CreateInput) (Reptile, error) {
	current.Species = in.Species
	current.Name = strings.TrimSpace(in.Name)
	current.Sex = in.Sex
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Reptile{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
