package schedules

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
	Type        Type
	Description string

	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
}

func (s *Service) Create(ctx context.Context, reptileID, userID int64, in CreateInput) (Schedule, error) {
	if reptileID <= 0 || userID <= 0 {
		return Schedule{}, ErrInvalidInput
	}

	sc := Schedule{
		ReptileID:   reptileID,
		UserID:      userID,
		Type:        in.Type,
		Description: strings.TrimSpace(in.Description),
		Monday:      in.Monday,
		Tuesday:     in.Tuesday,
		Wednesday:   in.Wednesday,
		Thursday:    in.Thursday,
		Friday:      in.Friday,
		Saturday:    in.Saturday,
		Sunday:      in.Sunday,
		CreatedAt:   s.now(),
	}

	return s.repo.Create(ctx, sc)
}

func (s *Service) ListByReptile(ctx context.Context, reptileID int64) ([]Schedule, error) {
	return s.repo.ListByReptile(ctx, reptileID)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Schedule, error) {
	return s.repo.ListByUser(ctx, userID)
}
