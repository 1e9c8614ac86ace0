package schedules

import "context"

type Repository interface {
	Create(ctx context.Context, sc Schedule) (Schedule, error)
	ListByReptile(ctx context.Context, reptileID int64) ([]Schedule, error)
	ListByUser(ctx context.Context, userID int64) ([]Schedule, error)
}
