package husbandry

import "context"

type Repository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	ListByReptile(ctx context.Context, reptileID int64) ([]Record, error)
}
