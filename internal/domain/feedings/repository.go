package feedings

import "context"

type Repository interface {
	Create(ctx context.Context, f Feeding) (Feeding, error)
	// ListByReptile devuelve en orden de inserción (id asc).
	ListByReptile(ctx context.Context, reptileID int64) ([]Feeding, error)
}
