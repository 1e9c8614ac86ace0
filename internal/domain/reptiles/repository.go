package reptiles

import "context"

type Repository interface {
	// Create persiste el reptil y devuelve la copia con ID asignado.
	Create(ctx context.Context, rp Reptile) (Reptile, error)
	GetByID(ctx context.Context, id int64) (Reptile, error)
	ListByOwner(ctx context.Context, ownerUserID int64) ([]Reptile, error)
	Update(ctx context.Context, rp Reptile) error
	Delete(ctx context.Context, id int64) error
}
