package users

import "context"

type Repository interface {
	// Create persiste el usuario y devuelve la copia con ID asignado.
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
}
