package authz

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrUnauthorized cubre identidad ausente, recurso inexistente y
	// recurso de otro usuario. No se distinguen a propósito: distinguirlos
	// filtraría la existencia de recursos ajenos.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidID es un id de ruta que no parsea como entero positivo.
	ErrInvalidID = errors.New("invalid id")
)

// Owned es cualquier entidad con dueño directo.
type Owned interface {
	OwnedBy() int64
}

// ParseID parsea un parámetro de ruta como id positivo.
// Cero cuenta como inválido (el origen lo trataba como falsy).
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// AuthorizeParent es el único punto de chequeo de la cadena de ownership:
//  1. identidad ausente (userID <= 0) => ErrUnauthorized
//  2. rawID no parsea como entero positivo => ErrInvalidID
//  3. el parent no existe, no se pudo leer, o su dueño no es userID
//     => ErrUnauthorized (conflado, ver arriba)
//
// Si todo pasa devuelve el parent verificado, listo para la operación.
func AuthorizeParent[E Owned](ctx context.Context, userID int64, rawID string, lookup func(context.Context, int64) (E, error)) (E, error) {
	var zero E

	if userID <= 0 {
		return zero, ErrUnauthorized
	}

	id, err := ParseID(rawID)
	if err != nil {
		return zero, err
	}

	parent, err := lookup(ctx, id)
	if err != nil {
		return zero, ErrUnauthorized
	}
	if parent.OwnedBy() != userID {
		return zero, ErrUnauthorized
	}

	return parent, nil
}

// OneOf responde si value está dentro del allow-list.
func OneOf[T ~string](value T, allowed ...T) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
