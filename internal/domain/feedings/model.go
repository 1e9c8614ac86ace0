package feedings

import "time"

// Feeding registra qué comió un reptil. Append-only: no hay rutas de
// update ni delete.
type Feeding struct {
	ID        int64
	ReptileID int64

	FoodItem string

	CreatedAt time.Time
}
