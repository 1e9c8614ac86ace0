package husbandry

import "time"

// Record es una medición puntual del reptil al momento de crearla.
// Append-only, igual que feedings.
type Record struct {
	ID        int64
	ReptileID int64

	Length      float64
	Weight      float64
	Temperature float64
	Humidity    float64

	CreatedAt time.Time
}
