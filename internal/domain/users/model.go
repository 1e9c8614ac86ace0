package users

import "time"

// User es una cuenta del sistema. Es dueña de cero o más reptiles
// y de los schedules que creó.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string // único
	PasswordHash string

	CreatedAt time.Time
}
