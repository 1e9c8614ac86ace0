package schedules

import "time"

// Type define los tipos de schedule soportados.
// @Enum feed, record, clean
type Type string

const (
	TypeFeed   Type = "feed"
	TypeRecord Type = "record"
	TypeClean  Type = "clean"
)

var AllTypes = []Type{TypeFeed, TypeRecord, TypeClean}

// Schedule es una rutina de cuidado recurrente: pertenece a un reptil
// y al usuario que la creó, con un flag independiente por día de la
// semana. Append-only.
type Schedule struct {
	ID        int64
	ReptileID int64
	UserID    int64

	Type        Type
	Description string

	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool

	CreatedAt time.Time
}
