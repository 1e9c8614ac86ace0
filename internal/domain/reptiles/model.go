package reptiles

import "time"

// Species define las especies soportadas.
// @Enum ball_python, king_snake, corn_snake, redtail_boa
type Species string

const (
	SpeciesBallPython Species = "ball_python"
	SpeciesKingSnake  Species = "king_snake"
	SpeciesCornSnake  Species = "corn_snake"
	SpeciesRedtailBoa Species = "redtail_boa"
)

// AllSpecies es el allow-list para validación.
var AllSpecies = []Species{SpeciesBallPython, SpeciesKingSnake, SpeciesCornSnake, SpeciesRedtailBoa}

// Sex define el sexo del reptil.
// @Enum m, f
type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

var AllSexes = []Sex{SexMale, SexFemale}

// Reptile pertenece a exactamente un usuario y es el parent de
// feedings, husbandry records y schedules.
type Reptile struct {
	ID          int64
	OwnerUserID int64

	Species Species
	Name    string
	Sex     Sex

	CreatedAt time.Time
	UpdatedAt time.Time
}
