package catalog

// Category classifies how a move deals damage.
type Category string

const (
	CategoryPhysical Category = "Physical"
	CategorySpecial  Category = "Special"
	CategoryStatus   Category = "Status"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryPhysical, CategorySpecial, CategoryStatus:
		return true
	}
	return false
}

// Damaging reports whether moves of this category deal direct damage.
func (c Category) Damaging() bool {
	return c == CategoryPhysical || c == CategorySpecial
}

// Stats are the six base values scaled per level.
type Stats struct {
	HP        int `json:"hp"`
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"sp_attack"`
	SpDefense int `json:"sp_defense"`
	Speed     int `json:"speed"`
}

// DefaultBaseLevel is the base level of a template that omits one.
const DefaultBaseLevel = 50

// NPCTemplate is the reference definition of a character.
type NPCTemplate struct {
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Level int      `json:"level"`
	Stats Stats    `json:"stats"`
	Moves []string `json:"moves"`
}

// MoveDefinition is the reference definition of a move.
type MoveDefinition struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	Category     Category `json:"category"`
	Power        int      `json:"power"`
	BurnChance   float64  `json:"burn_chance,omitempty"`
	PoisonChance float64  `json:"poison_chance,omitempty"`
	StunChance   float64  `json:"stun_chance,omitempty"`
}

// DisplayName returns the move's label for battle logs.
func (m MoveDefinition) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}
