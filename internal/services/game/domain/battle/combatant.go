package battle

import (
	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
)

// hpBonus is added to scaled max hp after truncation.
const hpBonus = 10

// Combatant is a battle-ready NPC owned by a single run.
type Combatant struct {
	Key       string
	Name      string
	Level     int
	MaxHP     int
	HP        int
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int
	Moves     []string
	Status    Status
}

// NewCombatant builds a combatant from the catalog entry for key, scaling
// every stat from the template's base level to level. Any level is
// accepted; zero or negative levels yield degenerate but consistent stats.
func NewCombatant(c *catalog.Catalog, key string, level int) (Combatant, error) {
	npc, err := c.LookupNPC(key)
	if err != nil {
		return Combatant{}, err
	}

	scale := func(base int) int {
		return ScaleStat(base, level, npc.Level)
	}
	hp := scale(npc.Stats.HP) + hpBonus

	return Combatant{
		Key:       npc.Key,
		Name:      npc.Name,
		Level:     level,
		MaxHP:     hp,
		HP:        hp,
		Attack:    scale(npc.Stats.Attack),
		Defense:   scale(npc.Stats.Defense),
		SpAttack:  scale(npc.Stats.SpAttack),
		SpDefense: scale(npc.Stats.SpDefense),
		Speed:     scale(npc.Stats.Speed),
		Moves:     npc.Moves,
		Status:    HealthyStatus(),
	}, nil
}

// ScaleStat applies base * (1 + (level - baseLevel) / 100), truncated
// toward zero.
func ScaleStat(base, level, baseLevel int) int {
	return int(float64(base) * (1 + float64(level-baseLevel)/100))
}

// Alive reports whether the combatant still has hit points.
func (c *Combatant) Alive() bool {
	return c.HP > 0
}

// EffectiveSpeed is the speed used for turn order; stunned combatants move
// at half speed.
func (c *Combatant) EffectiveSpeed() float64 {
	speed := float64(c.Speed)
	if c.Status.Condition == Stunned {
		speed *= 0.5
	}
	return speed
}

func (c *Combatant) takeDamage(dmg int) {
	c.HP = max(0, c.HP-dmg)
}

// Snapshot is the externally visible state of a combatant.
type Snapshot struct {
	Key    string    `json:"key"`
	Name   string    `json:"name"`
	Level  int       `json:"level"`
	HP     int       `json:"hp"`
	MaxHP  int       `json:"max_hp"`
	Status Condition `json:"status"`
}

// Snapshot captures the combatant's current state.
func (c *Combatant) Snapshot() Snapshot {
	status := c.Status.Condition
	if status == "" {
		status = Healthy
	}
	return Snapshot{
		Key:    c.Key,
		Name:   c.Name,
		Level:  c.Level,
		HP:     c.HP,
		MaxHP:  c.MaxHP,
		Status: status,
	}
}
