package battle

import "fmt"

// Condition is the status tag carried by a combatant.
type Condition string

const (
	Healthy Condition = "Healthy"
	Burn    Condition = "Burn"
	Poison  Condition = "Poison"
	Stunned Condition = "Stunned"
)

// Durations, in turns, of newly applied statuses.
const (
	BurnTurns   = 3
	PoisonTurns = 5
	StunTurns   = 1
)

// Status is a combatant's current affliction. Turns is positive whenever
// Condition is not Healthy.
type Status struct {
	Condition Condition
	Turns     int
}

// HealthyStatus is the status every combatant starts with.
func HealthyStatus() Status {
	return Status{Condition: Healthy}
}

// IsHealthy reports whether no status is active.
func (s Status) IsHealthy() bool {
	return s.Condition == Healthy || s.Condition == ""
}

// consume spends one turn of the status and reports whether it expired.
func (s *Status) consume() bool {
	if s.IsHealthy() {
		return false
	}
	s.Turns--
	if s.Turns <= 0 {
		*s = HealthyStatus()
		return true
	}
	return false
}

// tick applies the start-of-turn effect of c's status and returns the log
// lines it produced. Burn and Poison deal a fraction of max hp and then lose
// one turn; Stunned is consumed when the combatant tries to act.
func tick(c *Combatant) []string {
	var divisor int
	var label string
	switch c.Status.Condition {
	case Burn:
		divisor, label = 16, "burn"
	case Poison:
		divisor, label = 12, "poison"
	default:
		return nil
	}

	dmg := max(1, c.MaxHP/divisor)
	c.takeDamage(dmg)
	lines := []string{fmt.Sprintf("%s takes %d %s damage (HP: %d/%d).", c.Name, dmg, label, c.HP, c.MaxHP)}

	if c.Status.consume() {
		lines = append(lines, fmt.Sprintf("%s is no longer %s.", c.Name, pastTense(label)))
	}
	return lines
}

func pastTense(label string) string {
	switch label {
	case "burn":
		return "burned"
	case "poison":
		return "poisoned"
	}
	return label
}
