package battle

import (
	"math/rand"

	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
)

// Random damage factor bounds.
const (
	minDamageFactor = 0.85
	maxDamageFactor = 1.0
)

// BaseDamage is ((2*level/5 + 2) * power * atk / max(1, def) / 50) + 2.
func BaseDamage(level, power, atk, def int) float64 {
	return (2*float64(level)/5+2)*float64(power)*float64(atk)/float64(max(1, def))/50 + 2
}

// Damage computes the hp lost by defender when attacker uses move. Status
// moves and zero-power moves deal nothing and draw no random number; every
// other move deals at least 1.
func Damage(attacker, defender *Combatant, move catalog.MoveDefinition, rng *rand.Rand) int {
	if !move.Category.Damaging() || move.Power <= 0 {
		return 0
	}
	atk, def := attacker.Attack, defender.Defense
	if move.Category == catalog.CategorySpecial {
		atk, def = attacker.SpAttack, defender.SpDefense
	}
	base := BaseDamage(attacker.Level, move.Power, atk, def)
	factor := minDamageFactor + rng.Float64()*(maxDamageFactor-minDamageFactor)
	return max(1, int(base*factor))
}
