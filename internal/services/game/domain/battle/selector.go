package battle

import "github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"

// ChooseMove picks the strictly most powerful Physical or Special move the
// combatant knows, keeping the earliest on ties. When no damaging move is
// known the first listed move is returned.
func ChooseMove(c *catalog.Catalog, combatant Combatant) string {
	if len(combatant.Moves) == 0 {
		return ""
	}
	best := combatant.Moves[0]
	bestPower := -1
	for _, id := range combatant.Moves {
		move, err := c.LookupMove(id)
		if err != nil {
			continue
		}
		if move.Category.Damaging() && move.Power > bestPower {
			bestPower = move.Power
			best = id
		}
	}
	return best
}
