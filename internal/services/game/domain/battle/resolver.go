package battle

import (
	"fmt"
	"math/rand"

	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
)

// resolver owns the mutable state of a single run.
type resolver struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
	a, b    *Combatant
	log     []string
	actions []Action
}

func newResolver(c *catalog.Catalog, rng *rand.Rand, a, b *Combatant) *resolver {
	return &resolver{
		catalog: c,
		rng:     rng,
		a:       a,
		b:       b,
		log:     []string{},
		actions: []Action{},
	}
}

func (r *resolver) logf(format string, args ...any) {
	r.log = append(r.log, fmt.Sprintf(format, args...))
}

// run loops turns until a combatant faints or maxTurns turns have executed,
// returning the number of turns executed.
func (r *resolver) run(maxTurns int) int {
	turn := 1
	for r.a.Alive() && r.b.Alive() && turn <= maxTurns {
		r.turn(turn)
		turn++
	}
	return turn - 1
}

// turn resolves one full turn: status ticks for A then B, speed ordering,
// then each scheduled action.
func (r *resolver) turn(n int) {
	r.logf("--- Turn %d ---", n)

	for _, c := range []*Combatant{r.a, r.b} {
		r.log = append(r.log, tick(c)...)
		if !c.Alive() {
			r.logf("%s has fallen!", c.Name)
		}
	}

	for _, pair := range r.order() {
		attacker, defender := pair[0], pair[1]
		if !attacker.Alive() || !defender.Alive() {
			continue
		}
		r.act(n, attacker, defender)
		if !defender.Alive() {
			r.logf("%s has fallen!", defender.Name)
			break
		}
	}
}

// order schedules the strictly faster combatant first. On an exact tie both
// act, A on B and then B on A.
func (r *resolver) order() [][2]*Combatant {
	aSpeed, bSpeed := r.a.EffectiveSpeed(), r.b.EffectiveSpeed()
	switch {
	case aSpeed > bSpeed:
		return [][2]*Combatant{{r.a, r.b}, {r.b, r.a}}
	case bSpeed > aSpeed:
		return [][2]*Combatant{{r.b, r.a}, {r.a, r.b}}
	default:
		return [][2]*Combatant{{r.a, r.b}, {r.b, r.a}}
	}
}

func (r *resolver) act(turn int, attacker, defender *Combatant) {
	if attacker.Status.Condition == Stunned && attacker.Status.Turns > 0 {
		r.logf("%s is stunned and cannot act this turn.", attacker.Name)
		attacker.Status.consume()
		r.actions = append(r.actions, Action{
			Turn:     turn,
			Actor:    attacker.Name,
			Action:   ActionStunned,
			ActorHP:  attacker.HP,
			TargetHP: defender.HP,
		})
		return
	}

	moveID := ChooseMove(r.catalog, *attacker)
	move, err := r.catalog.LookupMove(moveID)
	if err != nil {
		// Catalog validation guarantees known moves; treat a gap as a no-op move.
		move = catalog.MoveDefinition{ID: moveID, Category: catalog.CategoryStatus}
	}

	dmg := Damage(attacker, defender, move, r.rng)
	defender.takeDamage(dmg)
	r.logf("%s used %s, dealing %d to %s (%d/%d).", attacker.Name, move.DisplayName(), dmg, defender.Name, defender.HP, defender.MaxHP)

	applied := r.applyStatus(move, defender)

	target := defender.Name
	r.actions = append(r.actions, Action{
		Turn:          turn,
		Actor:         attacker.Name,
		Action:        move.ID,
		Target:        &target,
		Damage:        &dmg,
		StatusApplied: applied,
		ActorHP:       attacker.HP,
		TargetHP:      defender.HP,
	})
}

// applyStatus tries Burn, Poison and then Stun against a Healthy defender
// and applies the first that succeeds. A chance is only rolled while the
// defender is still Healthy and the chance is positive.
func (r *resolver) applyStatus(move catalog.MoveDefinition, defender *Combatant) *Condition {
	effects := []struct {
		chance float64
		status Status
		line   string
	}{
		{move.BurnChance, Status{Condition: Burn, Turns: BurnTurns}, "%s was burned!"},
		{move.PoisonChance, Status{Condition: Poison, Turns: PoisonTurns}, "%s was poisoned!"},
		{move.StunChance, Status{Condition: Stunned, Turns: StunTurns}, "%s was stunned!"},
	}
	for _, effect := range effects {
		if effect.chance <= 0 || !defender.Status.IsHealthy() {
			continue
		}
		if r.rng.Float64() < effect.chance {
			defender.Status = effect.status
			r.logf(effect.line, defender.Name)
			applied := effect.status.Condition
			return &applied
		}
	}
	return nil
}
