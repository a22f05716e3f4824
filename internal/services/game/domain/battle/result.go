package battle

import "github.com/louisbranch/npc-arena/internal/random"

// ActionStunned marks a record for a turn lost to stun.
const ActionStunned = "stunned"

// Action is the structured record of one action or skipped action.
type Action struct {
	Turn          int        `json:"turn"`
	Actor         string     `json:"actor"`
	Action        string     `json:"action"`
	Target        *string    `json:"target,omitempty"`
	Damage        *int       `json:"damage,omitempty"`
	StatusApplied *Condition `json:"status_applied,omitempty"`
	ActorHP       int        `json:"actor_hp"`
	TargetHP      int        `json:"target_hp"`
}

// Result is the outcome of one simulation run.
type Result struct {
	Winner     string            `json:"winner"`
	Turns      int               `json:"turns"`
	Log        []string          `json:"log"`
	Actions    []Action          `json:"actions"`
	Seed       int64             `json:"seed"`
	SeedSource random.SeedSource `json:"seed_source"`
	Combatants []Snapshot        `json:"combatants"`
}
