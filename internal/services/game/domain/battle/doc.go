// Package battle simulates deterministic turn-based fights between two
// NPCs built from the reference catalog.
//
// A run builds two level-scaled combatants, then repeats turns until one
// faints or the turn cap is reached. Each turn ticks damage-over-time
// statuses, orders the combatants by effective speed, and resolves their
// actions. All random draws come from one generator owned by the run, so
// the same seed and inputs always produce the same log and action records.
package battle
