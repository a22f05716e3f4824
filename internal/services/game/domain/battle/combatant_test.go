package battle

import (
	"reflect"
	"testing"

	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
)

func TestScaleStat(t *testing.T) {
	tests := []struct {
		base, level, baseLevel, want int
	}{
		{base: 100, level: 50, baseLevel: 50, want: 100},
		{base: 100, level: 60, baseLevel: 50, want: 110},
		{base: 90, level: 60, baseLevel: 50, want: 99},
		{base: 90, level: 40, baseLevel: 50, want: 81},
		{base: 55, level: 51, baseLevel: 50, want: 55},
		{base: 90, level: 0, baseLevel: 50, want: 45},
		{base: 90, level: -50, baseLevel: 50, want: 0},
		{base: 90, level: -60, baseLevel: 50, want: -9},
	}
	for _, tc := range tests {
		if got := ScaleStat(tc.base, tc.level, tc.baseLevel); got != tc.want {
			t.Errorf("ScaleStat(%d, %d, %d) = %d, want %d", tc.base, tc.level, tc.baseLevel, got, tc.want)
		}
	}
}

func TestNewCombatantScalesStats(t *testing.T) {
	c := defaultCatalog(t)

	got, err := NewCombatant(c, "EmberMage", 60)
	if err != nil {
		t.Fatalf("new combatant: %v", err)
	}
	want := Combatant{
		Key:       "embermage",
		Name:      "EmberMage",
		Level:     60,
		MaxHP:     109,
		HP:        109,
		Attack:    66,
		Defense:   60,
		SpAttack:  121,
		SpDefense: 88,
		Speed:     93,
		Moves:     []string{"flamethrower", "ember", "fire_spin", "focus"},
		Status:    HealthyStatus(),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("combatant = %+v\nwant %+v", got, want)
	}

	again, err := NewCombatant(c, "embermage", 60)
	if err != nil {
		t.Fatalf("new combatant: %v", err)
	}
	if !reflect.DeepEqual(got, again) {
		t.Fatal("building from the same template and level must be repeatable")
	}
}

func TestNewCombatantDegenerateLevel(t *testing.T) {
	got, err := NewCombatant(defaultCatalog(t), "windblade", -50)
	if err != nil {
		t.Fatalf("new combatant: %v", err)
	}
	if got.MaxHP != 10 || got.Attack != 0 || got.Speed != 0 {
		t.Fatalf("unexpected degenerate stats %+v", got)
	}
}

func TestNewCombatantTemplateWithoutLevel(t *testing.T) {
	c := newTestCatalog(t, []catalog.NPCTemplate{{
		Key:   "mage",
		Name:  "Mage",
		Stats: catalog.Stats{HP: 90, Attack: 60, Defense: 55, SpAttack: 110, SpDefense: 80, Speed: 85},
		Moves: []string{"slash"},
	}}, []catalog.MoveDefinition{{ID: "slash", Category: catalog.CategoryPhysical, Power: 40}})

	got, err := NewCombatant(c, "mage", catalog.DefaultBaseLevel)
	if err != nil {
		t.Fatalf("new combatant: %v", err)
	}
	if got.MaxHP != 100 || got.SpAttack != 110 || got.Speed != 85 {
		t.Fatalf("template without level must scale from base %d, got %+v", catalog.DefaultBaseLevel, got)
	}
}

func TestNewCombatantUnknown(t *testing.T) {
	if _, err := NewCombatant(defaultCatalog(t), "ghost", 50); !catalog.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestEffectiveSpeed(t *testing.T) {
	c := Combatant{Speed: 81, Status: HealthyStatus()}
	if c.EffectiveSpeed() != 81 {
		t.Fatalf("healthy speed = %v", c.EffectiveSpeed())
	}
	c.Status = Status{Condition: Stunned, Turns: 1}
	if c.EffectiveSpeed() != 40.5 {
		t.Fatalf("stunned speed = %v", c.EffectiveSpeed())
	}
	c.Status = Status{Condition: Burn, Turns: 1}
	if c.EffectiveSpeed() != 81 {
		t.Fatalf("burned speed = %v", c.EffectiveSpeed())
	}
}
