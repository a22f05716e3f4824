package battle

import (
	"testing"

	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
)

func newTestCatalog(t *testing.T, npcs []catalog.NPCTemplate, moves []catalog.MoveDefinition) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(npcs, moves)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	return c
}

func twinsCatalog(t *testing.T, speedA, speedB int, move catalog.MoveDefinition) *catalog.Catalog {
	t.Helper()
	return newTestCatalog(t, []catalog.NPCTemplate{
		{
			Key:   "twina",
			Name:  "TwinA",
			Level: 50,
			Stats: catalog.Stats{HP: 1000, Attack: 50, Defense: 50, SpAttack: 50, SpDefense: 50, Speed: speedA},
			Moves: []string{move.ID},
		},
		{
			Key:   "twinb",
			Name:  "TwinB",
			Level: 50,
			Stats: catalog.Stats{HP: 1000, Attack: 50, Defense: 50, SpAttack: 50, SpDefense: 50, Speed: speedB},
			Moves: []string{move.ID},
		},
	}, []catalog.MoveDefinition{move})
}

func seed(v int64) *int64 {
	return &v
}
