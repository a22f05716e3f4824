package domain

import (
	"context"
	"fmt"

	battlegrpc "github.com/louisbranch/npc-arena/internal/services/game/api/grpc/battle"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/battle"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SimulateBattleInput represents the MCP tool input for a battle.
type SimulateBattleInput struct {
	NPCA     string `json:"npc_a" jsonschema:"key of the first NPC, e.g. embermage"`
	NPCB     string `json:"npc_b" jsonschema:"key of the second NPC, e.g. windblade"`
	Level    *int   `json:"level,omitempty" jsonschema:"level both NPCs are scaled to (default 50)"`
	Seed     *int64 `json:"seed,omitempty" jsonschema:"optional seed for a reproducible battle"`
	MaxTurns *int   `json:"max_turns,omitempty" jsonschema:"turn cap (default 200)"`
}

// BattleAction is one structured action record.
type BattleAction struct {
	Turn          int     `json:"turn" jsonschema:"turn number starting at 1"`
	Actor         string  `json:"actor" jsonschema:"display name of the acting NPC"`
	Action        string  `json:"action" jsonschema:"move id, or stunned for a skipped turn"`
	Target        *string `json:"target,omitempty" jsonschema:"display name of the target"`
	Damage        *int    `json:"damage,omitempty" jsonschema:"damage dealt"`
	StatusApplied *string `json:"status_applied,omitempty" jsonschema:"status inflicted by the move"`
	ActorHP       int     `json:"actor_hp" jsonschema:"actor hp after the action"`
	TargetHP      int     `json:"target_hp" jsonschema:"target hp after the action"`
}

// CombatantSnapshot is the final state of one combatant.
type CombatantSnapshot struct {
	Key    string `json:"key" jsonschema:"npc key"`
	Name   string `json:"name" jsonschema:"display name"`
	Level  int    `json:"level" jsonschema:"battle level"`
	HP     int    `json:"hp" jsonschema:"remaining hp"`
	MaxHP  int    `json:"max_hp" jsonschema:"scaled maximum hp"`
	Status string `json:"status" jsonschema:"status at the end of the battle"`
}

// BattleResult represents the MCP tool output for a battle.
type BattleResult struct {
	Winner     string              `json:"winner" jsonschema:"display name of the winner"`
	Turns      int                 `json:"turns" jsonschema:"turns executed"`
	Log        []string            `json:"log" jsonschema:"human-readable battle log"`
	Actions    []BattleAction      `json:"actions" jsonschema:"structured action records"`
	Seed       int64               `json:"seed" jsonschema:"seed used; replay with the same inputs and this seed"`
	SeedSource string              `json:"seed_source" jsonschema:"CLIENT when supplied, SERVER when generated"`
	Combatants []CombatantSnapshot `json:"combatants" jsonschema:"final state of both combatants"`
}

// SimulateBattleTool defines the MCP tool schema for simulating a battle.
func SimulateBattleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "simulate_battle_tool",
		Description: "Simulates a deterministic turn-based battle between two NPCs and returns the log and action records",
	}
}

// SimulateBattleHandler executes a battle simulation.
func SimulateBattleHandler(sim battlegrpc.Simulator) mcp.ToolHandlerFor[SimulateBattleInput, BattleResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SimulateBattleInput) (*mcp.CallToolResult, BattleResult, error) {
		if sim == nil {
			return nil, BattleResult{}, fmt.Errorf("battle simulator is not configured")
		}
		invocationID, err := NewInvocationID()
		if err != nil {
			return nil, BattleResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		req := battle.NewRequest(input.NPCA, input.NPCB)
		if input.Level != nil {
			req.Level = *input.Level
		}
		if input.MaxTurns != nil {
			req.MaxTurns = *input.MaxTurns
		}
		req.Seed = input.Seed

		runCtx, cancel := context.WithTimeout(ctx, callTimeout)
		defer cancel()
		callCtx, err := NewOutgoingContext(runCtx, invocationID)
		if err != nil {
			return nil, BattleResult{}, fmt.Errorf("create request metadata: %w", err)
		}

		result, err := sim.Simulate(callCtx, req)
		if err != nil {
			return nil, BattleResult{}, fmt.Errorf("simulate battle: %w", err)
		}
		return nil, BattleResultFromDomain(result), nil
	}
}

// BattleResultFromDomain maps an engine result to the MCP output shape.
func BattleResultFromDomain(result battle.Result) BattleResult {
	out := BattleResult{
		Winner:     result.Winner,
		Turns:      result.Turns,
		Log:        append([]string{}, result.Log...),
		Actions:    make([]BattleAction, 0, len(result.Actions)),
		Seed:       result.Seed,
		SeedSource: string(result.SeedSource),
		Combatants: make([]CombatantSnapshot, 0, len(result.Combatants)),
	}
	for _, action := range result.Actions {
		entry := BattleAction{
			Turn:     action.Turn,
			Actor:    action.Actor,
			Action:   action.Action,
			Target:   action.Target,
			Damage:   action.Damage,
			ActorHP:  action.ActorHP,
			TargetHP: action.TargetHP,
		}
		if action.StatusApplied != nil {
			status := string(*action.StatusApplied)
			entry.StatusApplied = &status
		}
		out.Actions = append(out.Actions, entry)
	}
	for _, snapshot := range result.Combatants {
		out.Combatants = append(out.Combatants, CombatantSnapshot{
			Key:    snapshot.Key,
			Name:   snapshot.Name,
			Level:  snapshot.Level,
			HP:     snapshot.HP,
			MaxHP:  snapshot.MaxHP,
			Status: string(snapshot.Status),
		})
	}
	return out
}
