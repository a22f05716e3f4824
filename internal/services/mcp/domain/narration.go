package domain

import (
	"context"
	"fmt"

	"github.com/louisbranch/npc-arena/internal/services/narration"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NarrateBattleInput represents the MCP tool input for narration.
type NarrateBattleInput struct {
	BattleLog []string `json:"battle_log" jsonschema:"log lines returned by simulate_battle_tool"`
	Style     string   `json:"style,omitempty" jsonschema:"narration voice (default sportscaster)"`
	Locale    string   `json:"locale,omitempty" jsonschema:"BCP 47 language tag for the narration (default en)"`
}

// NarrateBattleResult represents the MCP tool output for narration.
type NarrateBattleResult struct {
	Narration string `json:"narration" jsonschema:"narrated battle"`
}

// NarrateBattleTool defines the MCP tool schema for narration.
func NarrateBattleTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "narrate_battle_with_groq",
		Description: "Narrates a battle log with the configured language model",
	}
}

// NarrateBattleHandler narrates a battle log.
func NarrateBattleHandler(narrator narration.Narrator) mcp.ToolHandlerFor[NarrateBattleInput, NarrateBattleResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NarrateBattleInput) (*mcp.CallToolResult, NarrateBattleResult, error) {
		if narrator == nil {
			return nil, NarrateBattleResult{}, narration.ErrNotConfigured
		}
		text, err := narrator.Narrate(ctx, narration.Request{
			Log:    input.BattleLog,
			Style:  input.Style,
			Locale: input.Locale,
		})
		if err != nil {
			return nil, NarrateBattleResult{}, fmt.Errorf("narrate battle: %w", err)
		}
		return nil, NarrateBattleResult{Narration: text}, nil
	}
}
