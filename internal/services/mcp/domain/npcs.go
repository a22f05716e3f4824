package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	battlegrpc "github.com/louisbranch/npc-arena/internal/services/game/api/grpc/battle"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	npcListURI     = "arena://npcs"
	npcURIPrefix   = "arena://npcs/"
	npcURITemplate = "arena://npcs/{key}"
	jsonMIMEType   = "application/json"
)

// ListNPCsInput represents the MCP tool input for listing NPCs.
type ListNPCsInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"optional AIP-160 filter over key, name, level, hp, attack, defense, sp_attack, sp_defense and speed"`
}

// NPCStats are the base stats of one NPC.
type NPCStats struct {
	HP        int `json:"hp" jsonschema:"base hp"`
	Attack    int `json:"attack" jsonschema:"base attack"`
	Defense   int `json:"defense" jsonschema:"base defense"`
	SpAttack  int `json:"sp_attack" jsonschema:"base special attack"`
	SpDefense int `json:"sp_defense" jsonschema:"base special defense"`
	Speed     int `json:"speed" jsonschema:"base speed"`
}

// NPCSummary is one catalog NPC.
type NPCSummary struct {
	Key   string   `json:"key" jsonschema:"npc key used by simulate_battle_tool"`
	Name  string   `json:"name" jsonschema:"display name"`
	Level int      `json:"level" jsonschema:"reference level of the base stats"`
	Stats NPCStats `json:"stats" jsonschema:"base stats"`
	Moves []string `json:"moves" jsonschema:"move ids in preference order"`
}

// ListNPCsResult represents the MCP tool output for listing NPCs.
type ListNPCsResult struct {
	NPCs []NPCSummary `json:"npcs" jsonschema:"matching NPCs ordered by key"`
}

// ListNPCsTool defines the MCP tool schema for listing NPCs.
func ListNPCsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_npcs",
		Description: "Lists catalog NPCs, optionally narrowed by a filter expression",
	}
}

// ListNPCsHandler lists catalog NPCs.
func ListNPCsHandler(sim battlegrpc.Simulator) mcp.ToolHandlerFor[ListNPCsInput, ListNPCsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListNPCsInput) (*mcp.CallToolResult, ListNPCsResult, error) {
		npcs, err := listNPCs(ctx, sim, input.Filter)
		if err != nil {
			return nil, ListNPCsResult{}, err
		}
		return nil, ListNPCsResult{NPCs: npcs}, nil
	}
}

// NPCListResource describes the resource listing every NPC.
func NPCListResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "npc_list",
		Title:       "NPCs",
		Description: "Readable listing of every catalog NPC",
		MIMEType:    jsonMIMEType,
		URI:         npcListURI,
	}
}

// NPCResourceTemplate describes the per-NPC resource.
func NPCResourceTemplate() *mcp.ResourceTemplate {
	return &mcp.ResourceTemplate{
		Name:        "npc",
		Title:       "NPC",
		Description: "A single catalog NPC by key",
		MIMEType:    jsonMIMEType,
		URITemplate: npcURITemplate,
	}
}

// NPCListResourceHandler reads the NPC listing resource.
func NPCListResourceHandler(sim battlegrpc.Simulator) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := npcListURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}
		if uri != npcListURI {
			return nil, fmt.Errorf("resource %q is not the npc listing", uri)
		}
		npcs, err := listNPCs(ctx, sim, "")
		if err != nil {
			return nil, err
		}
		return jsonResource(uri, ListNPCsResult{NPCs: npcs})
	}
}

// NPCResourceHandler reads one NPC by the key in the resource URI.
func NPCResourceHandler(sim battlegrpc.Simulator) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if req == nil || req.Params == nil {
			return nil, fmt.Errorf("resource uri is required")
		}
		uri := req.Params.URI
		key, err := parseNPCURI(uri)
		if err != nil {
			return nil, err
		}
		npcs, err := listNPCs(ctx, sim, "")
		if err != nil {
			return nil, err
		}
		for _, npc := range npcs {
			if npc.Key == key {
				return jsonResource(uri, npc)
			}
		}
		return nil, fmt.Errorf("npc %q not found", key)
	}
}

func parseNPCURI(uri string) (string, error) {
	key, ok := strings.CutPrefix(uri, npcURIPrefix)
	if !ok {
		return "", fmt.Errorf("resource %q is not an npc uri", uri)
	}
	key = catalog.NormalizeKey(key)
	if key == "" || strings.Contains(key, "/") {
		return "", fmt.Errorf("resource %q does not name an npc", uri)
	}
	return key, nil
}

func listNPCs(ctx context.Context, sim battlegrpc.Simulator, filter string) ([]NPCSummary, error) {
	if sim == nil {
		return nil, fmt.Errorf("battle simulator is not configured")
	}
	invocationID, err := NewInvocationID()
	if err != nil {
		return nil, fmt.Errorf("generate invocation id: %w", err)
	}
	runCtx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	callCtx, err := NewOutgoingContext(runCtx, invocationID)
	if err != nil {
		return nil, fmt.Errorf("create request metadata: %w", err)
	}

	templates, err := sim.ListNPCs(callCtx, filter)
	if err != nil {
		return nil, fmt.Errorf("list npcs: %w", err)
	}
	npcs := make([]NPCSummary, 0, len(templates))
	for _, npc := range templates {
		npcs = append(npcs, NPCSummaryFromTemplate(npc))
	}
	return npcs, nil
}

// NPCSummaryFromTemplate maps a catalog template to the MCP output shape.
func NPCSummaryFromTemplate(npc catalog.NPCTemplate) NPCSummary {
	return NPCSummary{
		Key:   npc.Key,
		Name:  npc.Name,
		Level: npc.Level,
		Stats: NPCStats{
			HP:        npc.Stats.HP,
			Attack:    npc.Stats.Attack,
			Defense:   npc.Stats.Defense,
			SpAttack:  npc.Stats.SpAttack,
			SpDefense: npc.Stats.SpDefense,
			Speed:     npc.Stats.Speed,
		},
		Moves: append([]string{}, npc.Moves...),
	}
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: jsonMIMEType,
			Text:     string(data),
		}},
	}, nil
}
