// Package domain translates MCP tool calls and resource reads into battle
// operations.
//
// Handlers depend on the battle Simulator contract, so the same tools serve
// a remote game service or an in-process engine. Outputs are plain structs
// with non-nil slices so their inferred schemas hold for every result.
package domain
