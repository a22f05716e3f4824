// Package api contains the battle service's transport surface.
//
// Subpackages:
//   - grpc/battle: the BattleService server, remote client and in-process client
//   - grpc/metadata: request metadata helpers and interceptors
//
// The MCP and arena services reach battles through grpc/battle, either over
// the wire or in-process.
package api
