// Package battle exposes battle simulation over gRPC.
//
// The service is declared by hand with google.protobuf.Struct messages whose
// fields mirror the JSON shapes used by the MCP and HTTP surfaces. Seeds
// travel as decimal strings because Struct numbers are doubles.
//
// Simulator is the transport-neutral contract: Client implements it against a
// remote game service, LocalClient against an in-process engine.
package battle
