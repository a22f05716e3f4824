// Package metadata carries correlation identifiers across the battle gRPC
// boundary.
//
// Every inbound call gets a request ID; MCP tool calls add an invocation ID.
// Both are echoed in response headers and attached to the active span.
package metadata
