// Package service hosts the arena MCP server.
//
// It registers the battle tools and NPC resources from the domain package
// and serves them over stdio or streamable HTTP. The battle backend is either
// a remote game server or an in-process engine over the content store.
package service
