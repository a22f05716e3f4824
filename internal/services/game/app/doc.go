// Package server composes the game gRPC entrypoint.
//
// It opens the sqlite content store, builds the battle catalog from it and
// serves BattleService with health checks. OpenBackend gives other services
// the same backend without the network hop.
package server
