// Package arena serves the battle HTTP API, the battle stream websocket and
// the dashboard pages.
//
// Handlers run on gin and depend only on the battle Simulator and narration
// Narrator contracts, so the same routes work against a remote game server or
// an in-process engine.
package arena
