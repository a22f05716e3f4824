// Package timeouts defines shared timeout constants used across the arena
// services so dial, request and shutdown bounds stay consistent.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing the game service.
const GRPCDial = 2 * time.Second

// GRPCRequest caps a single battle request sent to the game service.
const GRPCRequest = 5 * time.Second

// Narration caps one chat-completion call to the narration provider.
const Narration = 20 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long servers wait for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
