// Package websocket provides the WebSocket transport for Brassline.
//
// The websocket package implements:
//   - Real-time snapshot broadcasting to watching clients
//   - Session-aware WebSocket connections
//   - Connection lifecycle management with ping/pong keepalive
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a pair of
// goroutines that manage reading, writing, and cleanup.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded:
//
//	{"session_id": "...", "event": "snapshot", "snapshot": {...}}
//
// The snapshot payload is the engine's read-only view: the dotted phase
// path, the full game state, and the outcome of the last submitted intent.
// Incoming client messages are not processed; intents are submitted over
// the REST API and the resulting snapshots fan out here.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=<id>) when establishing the connection.
// Snapshots are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// inside an HTTP handler, after resolving the session
//	hub.ServeWS(w, r, sessionID)
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive broadcasts
// simultaneously without blocking each other.
package websocket
