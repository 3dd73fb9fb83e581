// Package mcp provides a Model Context Protocol interface to the game server.
//
// The package is a thin client: every tool call is proxied to the REST API
// rather than touching the game service directly, so the MCP surface and the
// HTTP surface can never disagree about game semantics.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_session: Create new game session with board config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - start_game: Seat 2-4 players and begin the canal era
//   - act: Submit one intent (action kind, card, location, confirm, cancel...)
//   - game_snapshot: Get the phase path and full game state
//   - game_log: Retrieve the append-only game log with pagination
//   - list_configs: List available board configurations
//   - describe_city: Inspect one city's slots, occupants, routes and merchant
//   - game_instructions: Comprehensive rules reference
//
// Transport Modes:
//
// The underlying server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Session Management:
//
// Every game tool takes a session_id parameter. AI agents can manage
// multiple concurrent game sessions independently.
//
// Usage:
//
//	// Stdio mode against a running REST server
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Play full games through the stepwise intent flow
//   - Inspect board state before committing actions
//   - Recover from rule violations without losing the turn
//   - Manage multiple game sessions
package mcp
