// Package session provides session management for Brassline.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management
//   - Concurrent access control
//   - File-backed session persistence
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// A session wraps an individual game with its own engine instance and
// metadata like creation time and last access time.
//
// Session Identifiers:
//
// Sessions use UUIDs generated at creation. Lookups are case-insensitive so
// IDs pasted from logs or URLs resolve regardless of casing.
//
// Concurrency:
//
// The session manager is thread-safe and supports concurrent operations.
// Multiple goroutines can safely create, retrieve, and modify different
// sessions simultaneously. Internal locking ensures data consistency.
//
// Usage:
//
//	manager := session.NewManager()
//
//	// Create a new session
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve existing session
//	sess, err = manager.Get(sessionID)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// List all active sessions
//	sessions := manager.List()
//
// Persistence:
//
// With a SessionPersistence configured, sessions are written to disk as JSON
// after creation and after every accepted intent, and lazily reloaded on the
// first Get after a restart. The engine is rebuilt from the stored board
// configuration and the persisted game state.
package session
