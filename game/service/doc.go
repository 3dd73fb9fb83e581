// Package service provides the business logic layer for Brassline.
//
// The service package implements:
//   - Multi-session game management
//   - Board configuration management and loading
//   - Intent decoding and submission
//   - Session lifecycle management
//   - Game log retrieval
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages board configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, configuration management, and
// business logic orchestration. Each session maintains its own game engine
// instance with independent state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr, nil)
//
//	// Create a new session and seat players
//	sessionInfo, err := gameService.CreateSession(ctx, "ironshire")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := gameService.StartGame(ctx, sessionInfo.ID, []string{"amy", "joe"})
//
//	// Submit intents
//	result, err = gameService.Act(ctx, sessionInfo.ID, service.IntentRequest{
//		Type: "SelectActionKind",
//		Kind: "loan",
//	})
//
// Session Management:
//
// Sessions are identified by unique IDs and maintain independent game state.
// Multiple sessions can run concurrently with different board configurations.
// Sessions track creation time and last access time, and persist after every
// accepted intent.
package service
