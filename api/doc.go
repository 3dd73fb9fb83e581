// Package api provides HTTP REST API handlers for Brassline.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Board configuration listing and upload
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (body: {"config_id": "ironshire"})
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - POST /api/sessions/{id}/start - Seat players and deal (body: {"players": ["amy","joe"]})
//   - POST /api/sessions/{id}/act - Submit one intent (body: an IntentRequest)
//   - GET /api/sessions/{id}/snapshot - Current engine snapshot
//   - GET /api/sessions/{id}/log - Paginated game log (page, limit, order)
//
// Configuration:
//   - GET /api/configs - List available board configurations
//   - GET /api/configs/{name} - Get a full board configuration
//   - POST /api/configs - Upload and save a board configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Intents are sent as POST with a
// typed body; fields the intent does not use may be omitted:
//
//	{
//	  "type": "SelectActionKind|SelectCard|SelectLocation|...",
//	  "kind": "build",          // for SelectActionKind
//	  "card_id": "card-3-1",    // for SelectCard
//	  "city": "Coalbrook",      // for SelectLocation
//	  "industry": "coal",       // for SelectIndustryType
//	  "from": "Coalbrook",      // for SelectLink / SelectSecondLink
//	  "to": "Ironford",
//	  "types": ["pottery"]      // for SelectTilesForDevelop
//	}
//
// The act response distinguishes the two rejection tiers: a structurally
// impossible intent returns {"accepted": false} with a reason and no state
// change; a rule violation returns {"accepted": true} with the error carried
// in snapshot.last_error and the action left unconsumed.
//
// Usage:
//
//	server := api.NewServer(gameService, hub, logger)
//	http.ListenAndServe(":8080", server)
//
// Error Handling:
//
// Transport-level errors are returned as JSON with appropriate HTTP status
// codes:
//
//	{
//	  "error": "error message"
//	}
package api
