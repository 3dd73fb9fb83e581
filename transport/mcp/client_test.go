package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/brassline/brassline/game/engine"
	"github.com/brassline/brassline/game/service"
)

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}

	if client.baseURL != baseURL {
		t.Errorf("Expected baseURL %s, got %s", baseURL, client.baseURL)
	}

	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}

	if client.mcpServer == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	expectedResponse := map[string]interface{}{
		"id":       "test-session",
		"accepted": true,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expectedResponse)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	err := client.apiCall("GET", "/api", nil, &response)
	if err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}

	if response["id"] != expectedResponse["id"] {
		t.Errorf("Expected id %v, got %v", expectedResponse["id"], response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	err := client.apiCall("GET", "/api", nil, nil)
	if err == nil {
		t.Error("Expected error for HTTP 500 response")
	}

	if !strings.Contains(err.Error(), "API error") {
		t.Errorf("Expected 'API error' in error message, got: %v", err)
	}
}

func TestClient_createSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions" {
			t.Errorf("Expected POST /api/sessions, got %s %s", r.Method, r.URL.Path)
		}

		resp := service.SessionInfo{
			ID:         "test-session-123",
			ConfigName: "ironshire",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "create_session",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleCreateSession(ctx, request)
	if err != nil {
		t.Fatalf("createSession failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	if !strings.Contains(resultStr.Text, "test-session-123") {
		t.Errorf("Expected session ID in result, got: %s", resultStr.Text)
	}
}

func TestClient_handleAct(t *testing.T) {
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/sessions/s1/act" {
			t.Errorf("Expected POST /api/sessions/s1/act, got %s %s", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)

		resp := service.ActResult{
			Accepted: true,
			Snapshot: &engine.Snapshot{
				PhasePath: "playing.build.selectingLocation",
				State:     &engine.GameState{Era: engine.EraCanal, Round: 1},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "act",
			Arguments: map[string]interface{}{
				"session_id": "s1",
				"type":       "SelectCard",
				"card_id":    "card-7",
				"intent":     "opening a build at my location card's city",
			},
		},
	}

	result, err := client.handleAct(context.Background(), request)
	if err != nil {
		t.Fatalf("handleAct failed: %v", err)
	}

	if gotBody["type"] != "SelectCard" || gotBody["card_id"] != "card-7" {
		t.Errorf("Act body not forwarded correctly: %v", gotBody)
	}
	if _, present := gotBody["intent"]; present {
		t.Error("Rubber duck intent should not be forwarded to the API")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}
	if !strings.Contains(resultStr.Text, "✓ Intent accepted") {
		t.Errorf("Expected acceptance marker in result, got: %s", resultStr.Text)
	}
	if !strings.Contains(resultStr.Text, "playing.build.selectingLocation") {
		t.Errorf("Expected phase path in result, got: %s", resultStr.Text)
	}
}

func TestFormatSnapshot(t *testing.T) {
	snap := &engine.Snapshot{
		PhasePath: "playing.choosingAction",
		State: &engine.GameState{
			Era:              engine.EraCanal,
			Round:            2,
			Current:          0,
			ActionsRemaining: 2,
			Players: []*engine.Player{
				{ID: "player-1", Name: "amy", Money: 17, Income: 10, VictoryPoints: 3,
					Hand: []engine.Card{{ID: "c1", Kind: engine.CardLocation, City: "Coalbrook"}}},
				{ID: "player-2", Name: "ben", Money: 30, Income: 10},
			},
			Coal: engine.Market{Resource: engine.ResourceCoal, Levels: []engine.MarketLevel{
				{Price: 1, Cubes: 0, Max: 1},
				{Price: 2, Cubes: 2, Max: 2},
				{Price: 8, Unbounded: true},
			}},
			Iron: engine.Market{Resource: engine.ResourceIron, Levels: []engine.MarketLevel{
				{Price: 1, Cubes: 1, Max: 1},
				{Price: 6, Unbounded: true},
			}},
			Industries: []*engine.BuiltIndustry{
				{City: "Coalbrook", Slot: 0, Owner: "player-1",
					Tile: engine.TileSpec{Type: engine.CoalMine, Level: 1}, Coal: 2},
			},
			Links: []engine.Link{
				{A: "Coalbrook", B: "Ironford", Kind: engine.EraCanal, Owner: "player-2"},
			},
		},
	}

	result := formatSnapshot(snap)

	expectedFields := []string{
		"Phase: playing.choosingAction",
		"Era: canal",
		"Round: 2",
		"▶ 1. amy (player-1) £17 income 10 VP 3",
		"Markets: coal £2 | iron £1",
		"Coalbrook slot 0: coal L1 owned by player-1 [2 cubes]",
		"Coalbrook—Ironford (canal, player-2)",
		"amy's hand:",
		"c1: location Coalbrook",
	}

	for _, field := range expectedFields {
		if !strings.Contains(result, field) {
			t.Errorf("Expected field '%s' in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatSnapshot_LastError(t *testing.T) {
	snap := &engine.Snapshot{
		PhasePath: "playing.sell.confirming",
		State:     &engine.GameState{Era: engine.EraRail, Round: 4, Current: -1},
		LastError: &engine.ActionError{
			Code:    engine.ErrCodeNoMerchant,
			Message: "no connected merchant accepts cotton",
		},
	}

	result := formatSnapshot(snap)

	if !strings.Contains(result, "Last error [no_merchant]") {
		t.Errorf("Expected last error code in result, got: %s", result)
	}
	if !strings.Contains(result, "no connected merchant accepts cotton") {
		t.Errorf("Expected last error message in result, got: %s", result)
	}
}

func TestFormatActResult_Rejected(t *testing.T) {
	result := formatActResult(&service.ActResult{
		Accepted: false,
		Message:  "intent not accepted in phase playing.choosingAction",
		Snapshot: &engine.Snapshot{
			PhasePath: "playing.choosingAction",
			State:     &engine.GameState{Era: engine.EraCanal, Round: 1, Current: -1},
		},
	})

	if !strings.Contains(result, "✗ Intent rejected") {
		t.Errorf("Expected rejection marker, got: %s", result)
	}
	if !strings.Contains(result, "intent not accepted in phase") {
		t.Errorf("Expected rejection message, got: %s", result)
	}
}

func TestDescribeCity(t *testing.T) {
	cfg := engine.DefaultGameConfig()
	snap := &engine.Snapshot{
		PhasePath: "playing.choosingAction",
		State: &engine.GameState{
			Era:     engine.EraCanal,
			Current: -1,
			Industries: []*engine.BuiltIndustry{
				{City: "Coalbrook", Slot: 0, Owner: "player-1",
					Tile: engine.TileSpec{Type: engine.CoalMine, Level: 1}},
			},
		},
	}

	t.Run("city with occupant", func(t *testing.T) {
		result, err := describeCity(cfg, snap, "Coalbrook")
		if err != nil {
			t.Fatalf("describeCity failed: %v", err)
		}
		if !strings.Contains(result, "City: Coalbrook") {
			t.Errorf("Expected city header, got: %s", result)
		}
		if !strings.Contains(result, "coal L1 owned by player-1") {
			t.Errorf("Expected occupant in slot 0, got: %s", result)
		}
		if !strings.Contains(result, "Routes:") {
			t.Errorf("Expected routes section, got: %s", result)
		}
	})

	t.Run("merchant location", func(t *testing.T) {
		result, err := describeCity(cfg, snap, "Northport")
		if err != nil {
			t.Fatalf("describeCity failed for merchant: %v", err)
		}
		if !strings.Contains(result, "Merchant: Northport") {
			t.Errorf("Expected merchant header, got: %s", result)
		}
		if !strings.Contains(result, "Buys:") {
			t.Errorf("Expected merchant icons, got: %s", result)
		}
	})

	t.Run("unknown city", func(t *testing.T) {
		_, err := describeCity(cfg, snap, "Atlantis")
		if err == nil {
			t.Error("Expected error for unknown city")
		}
	})
}

func TestClient_handleGameInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	request := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "game_instructions",
			Arguments: map[string]interface{}{},
		},
	}

	result, err := client.handleGameInstructions(ctx, request)
	if err != nil {
		t.Fatalf("handleGameInstructions failed: %v", err)
	}

	if result == nil {
		t.Fatal("Expected result, got nil")
	}

	resultStr, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}

	expectedContent := []string{
		"Brassline - Complete Instructions",
		"GAME OBJECTIVE:",
		"ERAS:",
		"TURN STRUCTURE:",
		"ACTIONS",
		"INTENT FLOW:",
		"RESOURCES:",
		"MONEY AND INCOME:",
		"SCORING",
		"SESSION MANAGEMENT:",
	}

	for _, content := range expectedContent {
		if !strings.Contains(resultStr.Text, content) {
			t.Errorf("Expected '%s' in instructions, got: %s", content, resultStr.Text)
		}
	}
}

func TestClient_Integration(t *testing.T) {
	client := NewClient("http://localhost:8080")

	if client == nil {
		t.Fatal("Failed to create client")
	}

	if client.mcpServer == nil {
		t.Fatal("MCP server not initialized")
	}

	if client.baseURL == "" {
		t.Error("Base URL not set")
	}

	if client.httpClient == nil {
		t.Error("HTTP client not initialized")
	}
}
