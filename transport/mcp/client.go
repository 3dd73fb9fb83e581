package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/brassline/brassline/game/engine"
	"github.com/brassline/brassline/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Brassline",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Brassline - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Build industries and transport links across two eras (canal, then rail) and
finish with the most victory points.

AVAILABLE TOOLS:
- create_session: Create a new game session
- get_session: Get session details
- list_sessions: List all active sessions
- start_game: Deal hands and begin play (2-4 player names)
- act: Submit one intent (select an action, a card, a location, confirm, cancel...)
- game_snapshot: Get the current phase and full game state
- game_log: View the append-only game log
- list_configs: List available board configurations
- describe_city: Get detailed info about one city (slots, occupants, routes, merchant)
- game_instructions: Get comprehensive game instructions and rules

NOTE: The 'intent' parameter on the act tool serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional board config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the board config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "start_game",
		Description: "Start the game in a session: seats 2-4 players, deals hands and begins the canal era",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"players": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Player names in seating order (2-4)",
				},
			},
			Required: []string{"session_id", "players"},
		},
	}, c.handleStartGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name: "act",
		Description: "Submit one intent to the game. The type selects the intent; " +
			"the other fields carry its payload. Guard-rejected intents leave the game unchanged.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"type": map[string]interface{}{
					"type": "string",
					"enum": []string{
						"SelectActionKind", "SelectCard", "SelectLocation",
						"SelectIndustryType", "SelectLink", "SelectSecondLink",
						"SelectTilesForDevelop", "Confirm", "Cancel",
						"ChooseDoubleLinkBuild", "ExecuteDoubleNetworkAction",
					},
					"description": "Intent type",
				},
				"kind": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"build", "develop", "sell", "scout", "loan", "network", "pass"},
					"description": "Action kind (SelectActionKind only)",
				},
				"card_id": map[string]interface{}{
					"type":        "string",
					"description": "Hand card ID (SelectCard only)",
				},
				"city": map[string]interface{}{
					"type":        "string",
					"description": "City name (SelectLocation only)",
				},
				"industry": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"cotton", "coal", "iron", "brewery", "pottery"},
					"description": "Industry type (SelectIndustryType only)",
				},
				"from": map[string]interface{}{
					"type":        "string",
					"description": "Link endpoint city (SelectLink/SelectSecondLink)",
				},
				"to": map[string]interface{}{
					"type":        "string",
					"description": "Other link endpoint city (SelectLink/SelectSecondLink)",
				},
				"types": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Industry types to remove (SelectTilesForDevelop only, 1-2 entries)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the reasoning behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "type"},
		},
	}, c.handleAct)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_snapshot",
		Description: "Get the current phase path and full game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameSnapshot)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_log",
		Description: "Get the append-only game log for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"asc", "desc"},
					"description": "Ordering by sequence number (default desc)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameLog)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available board configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name: "describe_city",
		Description: "Get detailed information about one city: its build slots and their occupants, " +
			"the routes touching it, and any merchant there. Useful for verifying slot availability before a build.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"city": map[string]interface{}{
					"type":        "string",
					"description": "City name exactly as printed on the board",
				},
			},
			Required: []string{"session_id", "city"},
		},
	}, c.handleDescribeCity)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configName, _ := args["config_name"].(string)

	body := map[string]string{}
	if configName != "" {
		body["config_name"] = configName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\nUse start_game with 2-4 player names to begin.",
		session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		phase := "created"
		if s.Snapshot != nil {
			phase = s.Snapshot.PhasePath
		}
		result += fmt.Sprintf("- %s (Config: %s, Phase: %s, Created: %s)\n",
			s.ID, s.ConfigName, phase, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	playersRaw, _ := args["players"].([]interface{})

	players := make([]string, 0, len(playersRaw))
	for _, p := range playersRaw {
		if name, ok := p.(string); ok {
			players = append(players, name)
		}
	}

	body := map[string]interface{}{
		"players": players,
	}

	var result service.ActResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/start", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatActResult(&result)), nil
}

func (c *Client) handleAct(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	reasoning, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = reasoning

	body := map[string]interface{}{}
	for _, key := range []string{"type", "kind", "card_id", "city", "industry", "from", "to"} {
		if v, ok := args[key].(string); ok && v != "" {
			body[key] = v
		}
	}
	if typesRaw, ok := args["types"].([]interface{}); ok {
		types := make([]string, 0, len(typesRaw))
		for _, t := range typesRaw {
			if s, ok := t.(string); ok {
				types = append(types, s)
			}
		}
		body["types"] = types
	}

	var result service.ActResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/act", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatActResult(&result)), nil
}

func (c *Client) handleGameSnapshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var snap engine.Snapshot
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/snapshot", sessionID), nil, &snap)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSnapshot(&snap)), nil
}

func (c *Client) handleGameLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}
	if order, ok := args["order"].(string); ok && order != "" {
		params += fmt.Sprintf("order=%s&", order)
	}

	var log service.LogResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/log%s", sessionID, params), nil, &log)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatLog(&log)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Cities: %d, Routes: %d, Merchants: %d\n\n",
			config.Name, config.ConfigID, config.Description,
			config.Cities, config.Routes, config.Merchants)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleDescribeCity(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	city, _ := args["city"].(string)

	// Session info carries both the board config and the live snapshot.
	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if session.GameConfig == nil {
		return mcp.NewToolResultError("session has no board configuration"), nil
	}

	result, err := describeCity(session.GameConfig, session.Snapshot, city)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Brassline - Complete Instructions

GAME OBJECTIVE:
Score the most victory points across two eras by building industry tiles in
cities and transport links between them.

ERAS:
• Canal era: links are canals, only level-1 industries may be built, one
  industry per player per city.
• Rail era: links are rails (they consume coal), level-1 tiles are swept off
  the board at the era boundary, and double-link builds become available.
Each era ends when the draw pile and every hand are empty. Links and flipped
tiles score at the era boundary; the rail era scoring ends the game.

TURN STRUCTURE:
• Players act in turn order. Round 1 of the canal era grants 1 action per
  turn; every later round grants 2.
• Each action discards exactly one hand card. Hands refill to size at the end
  of the turn while the draw pile lasts.
• Turn order for the next round is ascending by money spent this round
  (spend less, go earlier).

ACTIONS (submitted via the act tool as a stepwise intent flow):
• build: card -> location -> industry type -> confirm. Location cards open
  their printed city; industry cards and wilds require network reach.
• network: card -> link -> confirm. Canal links cost money; rail links cost
  money plus market coal. A second rail link in one action also costs beer.
• develop: card -> 1-2 industry types -> confirm. Removes the lowest tile
  from the chosen mat rows; each removal consumes one iron.
• sell: card -> location -> confirm. Flips an unflipped cotton, pottery or
  goods tile connected to a merchant that accepts it, consuming beer.
• scout: three cards -> confirm. Trades them for one wild location and one
  wild industry card.
• loan: card -> confirm. Gain £30, income drops 3 levels.
• pass: card -> confirm. Does nothing else.

INTENT FLOW:
Every action walks selectingCard -> (payload steps) -> confirming -> Confirm.
Cancel steps backward one selection at a time. A rejected Confirm reports the
rule violation in snapshot.last_error and does NOT consume the action.

RESOURCES:
• Coal travels over built links: a build consumes the nearest connected
  unflipped coal mine first, then the coal market (if a market link exists).
• Iron travels freely: any unflipped iron works on the board, then the market.
• Beer for selling comes from your own breweries anywhere, opponent breweries
  connected to the sale city, or the merchant's one-shot beer token (which
  also grants the merchant bonus).
• Mines and works flip when their cubes run out; breweries flip when their
  barrels are drunk. Flipping advances the owner's income marker.

MONEY AND INCOME:
• Income is collected at the end of every round. Negative income is paid TO
  the bank; a player who cannot pay liquidates flipped-value of unflipped
  tiles and loses victory points as a last resort.
• Loans are always available but cost income permanently.

SCORING (at each era end):
• Each link scores the link-point value of its endpoints' tiles.
• Each flipped industry scores its printed victory points.
• Unflipped tiles score nothing. Highest total after the rail era wins.

AI AGENTS - PRACTICAL TIPS:
• Use game_snapshot before planning: the phase path tells you exactly which
  intent types are accepted next.
• Use describe_city to verify a slot accepts your industry type before
  committing a build.
• Watch snapshot.last_error after a Confirm: a rule violation there means the
  action was NOT consumed and you can fix the selection and confirm again.
• Guard rejections (accepted=false) mean the intent was not legal in the
  current phase at all. Check the phase path.
• Track the coal and iron markets: prices climb as cheap tiers empty, and
  buying from an empty market falls through to the unbounded fallback tier.

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Sessions maintain independent state and configuration
- Use session-specific tools for multi-game management`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	header := fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"))
	if session.Snapshot == nil {
		return header + "\nGame not started yet."
	}
	return header + "\n" + formatSnapshot(session.Snapshot)
}

func formatActResult(result *service.ActResult) string {
	var b strings.Builder

	if result.Accepted {
		b.WriteString("✓ Intent accepted\n")
	} else {
		b.WriteString("✗ Intent rejected\n")
	}
	if result.Message != "" {
		b.WriteString(fmt.Sprintf("Message: %s\n", result.Message))
	}

	if len(result.Events) > 0 {
		b.WriteString("Events:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	b.WriteString("\n")
	b.WriteString(formatSnapshot(result.Snapshot))
	return b.String()
}

func formatSnapshot(snap *engine.Snapshot) string {
	if snap == nil || snap.State == nil {
		return "No game state available"
	}
	state := snap.State

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Phase: %s | Era: %s | Round: %d\n", snap.PhasePath, state.Era, state.Round))

	if snap.LastError != nil {
		b.WriteString(fmt.Sprintf("Last error [%s]: %s\n", snap.LastError.Code, snap.LastError.Message))
	}

	if len(state.Players) > 0 {
		current := ""
		if state.Current >= 0 && state.Current < len(state.Players) {
			current = state.Players[state.Current].ID
		}
		b.WriteString("\nPlayers:\n")
		for i, p := range state.Players {
			marker := " "
			if p.ID == current {
				marker = "▶"
			}
			b.WriteString(fmt.Sprintf("%s %d. %s (%s) £%d income %d VP %d hand %d spent £%d\n",
				marker, i+1, p.Name, p.ID, p.Money, p.Income, p.VictoryPoints, len(p.Hand), p.Spent))
		}
		b.WriteString(fmt.Sprintf("Actions remaining this turn: %d\n", state.ActionsRemaining))
	}

	b.WriteString(fmt.Sprintf("\nMarkets: coal %s | iron %s\n",
		marketPrice(&state.Coal), marketPrice(&state.Iron)))
	b.WriteString(fmt.Sprintf("Board: %d industries, %d links | Draw pile: %d, Discards: %d\n",
		len(state.Industries), len(state.Links), len(state.Draw), len(state.DiscardPile)))

	if len(state.Industries) > 0 {
		b.WriteString("\nBuilt industries:\n")
		for _, ind := range state.Industries {
			flipped := ""
			if ind.Flipped {
				flipped = " (flipped)"
			}
			cubes := ""
			if n := ind.Cubes(); n > 0 {
				cubes = fmt.Sprintf(" [%d cubes]", n)
			}
			b.WriteString(fmt.Sprintf("- %s slot %d: %s L%d owned by %s%s%s\n",
				ind.City, ind.Slot, ind.Tile.Type, ind.Tile.Level, ind.Owner, cubes, flipped))
		}
	}

	if len(state.Links) > 0 {
		b.WriteString("\nLinks:\n")
		for _, l := range state.Links {
			b.WriteString(fmt.Sprintf("- %s—%s (%s, %s)\n", l.A, l.B, l.Kind, l.Owner))
		}
	}

	// Current player's hand, so the caller can pick a card without a second call
	if state.Current >= 0 && state.Current < len(state.Players) {
		p := state.Players[state.Current]
		if len(p.Hand) > 0 {
			b.WriteString(fmt.Sprintf("\n%s's hand:\n", p.Name))
			for _, card := range p.Hand {
				b.WriteString("- " + formatCard(card) + "\n")
			}
		}
	}

	return b.String()
}

func marketPrice(m *engine.Market) string {
	if len(m.Levels) == 0 {
		return "n/a"
	}
	return fmt.Sprintf("£%d", m.CheapestAvailable())
}

func formatCard(card engine.Card) string {
	switch card.Kind {
	case engine.CardLocation:
		return fmt.Sprintf("%s: location %s", card.ID, card.City)
	case engine.CardIndustry:
		names := make([]string, len(card.Industries))
		for i, t := range card.Industries {
			names[i] = string(t)
		}
		return fmt.Sprintf("%s: industry %s", card.ID, strings.Join(names, "/"))
	case engine.CardWildLocation:
		return fmt.Sprintf("%s: wild location", card.ID)
	case engine.CardWildIndustry:
		return fmt.Sprintf("%s: wild industry", card.ID)
	}
	return card.ID
}

func formatLog(log *service.LogResponse) string {
	result := fmt.Sprintf("Game Log (Page %d/%d) — Total entries: %d\n\n",
		log.Page, log.TotalPages, log.Total)

	for _, entry := range log.Entries {
		who := entry.Player
		if who == "" {
			who = "system"
		}
		result += fmt.Sprintf("%d. [%s] %s: %s\n", entry.Seq, entry.Kind, who, entry.Message)
	}

	return result
}

// describeCity renders the static board data for one city merged with its
// live occupancy from the snapshot.
func describeCity(cfg *engine.GameConfig, snap *engine.Snapshot, name string) (string, error) {
	var city *engine.City
	for i := range cfg.Cities {
		if cfg.Cities[i].Name == name {
			city = &cfg.Cities[i]
			break
		}
	}
	if city == nil {
		if cfg.IsMerchantCity(name) {
			return describeMerchantLocation(cfg, snap, name), nil
		}
		known := make([]string, len(cfg.Cities))
		for i, c := range cfg.Cities {
			known[i] = c.Name
		}
		return "", fmt.Errorf("no city named %q on this board (cities: %s)", name, strings.Join(known, ", "))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("City: %s\n━━━━━━━━━━━━━━━━━━━━━━━━\n", city.Name))

	b.WriteString("Slots:\n")
	for i, slot := range city.Slots {
		types := make([]string, len(slot.Types))
		for j, t := range slot.Types {
			types[j] = string(t)
		}
		occupant := "empty"
		if snap != nil && snap.State != nil {
			if ind, ok := snap.State.IndustryAt(city.Name, i); ok {
				flipped := ""
				if ind.Flipped {
					flipped = ", flipped"
				}
				occupant = fmt.Sprintf("%s L%d owned by %s%s", ind.Tile.Type, ind.Tile.Level, ind.Owner, flipped)
			}
		}
		b.WriteString(fmt.Sprintf("- slot %d [%s]: %s\n", i, strings.Join(types, "|"), occupant))
	}

	b.WriteString("\nRoutes:\n")
	for _, r := range cfg.Routes {
		if r.A != city.Name && r.B != city.Name {
			continue
		}
		other := r.B
		if other == city.Name {
			other = r.A
		}
		eras := routeEras(r)
		built := ""
		if snap != nil && snap.State != nil {
			if l, ok := snap.State.LinkBetween(r.A, r.B); ok {
				built = fmt.Sprintf(" — built (%s, %s)", l.Kind, l.Owner)
			}
		}
		b.WriteString(fmt.Sprintf("- to %s (%s)%s\n", other, eras, built))
	}

	return b.String(), nil
}

// describeMerchantLocation handles the off-board merchant cities, which have
// no build slots of their own.
func describeMerchantLocation(cfg *engine.GameConfig, snap *engine.Snapshot, name string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Merchant: %s\n━━━━━━━━━━━━━━━━━━━━━━━━\n", name))
	b.WriteString("Off-board merchant location. No build slots; goods sold here must reach it through the link network.\n")

	for _, m := range cfg.Merchants {
		if m.City != name {
			continue
		}
		icons := make([]string, len(m.Icons))
		for i, t := range m.Icons {
			icons[i] = string(t)
		}
		b.WriteString(fmt.Sprintf("Buys: %s\n", strings.Join(icons, ", ")))
		if m.Bonus != "" {
			b.WriteString(fmt.Sprintf("Beer token bonus: %s %d\n", m.Bonus, m.BonusValue))
		}
	}

	if snap != nil && snap.State != nil {
		for _, live := range snap.State.Merchants {
			if live.City == name {
				if live.HasBeerToken() {
					b.WriteString("Beer token: available\n")
				} else {
					b.WriteString("Beer token: spent\n")
				}
			}
		}
	}

	b.WriteString("\nRoutes:\n")
	for _, r := range cfg.Routes {
		if r.A != name && r.B != name {
			continue
		}
		other := r.B
		if other == name {
			other = r.A
		}
		built := ""
		if snap != nil && snap.State != nil {
			if l, ok := snap.State.LinkBetween(r.A, r.B); ok {
				built = fmt.Sprintf(" — built (%s, %s)", l.Kind, l.Owner)
			}
		}
		b.WriteString(fmt.Sprintf("- to %s (%s)%s\n", other, routeEras(r), built))
	}

	return b.String()
}

func routeEras(r engine.Route) string {
	switch {
	case r.Canal && r.Rail:
		return "canal+rail"
	case r.Canal:
		return "canal"
	case r.Rail:
		return "rail"
	}
	return "none"
}
