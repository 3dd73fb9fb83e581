package service

import (
	"fmt"
	"time"

	"github.com/brassline/brassline/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	Snapshot       *engine.Snapshot   `json:"snapshot"`
	GameConfig     *engine.GameConfig `json:"game_config,omitempty"`
}

// IntentRequest is the wire form of an engine intent. Type selects the
// intent; the remaining fields carry its payload and are ignored by intents
// that do not use them.
type IntentRequest struct {
	Type     string   `json:"type"`
	Players  []string `json:"players,omitempty"`
	Kind     string   `json:"kind,omitempty"`
	CardID   string   `json:"card_id,omitempty"`
	City     string   `json:"city,omitempty"`
	Industry string   `json:"industry,omitempty"`
	From     string   `json:"from,omitempty"`
	To       string   `json:"to,omitempty"`
	Types    []string `json:"types,omitempty"`
}

// ToIntent decodes the request into a typed engine intent. Unknown type
// strings are rejected before they ever reach the engine.
func (r IntentRequest) ToIntent() (engine.Intent, error) {
	switch r.Type {
	case "StartGame":
		return engine.StartGame{Players: r.Players}, nil
	case "SelectActionKind":
		return engine.SelectAction{Kind: engine.ActionKind(r.Kind)}, nil
	case "SelectCard":
		return engine.SelectCard{CardID: r.CardID}, nil
	case "SelectLocation":
		return engine.SelectLocation{City: r.City}, nil
	case "SelectIndustryType":
		return engine.SelectIndustry{Type: engine.IndustryType(r.Industry)}, nil
	case "SelectLink":
		return engine.SelectLink{From: r.From, To: r.To}, nil
	case "SelectSecondLink":
		return engine.SelectSecondLink{From: r.From, To: r.To}, nil
	case "SelectTilesForDevelop":
		types := make([]engine.IndustryType, 0, len(r.Types))
		for _, t := range r.Types {
			types = append(types, engine.IndustryType(t))
		}
		return engine.SelectDevelopTiles{Types: types}, nil
	case "Confirm":
		return engine.Confirm{}, nil
	case "Cancel":
		return engine.Cancel{}, nil
	case "ChooseDoubleLinkBuild":
		return engine.ChooseDoubleLinkBuild{}, nil
	case "ExecuteDoubleNetworkAction":
		return engine.ExecuteDoubleNetworkAction{}, nil
	}
	return nil, fmt.Errorf("unknown intent type %q", r.Type)
}

// ActResult contains the outcome of a submitted intent
type ActResult struct {
	Accepted bool             `json:"accepted"`
	Snapshot *engine.Snapshot `json:"snapshot"`
	Message  string           `json:"message,omitempty"`
	Events   []GameEvent      `json:"events,omitempty"`
}

// GameEvent represents a log entry surfaced by an intent
type GameEvent struct {
	Type      string    `json:"type"`
	Player    string    `json:"player,omitempty"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// LogOptions configures game log retrieval
type LogOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// LogResponse contains a paginated slice of the game log
type LogResponse struct {
	Entries     []engine.LogEntry `json:"entries"`
	Total       int               `json:"total"`
	Page        int               `json:"page"`
	PageSize    int               `json:"page_size"`
	TotalPages  int               `json:"total_pages"`
	HasNext     bool              `json:"has_next"`
	HasPrevious bool              `json:"has_previous"`
}

// ConfigInfo provides information about a board configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	Cities      int    `json:"cities"`
	Routes      int    `json:"routes"`
	Merchants   int    `json:"merchants"`
}
