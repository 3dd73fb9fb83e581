package engine

import (
	"fmt"
	"math/rand"
)

// Engine provides the main interface for game operations.
type Engine interface {
	// Intent processing
	Dispatch(in Intent) bool

	// Game state access
	Snapshot() Snapshot
	State() *GameState
	Config() *GameConfig

	// Convenience queries
	PhasePath() string
	IsGameOver() bool
	CurrentEra() Era
	Round() int
}

// Snapshot is the read-only view exposed to transports and UIs: the phase
// path, the full state, and the outcome of the last submitted intent.
type Snapshot struct {
	PhasePath string       `json:"phase_path"`
	State     *GameState   `json:"state"`
	Rejected  bool         `json:"rejected"`
	Reason    string       `json:"reason,omitempty"`
	LastError *ActionError `json:"last_error,omitempty"`
}

// GameEngine implements the Engine interface. One engine owns one game; it
// processes intents strictly one at a time and replaces its state snapshot
// atomically, so a caller never observes a partially mutated game.
type GameEngine struct {
	cfg   *GameConfig
	state *GameState
	rng   *rand.Rand

	rejected     bool
	rejectReason string
}

// NewEngine creates an engine in the setup phase. All randomness (the setup
// shuffle and the era-end reshuffle) flows from the given seed, so scenarios
// replay deterministically.
func NewEngine(cfg *GameConfig, seed int64) (*GameEngine, error) {
	if err := ValidateGameConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return &GameEngine{
		cfg:   cfg,
		state: &GameState{Phase: TurnPhase{State: PhaseSetup}},
		rng:   rand.New(rand.NewSource(seed)),
	}, nil
}

// NewEngineWithDefaults creates an engine on the built-in board.
func NewEngineWithDefaults(seed int64) *GameEngine {
	eng, err := NewEngine(DefaultGameConfig(), seed)
	if err != nil {
		panic("engine: default config is invalid: " + err.Error())
	}
	return eng
}

// Dispatch processes one intent to completion and reports whether it was
// accepted. Guard-rejected intents leave the state untouched and record the
// rejection for the next Snapshot. Validator-rejected intents are accepted
// at this level: they produce a state carrying the error context.
func (e *GameEngine) Dispatch(in Intent) bool {
	next := Transition(e.cfg, e.state, e.rng, in)
	if next == nil {
		e.rejected = true
		e.rejectReason = fmt.Sprintf("%s is not possible in phase %s", in.IntentName(), e.state.Phase.Path())
		return false
	}
	e.rejected = false
	e.rejectReason = ""
	e.state = next
	return true
}

// Snapshot returns the current read-only view.
func (e *GameEngine) Snapshot() Snapshot {
	return Snapshot{
		PhasePath: e.state.Phase.Path(),
		State:     e.state,
		Rejected:  e.rejected,
		Reason:    e.rejectReason,
		LastError: e.state.ErrorContext,
	}
}

// State returns the current game state. Callers must treat it as read-only.
func (e *GameEngine) State() *GameState {
	return e.state
}

// SetState replaces the game state (used when loading a persisted game).
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	e.state = state
	return nil
}

// Config returns the board configuration the engine was built with.
func (e *GameEngine) Config() *GameConfig {
	return e.cfg
}

// PhasePath returns the dotted phase path, e.g. "playing.build.confirming".
func (e *GameEngine) PhasePath() string {
	return e.state.Phase.Path()
}

// IsGameOver reports whether the game has terminated.
func (e *GameEngine) IsGameOver() bool {
	return e.state.Phase.State == PhaseGameOver
}

// CurrentEra returns the active era.
func (e *GameEngine) CurrentEra() Era {
	return e.state.Era
}

// Round returns the current round number.
func (e *GameEngine) Round() int {
	return e.state.Round
}
