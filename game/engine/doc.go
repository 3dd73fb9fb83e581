// Package engine implements the rules of a two-era industrial board game
// for 2-4 players. It is the sole arbiter of legality and state change;
// transports and UIs consume read-only snapshots and submit typed intents.
//
// The engine package implements the game mechanics including:
//   - The turn/action state machine (build, develop, sell, scout, loan,
//     network, pass) with guarded transitions and cancellable selections
//   - Priced coal and iron markets with bounded tiers and an unbounded
//     fallback tier
//   - The player network graph and board-wide connectivity
//   - Industry tile flipping and income advancement
//   - End-of-round income collection with shortfall liquidation
//   - Era scoring, board cleanup, and the canal-to-rail transition
//
// Core Types:
//
// GameState is an immutable-by-replacement snapshot of a whole game.
// Transition is the pure transition function over (GameState, Intent);
// GameEngine wraps it with snapshot bookkeeping. GameConfig defines the
// board, tile catalog, markets, and deck, loaded from JSON files or built
// in code by DefaultGameConfig.
//
// Usage:
//
//	cfg := engine.DefaultGameConfig()
//	eng, err := engine.NewEngine(cfg, 42)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	eng.Dispatch(engine.StartGame{Players: []string{"amy", "joe"}})
//	eng.Dispatch(engine.SelectAction{Kind: engine.ActionLoan})
//	snap := eng.Snapshot()
//
// Failure semantics follow three tiers: structurally impossible intents are
// silently ignored (no log, no mutation); rule violations detected by an
// executor append an error log entry and leave the turn and all resources
// unchanged; invariant violations that indicate a guard/executor mismatch
// panic.
package engine
