package engine

import "fmt"

// LinkChoice is a transient, not-yet-built link selection.
type LinkChoice struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Selection holds the transient in-flight selections of the active action.
// CANCEL discards these fields and nothing else.
type Selection struct {
	CardID     string         `json:"card_id,omitempty"`
	ExtraCards []string       `json:"extra_cards,omitempty"` // scout discards beyond the first card
	City       string         `json:"city,omitempty"`
	Industry   IndustryType   `json:"industry,omitempty"`
	Develop    []IndustryType `json:"develop,omitempty"`
	Link       *LinkChoice    `json:"link,omitempty"`
	SecondLink *LinkChoice    `json:"second_link,omitempty"`
}

// GameState is the complete, serializable state of one game. It is treated
// as immutable: every transition deep-clones it and returns the successor.
type GameState struct {
	Phase            TurnPhase        `json:"phase"`
	Era              Era              `json:"era"`
	Round            int              `json:"round"`
	Players          []*Player        `json:"players"` // index = turn slot
	Current          int              `json:"current"`
	ActionsRemaining int              `json:"actions_remaining"`
	Coal             Market           `json:"coal_market"`
	Iron             Market           `json:"iron_market"`
	Industries       []*BuiltIndustry `json:"industries"`
	Links            []Link           `json:"links"`
	Merchants        []*Merchant      `json:"merchants"`
	Draw             []Card           `json:"draw_pile"`
	DiscardPile      []Card           `json:"discard_pile"`
	WildLocations    []Card           `json:"wild_locations"`
	WildIndustries   []Card           `json:"wild_industries"`
	Selection        Selection        `json:"selection"`
	Log              []LogEntry       `json:"log"`
	ErrorContext     *ActionError     `json:"error_context,omitempty"`
}

// CurrentPlayer returns the player whose turn it is.
func (gs *GameState) CurrentPlayer() *Player {
	if gs.Current < 0 || gs.Current >= len(gs.Players) {
		panic(fmt.Sprintf("engine: current player index %d out of range", gs.Current))
	}
	return gs.Players[gs.Current]
}

// PlayerByID finds a player by ID.
func (gs *GameState) PlayerByID(id string) (*Player, bool) {
	for _, p := range gs.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// IndustryAt returns the built industry occupying the given city slot.
func (gs *GameState) IndustryAt(city string, slot int) (*BuiltIndustry, bool) {
	for _, b := range gs.Industries {
		if b.City == city && b.Slot == slot {
			return b, true
		}
	}
	return nil, false
}

// LinkBetween returns the built link on the unordered city pair, if any.
func (gs *GameState) LinkBetween(from, to string) (Link, bool) {
	a, b := NormalizedPair(from, to)
	for _, l := range gs.Links {
		if l.A == a && l.B == b {
			return l, true
		}
	}
	return Link{}, false
}

// appendLog adds an entry to the append-only log. player is a player ID or
// empty for system entries.
func (gs *GameState) appendLog(kind LogKind, player, format string, args ...any) {
	gs.Log = append(gs.Log, LogEntry{
		Seq:     len(gs.Log) + 1,
		Kind:    kind,
		Player:  player,
		Message: fmt.Sprintf(format, args...),
	})
}

// actionsPerTurn is 1 for round 1 of the canal era and 2 otherwise.
func (gs *GameState) actionsPerTurn() int {
	if gs.Era == EraCanal && gs.Round == 1 {
		return 1
	}
	return 2
}

// eraBoundaryReached reports the era end condition: draw pile empty and
// every hand empty.
func (gs *GameState) eraBoundaryReached() bool {
	if len(gs.Draw) > 0 {
		return false
	}
	for _, p := range gs.Players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the state. Transitions mutate only clones.
func (gs *GameState) Clone() *GameState {
	next := *gs

	next.Players = make([]*Player, len(gs.Players))
	for i, p := range gs.Players {
		cp := *p
		cp.Hand = append([]Card(nil), p.Hand...)
		cp.Mat = make(map[IndustryType][]TileSpec, len(p.Mat))
		for t, row := range p.Mat {
			cp.Mat[t] = append([]TileSpec(nil), row...)
		}
		next.Players[i] = &cp
	}

	next.Coal.Levels = append([]MarketLevel(nil), gs.Coal.Levels...)
	next.Iron.Levels = append([]MarketLevel(nil), gs.Iron.Levels...)

	next.Industries = make([]*BuiltIndustry, len(gs.Industries))
	for i, b := range gs.Industries {
		cb := *b
		next.Industries[i] = &cb
	}

	next.Links = append([]Link(nil), gs.Links...)

	next.Merchants = make([]*Merchant, len(gs.Merchants))
	for i, m := range gs.Merchants {
		cm := *m
		cm.Icons = append([]IndustryType(nil), m.Icons...)
		next.Merchants[i] = &cm
	}

	next.Draw = append([]Card(nil), gs.Draw...)
	next.DiscardPile = append([]Card(nil), gs.DiscardPile...)
	next.WildLocations = append([]Card(nil), gs.WildLocations...)
	next.WildIndustries = append([]Card(nil), gs.WildIndustries...)

	next.Selection = gs.Selection
	next.Selection.ExtraCards = append([]string(nil), gs.Selection.ExtraCards...)
	next.Selection.Develop = append([]IndustryType(nil), gs.Selection.Develop...)
	if gs.Selection.Link != nil {
		l := *gs.Selection.Link
		next.Selection.Link = &l
	}
	if gs.Selection.SecondLink != nil {
		l := *gs.Selection.SecondLink
		next.Selection.SecondLink = &l
	}

	next.Log = append([]LogEntry(nil), gs.Log...)
	if gs.ErrorContext != nil {
		e := *gs.ErrorContext
		next.ErrorContext = &e
	}

	return &next
}
