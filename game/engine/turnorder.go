package engine

import "sort"

// reseatPlayers reorders the turn slots for the next round: ascending by
// money spent this round, ties keeping the prior relative order. The first
// player in the new order starts the next round.
func reseatPlayers(gs *GameState) {
	sort.SliceStable(gs.Players, func(i, j int) bool {
		return gs.Players[i].Spent < gs.Players[j].Spent
	})
	gs.Current = 0
}

// resetSpendLedger clears the per-round spend ledger after reseating.
func resetSpendLedger(gs *GameState) {
	for _, p := range gs.Players {
		p.Spent = 0
	}
}
