package engine

import "math/rand"

// scoreLinks awards one victory point per built link to its owner.
func scoreLinks(gs *GameState) {
	for _, l := range gs.Links {
		if p, ok := gs.PlayerByID(l.Owner); ok {
			p.VictoryPoints++
		}
	}
}

// scoreFlippedIndustries awards every flipped industry its printed victory
// points. Unflipped industries score nothing.
func scoreFlippedIndustries(gs *GameState) {
	for _, b := range gs.Industries {
		if !b.Flipped {
			continue
		}
		if p, ok := gs.PlayerByID(b.Owner); ok {
			p.VictoryPoints += b.Tile.VictoryPoints
		}
	}
}

// endCanalEra runs the canal-era scoring and board reset: links score one
// point each and come off the board; flipped industries score their printed
// points and stay; unflipped industries are discarded; level-1 tiles are
// removed regardless of flip state; merchant beer is replenished; the
// discard and draw piles reshuffle into a fresh draw pile and every player
// is redealt a full hand. The rail era starts at round 1 with two actions.
func endCanalEra(cfg *GameConfig, gs *GameState, rng *rand.Rand) {
	scoreLinks(gs)
	gs.Links = nil

	scoreFlippedIndustries(gs)
	kept := gs.Industries[:0]
	for _, b := range gs.Industries {
		if !b.Flipped || b.Tile.Level == 1 {
			continue
		}
		kept = append(kept, b)
	}
	gs.Industries = kept

	for _, m := range gs.Merchants {
		m.BeerSpent = false
	}

	gs.Draw = append(gs.Draw, gs.DiscardPile...)
	gs.DiscardPile = nil
	shuffleCards(rng, gs.Draw)
	for _, p := range gs.Players {
		refillHand(cfg, gs, p)
	}

	gs.Era = EraRail
	gs.Round = 1
	gs.appendLog(LogEra, "", "the canal era ends; rail era begins")
}

// endRailEra runs the final scoring pass and terminates the game.
func endRailEra(gs *GameState) {
	scoreLinks(gs)
	scoreFlippedIndustries(gs)
	gs.Phase = TurnPhase{State: PhaseGameOver}
	gs.Selection = Selection{}

	winner := gs.Players[0]
	for _, p := range gs.Players[1:] {
		if p.VictoryPoints > winner.VictoryPoints {
			winner = p
		}
	}
	gs.appendLog(LogEra, "", "the rail era ends; %s wins with %d victory points", winner.Name, winner.VictoryPoints)
}
