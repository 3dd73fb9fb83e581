package engine

import (
	"fmt"
	"math/rand"
)

// buildDeck expands the config's deck specs for the given player count.
// Card IDs are deterministic so tests and persisted games stay stable.
func buildDeck(cfg *GameConfig, playerCount int) []Card {
	var deck []Card
	for i, spec := range cfg.Deck {
		if spec.MinPlayers > playerCount {
			continue
		}
		for n := 0; n < spec.Count; n++ {
			card := Card{
				ID:         fmt.Sprintf("card-%d-%d", i, n),
				Kind:       spec.Kind,
				City:       spec.City,
				Industries: append([]IndustryType(nil), spec.Industries...),
			}
			deck = append(deck, card)
		}
	}
	return deck
}

// buildWildPiles creates the shared wild card reserves scout draws from.
func buildWildPiles(cfg *GameConfig) (locations, industries []Card) {
	for n := 0; n < cfg.WildLocationCards; n++ {
		locations = append(locations, Card{ID: fmt.Sprintf("wild-location-%d", n), Kind: CardWildLocation})
	}
	for n := 0; n < cfg.WildIndustryCards; n++ {
		industries = append(industries, Card{ID: fmt.Sprintf("wild-industry-%d", n), Kind: CardWildIndustry})
	}
	return locations, industries
}

// shuffleCards shuffles in place using the engine's injected random source.
// Executors never touch ambient randomness.
func shuffleCards(rng *rand.Rand, cards []Card) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// refillHand draws the player back up to the hand-size cap. A no-op once
// the draw pile is empty.
func refillHand(cfg *GameConfig, gs *GameState, p *Player) {
	for len(p.Hand) < cfg.HandSize && len(gs.Draw) > 0 {
		p.Hand = append(p.Hand, gs.Draw[0])
		gs.Draw = gs.Draw[1:]
	}
}

// discardFromHand moves the identified card from the hand to the discard
// pile. Wild cards return to their shared reserve instead.
func discardFromHand(gs *GameState, p *Player, cardID string) {
	for i, c := range p.Hand {
		if c.ID != cardID {
			continue
		}
		p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
		switch c.Kind {
		case CardWildLocation:
			gs.WildLocations = append(gs.WildLocations, c)
		case CardWildIndustry:
			gs.WildIndustries = append(gs.WildIndustries, c)
		default:
			gs.DiscardPile = append(gs.DiscardPile, c)
		}
		return
	}
	panic("engine: discarding card " + cardID + " that is not in hand")
}
