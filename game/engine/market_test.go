package engine

import "testing"

func testCoalMarket() Market {
	return Market{
		Resource: ResourceCoal,
		Levels: []MarketLevel{
			{Price: 1, Cubes: 1, Max: 2},
			{Price: 2, Cubes: 2, Max: 2},
			{Price: 3, Cubes: 2, Max: 2},
			{Price: 4, Unbounded: true},
		},
	}
}

func TestMarketBuyDrainsCheapestFirst(t *testing.T) {
	m := testCoalMarket()

	cost := m.Buy(2)
	if cost != 1+2 {
		t.Errorf("expected first two cubes to cost £3, got £%d", cost)
	}
	if m.Levels[0].Cubes != 0 {
		t.Errorf("expected £1 tier drained, has %d cubes", m.Levels[0].Cubes)
	}
	if m.Levels[1].Cubes != 1 {
		t.Errorf("expected £2 tier at 1 cube, has %d", m.Levels[1].Cubes)
	}
}

func TestMarketBuyFallsBackToUnboundedTier(t *testing.T) {
	m := testCoalMarket()

	// Drain all five bounded cubes plus two from the fallback tier.
	cost := m.Buy(7)
	want := 1 + 2 + 2 + 3 + 3 + 4 + 4
	if cost != want {
		t.Errorf("expected total cost £%d, got £%d", want, cost)
	}
	if m.BoundedCubes() != 0 {
		t.Errorf("expected bounded tiers empty, have %d cubes", m.BoundedCubes())
	}

	// The fallback tier always supplies at its fixed price.
	if cost := m.Buy(3); cost != 12 {
		t.Errorf("expected fallback purchases at £4 each, got £%d for three", cost)
	}
}

func TestMarketSellFillsMostExpensiveFirst(t *testing.T) {
	m := testCoalMarket()
	m.Levels[1].Cubes = 0
	m.Levels[2].Cubes = 0

	proceeds, unsold := m.SellCubes(3)
	if unsold != 0 {
		t.Fatalf("expected all cubes sold, %d unsold", unsold)
	}
	if proceeds != 3+3+2 {
		t.Errorf("expected proceeds £8, got £%d", proceeds)
	}
	if m.Levels[2].Cubes != 2 || m.Levels[1].Cubes != 1 {
		t.Errorf("expected £3 tier filled before £2 tier, got %d and %d",
			m.Levels[2].Cubes, m.Levels[1].Cubes)
	}
}

func TestMarketSellSkipsFullTiersAndFallback(t *testing.T) {
	m := testCoalMarket()
	m.Levels[0].Cubes = 2 // fill the only partially full tier

	// Every bounded tier is now full; cubes must remain unsold, never
	// entering the purchase-only fallback tier.
	proceeds, unsold := m.SellCubes(2)
	if proceeds != 0 {
		t.Errorf("expected no proceeds, got £%d", proceeds)
	}
	if unsold != 2 {
		t.Errorf("expected 2 unsold cubes, got %d", unsold)
	}
}

func TestConsumeSupplyPrefersConnectedProduction(t *testing.T) {
	gs := &GameState{
		Coal: testCoalMarket(),
		Industries: []*BuiltIndustry{
			{City: "Pitford", Owner: "player-2", Tile: TileSpec{Type: CoalMine, Level: 1}, Coal: 1},
		},
		Links: []Link{{A: "Milltown", B: "Pitford", Kind: EraCanal, Owner: "player-1"}},
	}

	cost := gs.consumeSupply(ResourceCoal, 2, gs.reachableFrom("Milltown"))
	if cost != 1 {
		t.Errorf("expected one free cube and one £1 market cube, paid £%d", cost)
	}
	if gs.Industries[0].Coal != 0 {
		t.Errorf("expected the connected mine drained, has %d", gs.Industries[0].Coal)
	}
}

func TestConsumeSupplyIgnoresUnconnectedProduction(t *testing.T) {
	gs := &GameState{
		Coal: testCoalMarket(),
		Industries: []*BuiltIndustry{
			{City: "Pitford", Owner: "player-1", Tile: TileSpec{Type: CoalMine, Level: 1}, Coal: 2},
		},
	}

	// No links: the mine in another city is unreachable, so the market pays.
	cost := gs.consumeSupply(ResourceCoal, 1, gs.reachableFrom("Milltown"))
	if cost != 1 {
		t.Errorf("expected a £1 market purchase, paid £%d", cost)
	}
	if gs.Industries[0].Coal != 2 {
		t.Errorf("expected the unconnected mine untouched, has %d", gs.Industries[0].Coal)
	}
}

func TestBeerPriorityOwnThenConnectedOpponent(t *testing.T) {
	own := &BuiltIndustry{City: "Faraway", Owner: "player-1", Tile: TileSpec{Type: Brewery, Level: 1}, Beer: 1}
	opp := &BuiltIndustry{City: "Pitford", Owner: "player-2", Tile: TileSpec{Type: Brewery, Level: 1}, Beer: 1}
	gs := &GameState{
		Players:    []*Player{{ID: "player-1"}},
		Industries: []*BuiltIndustry{opp, own},
		Links:      []Link{{A: "Milltown", B: "Pitford", Kind: EraCanal, Owner: "player-2"}},
	}

	// Own breweries come first even without connectivity and even when an
	// opponent brewery appears earlier in board order.
	sources := gs.beerSources("player-1", gs.reachableFrom("Milltown"), false)
	if len(sources) != 2 {
		t.Fatalf("expected two beer sources, got %d", len(sources))
	}
	if sources[0].Industry != own {
		t.Error("expected the player's own brewery ranked first")
	}
	if sources[1].Industry != opp {
		t.Error("expected the connected opponent brewery ranked second")
	}
}

func TestConsumeBeerMerchantTokenGrantsBonus(t *testing.T) {
	p := &Player{ID: "player-1", Money: 0}
	gs := &GameState{
		Players:   []*Player{p},
		Merchants: []*Merchant{{City: "Seagate", Icons: []IndustryType{CottonMill}, Beer: true, Bonus: BonusMoney, BonusValue: 5}},
		Links:     []Link{{A: "Milltown", B: "Seagate", Kind: EraCanal, Owner: "player-1"}},
	}

	if err := gs.consumeBeer(p, 1, gs.reachableFrom("Milltown"), true); err != nil {
		t.Fatalf("expected merchant beer to cover the requirement: %v", err)
	}
	if !gs.Merchants[0].BeerSpent {
		t.Error("expected the merchant token spent")
	}
	if p.Money != 5 {
		t.Errorf("expected the £5 bonus granted, money is %d", p.Money)
	}
}

func TestConsumeBeerMerchantDisallowedForNetworkActions(t *testing.T) {
	p := &Player{ID: "player-1"}
	gs := &GameState{
		Players:   []*Player{p},
		Merchants: []*Merchant{{City: "Seagate", Icons: []IndustryType{CottonMill}, Beer: true}},
		Links:     []Link{{A: "Milltown", B: "Seagate", Kind: EraCanal, Owner: "player-1"}},
	}

	err := gs.consumeBeer(p, 1, gs.reachableFrom("Milltown"), false)
	if err == nil {
		t.Fatal("expected failure when merchant beer is disallowed")
	}
	if err.Code != ErrCodeInsufficientBeer {
		t.Errorf("expected code %s, got %s", ErrCodeInsufficientBeer, err.Code)
	}
	if gs.Merchants[0].BeerSpent {
		t.Error("expected the merchant token untouched on failure")
	}
}
