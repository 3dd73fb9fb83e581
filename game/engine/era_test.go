package engine

import (
	"math/rand"
	"testing"
)

func TestEndCanalEraScoringAndCleanup(t *testing.T) {
	cfg := DefaultGameConfig()
	p1 := &Player{ID: "player-1", Name: "amy", Mat: map[IndustryType][]TileSpec{}}
	p2 := &Player{ID: "player-2", Name: "joe", Mat: map[IndustryType][]TileSpec{}}
	gs := &GameState{
		Era:     EraCanal,
		Round:   9,
		Players: []*Player{p1, p2},
		Links: []Link{
			{A: "Coalbrook", B: "Ironford", Kind: EraCanal, Owner: "player-1"},
			{A: "Ironford", B: "Weaverham", Kind: EraCanal, Owner: "player-1"},
			{A: "Marlton", B: "Weaverham", Kind: EraCanal, Owner: "player-2"},
		},
		Industries: []*BuiltIndustry{
			{City: "Coalbrook", Owner: "player-1", Tile: TileSpec{Type: CoalMine, Level: 1, VictoryPoints: 1}, Flipped: true},
			{City: "Ironford", Owner: "player-1", Tile: TileSpec{Type: IronWorks, Level: 2, VictoryPoints: 5}, Flipped: true},
			{City: "Marlton", Owner: "player-2", Tile: TileSpec{Type: Brewery, Level: 2, VictoryPoints: 5}},
		},
		Merchants:   []*Merchant{{City: "Northport", Icons: []IndustryType{CottonMill}, Beer: true, BeerSpent: true}},
		DiscardPile: buildDeck(cfg, 2),
	}

	endCanalEra(cfg, gs, rand.New(rand.NewSource(7)))

	// player-1: 2 links + flipped level-1 mine (1) + flipped works (5) = 8.
	if p1.VictoryPoints != 8 {
		t.Errorf("expected player-1 at 8 victory points, got %d", p1.VictoryPoints)
	}
	// player-2: 1 link; the unflipped brewery scores nothing.
	if p2.VictoryPoints != 1 {
		t.Errorf("expected player-2 at 1 victory point, got %d", p2.VictoryPoints)
	}
	if len(gs.Links) != 0 {
		t.Errorf("expected all links removed, %d remain", len(gs.Links))
	}
	// The flipped level-1 mine and the unflipped brewery are both removed;
	// only the flipped level-2 works survives into the rail era.
	if len(gs.Industries) != 1 || gs.Industries[0].Tile.Type != IronWorks {
		t.Fatalf("expected only the level-2 iron works kept, got %d industries", len(gs.Industries))
	}
	if gs.Merchants[0].BeerSpent {
		t.Error("expected merchant beer replenished")
	}
	if gs.Era != EraRail || gs.Round != 1 {
		t.Errorf("expected rail era round 1, got %s round %d", gs.Era, gs.Round)
	}
	for _, p := range gs.Players {
		if len(p.Hand) != cfg.HandSize {
			t.Errorf("expected %s redealt a full hand of %d, got %d", p.ID, cfg.HandSize, len(p.Hand))
		}
	}
}

func TestPassingToTheCanalBoundaryEntersTheRailEra(t *testing.T) {
	eng := startedEngine(t, 11, "amy", "joe")

	// Each pass burns one card; once the draw pile and every hand are empty
	// the round wrap must close the canal era through the controller.
	for i := 0; i < 500 && eng.CurrentEra() == EraCanal; i++ {
		mustDispatch(t, eng, SelectAction{Kind: ActionPass})
	}

	gs := eng.State()
	if gs.Era != EraRail {
		t.Fatal("expected the canal era to end within 500 passes")
	}
	if gs.Round != 1 {
		t.Errorf("expected the rail era to open at round 1, got %d", gs.Round)
	}
	if gs.ActionsRemaining != 2 {
		t.Errorf("expected two actions in the first rail round, got %d", gs.ActionsRemaining)
	}
	if eng.PhasePath() != "playing.choosingAction" {
		t.Errorf("expected choosingAction after the era turn, got %s", eng.PhasePath())
	}
	for _, p := range gs.Players {
		if len(p.Hand) != eng.Config().HandSize {
			t.Errorf("expected %s redealt %d cards, got %d", p.ID, eng.Config().HandSize, len(p.Hand))
		}
	}
	if !logContains(gs, "the canal era ends") {
		t.Error("expected the era transition logged")
	}
	// The canal boundary still settles income before the era sweep.
	if !logContains(gs, "collected £") {
		t.Error("expected income collected at the boundary round")
	}
}

func TestEndRailEraScoresAndTerminates(t *testing.T) {
	p1 := &Player{ID: "player-1", Name: "amy", VictoryPoints: 10}
	p2 := &Player{ID: "player-2", Name: "joe", VictoryPoints: 3}
	gs := &GameState{
		Era:     EraRail,
		Players: []*Player{p1, p2},
		Links:   []Link{{A: "Coalbrook", B: "Ironford", Kind: EraRail, Owner: "player-2"}},
		Industries: []*BuiltIndustry{
			{City: "Coalbrook", Owner: "player-2", Tile: TileSpec{Type: CoalMine, Level: 4, VictoryPoints: 4}, Flipped: true},
		},
	}

	endRailEra(gs)

	if gs.Phase.State != PhaseGameOver {
		t.Fatalf("expected gameOver, got %s", gs.Phase.State)
	}
	if p2.VictoryPoints != 8 {
		t.Errorf("expected player-2 at 3+1+4=8, got %d", p2.VictoryPoints)
	}
	if !logContains(gs, "amy wins") {
		t.Error("expected the winner announced in the log")
	}
}
