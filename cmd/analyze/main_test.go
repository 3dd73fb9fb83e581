package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/brassline/brassline/game/engine"
)

func writeBoard(t *testing.T, cfg *engine.GameConfig) string {
	t.Helper()

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "board.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDeckSize(t *testing.T) {
	cfg := engine.DefaultGameConfig()

	two := deckSize(cfg, 2)
	three := deckSize(cfg, 3)
	four := deckSize(cfg, 4)

	if two >= three {
		t.Errorf("Expected 3-player deck larger than 2-player, got %d vs %d", three, two)
	}
	if three >= four {
		t.Errorf("Expected 4-player deck larger than 3-player, got %d vs %d", four, three)
	}
}

func TestRoundsPerEra(t *testing.T) {
	cfg := engine.DefaultGameConfig()

	rounds := roundsPerEra(cfg, 2)
	if rounds <= 0 {
		t.Errorf("Expected positive round estimate, got %d", rounds)
	}

	expected := deckSize(cfg, 2) / 4
	if rounds != expected {
		t.Errorf("Expected %d rounds at 2 players, got %d", expected, rounds)
	}
}

func TestSlotCapacity(t *testing.T) {
	cfg := engine.DefaultGameConfig()

	capacity := slotCapacity(cfg)

	for _, typ := range []engine.IndustryType{
		engine.CottonMill, engine.CoalMine, engine.IronWorks, engine.Brewery, engine.Pottery,
	} {
		if capacity[typ] == 0 {
			t.Errorf("Expected at least one slot for %s", typ)
		}
	}

	// Coalbrook has two coal slots; the board carries more elsewhere
	if capacity[engine.CoalMine] < 2 {
		t.Errorf("Expected at least 2 coal slots, got %d", capacity[engine.CoalMine])
	}
}

func TestRouteDegrees(t *testing.T) {
	cfg := engine.DefaultGameConfig()

	degrees := routeDegrees(cfg)

	for _, city := range cfg.Cities {
		if degrees[city.Name] < 2 {
			t.Errorf("Expected city %s to have at least 2 routes, got %d", city.Name, degrees[city.Name])
		}
	}

	// Merchants appear as route endpoints too
	for _, m := range cfg.Merchants {
		if degrees[m.City] == 0 {
			t.Errorf("Expected merchant %s to have at least 1 route", m.City)
		}
	}
}

func TestAnalyzeConfig_ValidFile(t *testing.T) {
	path := writeBoard(t, engine.DefaultGameConfig())

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked: %v", r)
		}
	}()

	analyzeConfig(path)
}

func TestAnalyzeConfig_InvalidFile(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked with invalid file: %v", r)
		}
	}()

	analyzeConfig("/non/existent/file.json")
}

func TestAnalyzeConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"name": "test", invalid json}`), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked with invalid JSON: %v", r)
		}
	}()

	analyzeConfig(path)
}

func TestAnalyzeConfig_Chokepoints(t *testing.T) {
	cfg := engine.DefaultGameConfig()
	// Give Tanford exactly one printed route
	var kept []engine.Route
	for _, r := range cfg.Routes {
		if (r.A == "Tanford" || r.B == "Tanford") && !(r.A == "Stanlow" || r.B == "Stanlow") {
			continue
		}
		kept = append(kept, r)
	}
	cfg.Routes = kept
	path := writeBoard(t, cfg)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked with chokepoint board: %v", r)
		}
	}()

	analyzeConfig(path)

	degrees := routeDegrees(cfg)
	if degrees["Tanford"] != 1 {
		t.Errorf("Expected Tanford degree 1 after trimming, got %d", degrees["Tanford"])
	}
}
