// Command analyze prints quick, human-readable heuristics about board
// configuration files in the project's configs directory. It summarizes deck
// sizes per player count, slot capacity against tile supply, route degrees,
// and highlights chokepoint cities and unsellable industry types.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/brassline/brassline/game/engine"
)

func main() {
	files, err := filepath.Glob(filepath.Join("configs", "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	for _, configFile := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(configFile))
		analyzeConfig(configFile)
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Cities: %d, Routes: %d, Merchants: %d\n",
		len(config.Cities), len(config.Routes), len(config.Merchants))
	fmt.Printf("Hand size: %d, Starting money: £%d\n", config.HandSize, config.StartingMoney)

	for players := engine.MinPlayers; players <= engine.MaxPlayers; players++ {
		size := deckSize(&config, players)
		fmt.Printf("Deck at %d players: %d cards (~%d rounds per era)\n",
			players, size, roundsPerEra(&config, players))
	}

	// Slot capacity vs per-player tile supply
	capacity := slotCapacity(&config)
	var types []engine.IndustryType
	for t := range config.Tiles {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	fmt.Println("\nSlot capacity vs tile supply (per player):")
	pressured := 0
	for _, t := range types {
		supply := 0
		for _, tc := range config.Tiles[t] {
			supply += tc.Count
		}
		fmt.Printf("  %-8s slots: %d, tiles each: %d\n", t, capacity[t], supply)
		if supply > capacity[t] {
			pressured++
		}
	}
	if pressured > 0 {
		fmt.Printf("✅ %d industry types have more tiles than slots (overbuild pressure is intended)\n", pressured)
	}

	// Route degrees: chokepoints are cities with a single printed route
	degrees := routeDegrees(&config)
	var chokepoints []string
	for _, city := range config.Cities {
		if degrees[city.Name] <= 1 {
			chokepoints = append(chokepoints, city.Name)
		}
	}
	if len(chokepoints) > 0 {
		fmt.Printf("⚠️  WARNING: %d cities have at most one printed route:\n", len(chokepoints))
		for _, name := range chokepoints {
			fmt.Printf("   Chokepoint: %s (%d routes)\n", name, degrees[name])
		}
	} else {
		fmt.Printf("✅ Every city has at least two printed routes\n")
	}

	// Merchant coverage: sellable types some merchant must accept
	sellable := map[engine.IndustryType]bool{}
	for t, row := range config.Tiles {
		for _, tc := range row {
			if tc.BeerToSell > 0 {
				sellable[t] = true
			}
		}
	}
	var uncovered []engine.IndustryType
	for t := range sellable {
		accepted := false
		for _, m := range config.Merchants {
			if m.Accepts(t) {
				accepted = true
				break
			}
		}
		if !accepted {
			uncovered = append(uncovered, t)
		}
	}
	sort.Slice(uncovered, func(i, j int) bool { return uncovered[i] < uncovered[j] })
	if len(uncovered) > 0 {
		fmt.Printf("⚠️  CRITICAL: %d sellable industry types have no merchant buyer!\n", len(uncovered))
		for _, t := range uncovered {
			fmt.Printf("   Unsellable: %s\n", t)
		}
	} else {
		fmt.Printf("✅ Every sellable industry type has at least one merchant buyer\n")
	}
}

// deckSize returns the draw pile size for the given player count, before
// dealing.
func deckSize(config *engine.GameConfig, players int) int {
	total := 0
	for _, spec := range config.Deck {
		if spec.MinPlayers > players {
			continue
		}
		total += spec.Count
	}
	return total
}

// roundsPerEra estimates how many full rounds the era lasts: the dealt hands
// plus the remaining draw pile are spent at roughly two cards per player per
// round.
func roundsPerEra(config *engine.GameConfig, players int) int {
	cards := deckSize(config, players)
	perRound := players * 2
	if perRound == 0 {
		return 0
	}
	return cards / perRound
}

// slotCapacity counts, per industry type, how many city slots can host it.
func slotCapacity(config *engine.GameConfig) map[engine.IndustryType]int {
	capacity := map[engine.IndustryType]int{}
	for _, city := range config.Cities {
		for _, slot := range city.Slots {
			for _, t := range slot.Types {
				capacity[t]++
			}
		}
	}
	return capacity
}

// routeDegrees counts printed routes touching each location.
func routeDegrees(config *engine.GameConfig) map[string]int {
	degrees := map[string]int{}
	for _, r := range config.Routes {
		degrees[r.A]++
		degrees[r.B]++
	}
	return degrees
}
