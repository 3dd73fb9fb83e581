// Command validate provides a small CLI that validates board configuration
// JSON files in the ../configs directory. It checks:
//   - JSON structure and the engine's structural rules (cities, routes,
//     markets, merchants, tiles, deck)
//   - Route connectivity: every city and merchant reachable from the first
//     city over the printed route network, per era
//   - Deck/tile sanity: every deck industry has tiles to build and every
//     city card references a city that exists
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brassline/brassline/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single board JSON file. It runs the
// engine's structural validation first, then the lints the engine does not
// enforce.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Structural validation: %v", err))
		return result
	}

	// Connectivity per era over the printed routes
	for _, era := range []engine.Era{engine.EraCanal, engine.EraRail} {
		conn := validateConnectivity(&config, era)
		if !conn.Valid {
			result.Valid = false
		}
		result.Errors = append(result.Errors, conn.Errors...)
	}

	// Deck sanity: every industry card type must have tiles on the mat
	for _, spec := range config.Deck {
		for _, t := range spec.Industries {
			if len(config.Tiles[t]) == 0 {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("Deck references industry %q but no tiles of that type exist", t))
			}
		}
	}

	// Slot coverage: warn when an industry type appears on no slot anywhere
	slotTypes := map[engine.IndustryType]bool{}
	for _, city := range config.Cities {
		for _, slot := range city.Slots {
			for _, t := range slot.Types {
				slotTypes[t] = true
			}
		}
	}
	for t := range config.Tiles {
		if !slotTypes[t] {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Tiles of type %q exist but no city slot accepts them", t))
		}
	}

	// Add informational data
	if result.Valid {
		deckSize := 0
		for _, spec := range config.Deck {
			deckSize += spec.Count
		}
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Cities: %d", len(config.Cities)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Routes: %d", len(config.Routes)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Merchants: %d", len(config.Merchants)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Deck entries: %d (base size %d)", len(config.Deck), deckSize))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Hand size: %d, starting money: £%d", config.HandSize, config.StartingMoney))
	}

	return result
}

// validateConnectivity ensures every city and merchant is reachable from the
// first city over routes buildable in the given era. A board that fails this
// has locations no link can ever serve in that era.
func validateConnectivity(config *engine.GameConfig, era engine.Era) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	if len(config.Cities) == 0 {
		result.Valid = false
		result.Errors = append(result.Errors, "Cannot validate connectivity: no cities")
		return result
	}

	// Adjacency over routes flagged for this era
	adjacent := map[string][]string{}
	for _, r := range config.Routes {
		usable := (era == engine.EraCanal && r.Canal) || (era == engine.EraRail && r.Rail)
		if !usable {
			continue
		}
		adjacent[r.A] = append(adjacent[r.A], r.B)
		adjacent[r.B] = append(adjacent[r.B], r.A)
	}

	// Flood fill from the first city
	visited := map[string]bool{}
	queue := []string{config.Cities[0].Name}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		for _, next := range adjacent[current] {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	var unreachable []string
	for _, city := range config.Cities {
		if !visited[city.Name] {
			unreachable = append(unreachable, city.Name)
		}
	}
	for _, m := range config.Merchants {
		if !visited[m.City] {
			unreachable = append(unreachable, m.City+" (merchant)")
		}
	}

	total := len(config.Cities) + len(config.Merchants)
	if len(unreachable) > 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Connectivity failure (%s era): %d/%d locations unreachable", era, len(unreachable), total))
		for _, name := range unreachable {
			result.Errors = append(result.Errors, fmt.Sprintf("Unreachable in %s era: %s", era, name))
		}
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Connectivity (%s era): all %d locations reachable", era, total))
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
