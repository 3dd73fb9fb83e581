// Package config provides board configuration management for Brassline.
//
// The config package handles:
//   - Loading board configurations from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Board configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Cities with their build slots and the routes between them
//   - Off-board merchants with their accepted industry icons
//   - Coal and iron market price ladders
//   - The per-player tile catalog and the card deck composition
//   - Action costs (links, loans, develop) and starting resources
//
// Available Configurations:
//
// The package ships with two boards:
//   - ironshire: the standard eight-city board for 2-4 players
//   - twin_rivers: a tighter six-city board favouring network play
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	boardConfig, err := manager.LoadConfig("twin_rivers")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated for:
//   - Cities with at least one slot, each accepting known industry types
//   - Routes connecting known locations in at least one era
//   - Strictly ascending market ladders ending in an unbounded tier
//   - Tile rows ordered by level with positive counts
//   - Deck entries referencing known cities and industry types
package config
