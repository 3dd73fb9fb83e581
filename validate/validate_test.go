package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brassline/brassline/game/engine"
)

// writeConfig marshals a board config to a temp file and returns its path.
func writeConfig(t *testing.T, cfg *engine.GameConfig) string {
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

func TestValidateConfig_ValidConfig(t *testing.T) {
	path := writeConfig(t, engine.DefaultGameConfig())

	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid config, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}

	foundCities := false
	for _, info := range result.Errors {
		if contains(info, "✓ Cities: 8") {
			foundCities = true
		}
	}
	if !foundCities {
		t.Errorf("Expected city count in info lines, got: %v", result.Errors)
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"name": "test", invalid json}`), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to bad JSON")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Invalid JSON") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Invalid JSON' error")
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Failed to read file") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidateConfig_StructuralFailure(t *testing.T) {
	cfg := engine.DefaultGameConfig()
	cfg.Cities = nil
	path := writeConfig(t, cfg)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config with no cities")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Structural validation") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected 'Structural validation' error, got: %v", result.Errors)
	}
}

func TestValidateConfig_OrphanedTileType(t *testing.T) {
	cfg := engine.DefaultGameConfig()
	// Strip pottery from every slot so its tiles have nowhere to go
	for i := range cfg.Cities {
		for j := range cfg.Cities[i].Slots {
			var kept []engine.IndustryType
			for _, typ := range cfg.Cities[i].Slots[j].Types {
				if typ != engine.Pottery {
					kept = append(kept, typ)
				}
			}
			cfg.Cities[i].Slots[j].Types = kept
		}
	}
	path := writeConfig(t, cfg)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config when pottery tiles have no slot")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "no city slot accepts them") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected orphaned tile error, got: %v", result.Errors)
	}
}

func TestValidateConnectivity_ValidBoard(t *testing.T) {
	cfg := engine.DefaultGameConfig()

	for _, era := range []engine.Era{engine.EraCanal, engine.EraRail} {
		result := validateConnectivity(cfg, era)
		if !result.Valid {
			t.Errorf("Expected valid %s connectivity, but got errors: %v", era, result.Errors)
		}
	}
}

func TestValidateConnectivity_UnreachableCity(t *testing.T) {
	cfg := engine.DefaultGameConfig()
	// Sever Kilnhurst's only canal routes; the era network splits
	var kept []engine.Route
	for _, r := range cfg.Routes {
		if r.A == "Kilnhurst" || r.B == "Kilnhurst" {
			r.Canal = false
		}
		kept = append(kept, r)
	}
	cfg.Routes = kept

	result := validateConnectivity(cfg, engine.EraCanal)
	if result.Valid {
		t.Error("Expected invalid connectivity with Kilnhurst cut off")
	}

	foundFailure := false
	foundCity := false
	for _, err := range result.Errors {
		if contains(err, "Connectivity failure") {
			foundFailure = true
		}
		if contains(err, "Kilnhurst") {
			foundCity = true
		}
	}
	if !foundFailure {
		t.Error("Expected 'Connectivity failure' error")
	}
	if !foundCity {
		t.Errorf("Expected Kilnhurst named as unreachable, got: %v", result.Errors)
	}
}

func TestValidateConnectivity_NoCities(t *testing.T) {
	cfg := &engine.GameConfig{}

	result := validateConnectivity(cfg, engine.EraCanal)
	if result.Valid {
		t.Error("Expected invalid result with no cities")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Cannot validate connectivity") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Cannot validate connectivity' error")
	}
}

// Helper function to check if a string contains a substring
func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
