package main

import (
	"os"
	"testing"

	log "github.com/inconshreveable/log15/v3"
)

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName == "" {
		t.Error("AppName should not be empty")
	}

	expectedVersion := "1.0.0"
	if Version != expectedVersion {
		t.Errorf("Expected version %s, got %s", expectedVersion, Version)
	}

	expectedAppName := "Brassline Server"
	if AppName != expectedAppName {
		t.Errorf("Expected app name %s, got %s", expectedAppName, AppName)
	}
}

func TestSetupLogger(t *testing.T) {
	logger := setupLogger(false, os.Stderr)
	if logger == nil {
		t.Fatal("Expected logger to be created")
	}

	debugLogger := setupLogger(true, os.Stderr)
	if debugLogger == nil {
		t.Fatal("Expected debug logger to be created")
	}
}

func TestInitializeServices(t *testing.T) {
	if _, err := os.Stat("configs"); os.IsNotExist(err) {
		t.Skip("Skipping test - configs directory not found")
	}

	gameService, manager, err := initializeServices("configs", log.New("module", "test"))
	if err != nil {
		t.Fatalf("Failed to initialize services: %v", err)
	}

	if gameService == nil {
		t.Fatal("Expected game service to be initialized")
	}
	if manager == nil {
		t.Fatal("Expected session manager to be initialized")
	}
}

func TestInitializeServices_InvalidConfigDir(t *testing.T) {
	_, _, err := initializeServices("/non/existent/path", log.New("module", "test"))
	if err == nil {
		t.Error("Expected error for non-existent config directory")
	}
}

// Note: We can't easily test main(), runHTTPServer(), and
// runStdioMCPWithInternalServer() without significant mocking, as they start
// servers and block. These paths are covered by integration tests against a
// running server.
