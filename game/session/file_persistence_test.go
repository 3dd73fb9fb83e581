package session

import (
	"testing"

	"github.com/brassline/brassline/game/engine"
	"github.com/brassline/brassline/game/service"
)

type stubConfigManager struct {
	cfg *engine.GameConfig
}

func (s *stubConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	return s.cfg, nil
}

func (s *stubConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	return []*service.ConfigInfo{{
		Filename: "test_board.json",
		ConfigID: "test_board",
		Name:     s.cfg.Name,
	}}, nil
}

func (s *stubConfigManager) GetDefault() *engine.GameConfig { return s.cfg }

func (s *stubConfigManager) SaveConfig(string, *engine.GameConfig) error { return nil }

func newTestPersistence(t *testing.T) (*FilePersistence, *engine.GameConfig) {
	t.Helper()
	cfg := createTestConfig()
	fp, err := NewFilePersistence(t.TempDir(), &stubConfigManager{cfg: cfg})
	if err != nil {
		t.Fatalf("Failed to create persistence: %v", err)
	}
	return fp, cfg
}

func TestFilePersistence_SaveAndLoad(t *testing.T) {
	fp, cfg := newTestPersistence(t)

	manager := NewManagerWithPersistence(fp)
	sess, err := manager.Create("persist-test", cfg)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// Play into the game so the persisted state is not just the setup phase.
	if !sess.Engine.Dispatch(engine.StartGame{Players: []string{"amy", "joe"}}) {
		t.Fatal("StartGame rejected")
	}
	if err := manager.Save(sess.ID); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	loaded, err := fp.Load("persist-test")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}
	if loaded.ID != sess.ID {
		t.Errorf("Expected ID %s, got %s", sess.ID, loaded.ID)
	}

	got := loaded.Engine.State()
	want := sess.Engine.State()
	if got.Phase.Path() != want.Phase.Path() {
		t.Errorf("Expected phase %s, got %s", want.Phase.Path(), got.Phase.Path())
	}
	if len(got.Players) != len(want.Players) {
		t.Fatalf("Expected %d players, got %d", len(want.Players), len(got.Players))
	}
	for i, p := range want.Players {
		lp := got.Players[i]
		if lp.ID != p.ID || lp.Money != p.Money || len(lp.Hand) != len(p.Hand) {
			t.Errorf("Player %d diverged after reload", i)
		}
	}
	if len(got.Log) != len(want.Log) {
		t.Errorf("Expected %d log entries, got %d", len(want.Log), len(got.Log))
	}
}

func TestFilePersistence_LoadedSessionKeepsPlaying(t *testing.T) {
	fp, cfg := newTestPersistence(t)

	manager := NewManagerWithPersistence(fp)
	sess, _ := manager.Create("resume-test", cfg)
	sess.Engine.Dispatch(engine.StartGame{Players: []string{"amy", "joe"}})
	manager.Save(sess.ID)

	// A fresh manager simulates a process restart; Get falls through to disk.
	restarted := NewManagerWithPersistence(fp)
	loaded, err := restarted.Get("resume-test")
	if err != nil {
		t.Fatalf("Failed to reload session: %v", err)
	}
	if !loaded.Engine.Dispatch(engine.SelectAction{Kind: engine.ActionPass}) {
		t.Error("Expected the reloaded engine to accept intents")
	}
}

func TestFilePersistence_Delete(t *testing.T) {
	fp, cfg := newTestPersistence(t)

	manager := NewManagerWithPersistence(fp)
	manager.Create("del-test", cfg)

	if !fp.Exists("del-test") {
		t.Fatal("Expected session file on disk after create")
	}
	if err := fp.Delete("del-test"); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if fp.Exists("del-test") {
		t.Error("Expected session file removed")
	}
	if err := fp.Delete("del-test"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestFilePersistence_ListAll(t *testing.T) {
	fp, cfg := newTestPersistence(t)

	manager := NewManagerWithPersistence(fp)
	manager.Create("one", cfg)
	manager.Create("two", cfg)

	ids, err := fp.ListAll()
	if err != nil {
		t.Fatalf("Failed to list: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("Expected 2 persisted sessions, got %d", len(ids))
	}
}

func TestManager_LoadPersistedSessions(t *testing.T) {
	fp, cfg := newTestPersistence(t)

	first := NewManagerWithPersistence(fp)
	first.Create("warm-1", cfg)
	first.Create("warm-2", cfg)

	restarted := NewManagerWithPersistence(fp)
	if err := restarted.LoadPersistedSessions(); err != nil {
		t.Fatalf("Failed to load persisted sessions: %v", err)
	}
	if restarted.Count() != 2 {
		t.Errorf("Expected 2 sessions warmed into memory, got %d", restarted.Count())
	}
}
