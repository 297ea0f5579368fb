package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/neon-snake/internal/highscore"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// Nothing stored yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		if err := store.SaveHighScore(score); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", score, err)
		}
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreHighScorePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore(70); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer reopened.Close()

	high, err := reopened.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 70 {
		t.Errorf("Expected persisted high score 70, got %d", high)
	}
}

func TestStoreCorruptHighScoreIsOverwritten(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.db.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", highscore.Key, "garbage"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := store.HighScore(); err == nil {
		t.Error("Expected error for corrupt high score")
	}

	if err := store.SaveHighScore(10); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	high, err := store.HighScore()
	if err != nil || high != 10 {
		t.Errorf("HighScore() = %d, %v; expected 10, nil", high, err)
	}
}

func TestStoreSessions(t *testing.T) {
	store := openTestStore(t)
	ended := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	sessions := []highscore.Session{
		{ID: "a", Player: "p1", Score: 100, Length: 11, Cause: "wall", Duration: 5 * time.Second, EndedAt: ended},
		{ID: "b", Player: "p2", Score: 50, Length: 6, Cause: "self", Duration: 3 * time.Second, EndedAt: ended},
		{ID: "c", Player: "p1", Score: 200, Length: 21, Cause: "self", Duration: 9 * time.Second, EndedAt: ended},
	}
	for _, s := range sessions {
		if err := store.RecordSession(s); err != nil {
			t.Fatalf("RecordSession() failed: %v", err)
		}
	}

	top, err := store.TopSessions(2)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Expected 2 sessions with limit, got %d", len(top))
	}
	if top[0].ID != "c" || top[1].ID != "a" {
		t.Errorf("Sessions not in expected order: %v", top)
	}
	if top[0].Duration != 9*time.Second {
		t.Errorf("Duration = %s, expected 9s", top[0].Duration)
	}
	if !top[0].EndedAt.Equal(ended) {
		t.Errorf("EndedAt = %s, expected %s", top[0].EndedAt, ended)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 3 || stats.HighScore != 200 || stats.LongestLen != 21 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestStoreDuplicateSessionID(t *testing.T) {
	store := openTestStore(t)
	s := highscore.Session{ID: "dup", Score: 10, Cause: "wall", EndedAt: time.Now()}

	if err := store.RecordSession(s); err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}
	if err := store.RecordSession(s); err == nil {
		t.Error("Expected error recording duplicate session ID")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveHighScore(100)
	store.RecordSession(highscore.Session{ID: "x", Score: 100, Cause: "wall", EndedAt: time.Now()})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	high, _ := store.HighScore()
	if high != 0 {
		t.Errorf("Expected high score 0 after clear, got %d", high)
	}
	top, _ := store.TopSessions(10)
	if len(top) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(top))
	}
}

func TestStoreBacksKeeper(t *testing.T) {
	store := openTestStore(t)
	store.SaveHighScore(40)

	k := highscore.NewKeeper(store, nil)
	if k.Best() != 40 {
		t.Fatalf("Best() = %d, expected 40", k.Best())
	}
	k.Observe(60)

	high, _ := store.HighScore()
	if high != 60 {
		t.Errorf("Expected keeper to persist 60, got %d", high)
	}
}
