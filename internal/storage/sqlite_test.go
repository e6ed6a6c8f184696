package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndRetrieveScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("blocks", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("snake", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("blocks", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores not ordered descending: %v", scores)
	}

	high, err := store.HighScore("blocks")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("expected high score 200, got %d", high)
	}

	// Unknown games read as zero, not as errors.
	high, err = store.HighScore("nonexistent")
	if err != nil {
		t.Fatalf("HighScore() failed for unknown game: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for unknown game, got %d", high)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("blocks", 100)
	store.SaveScore("snake", 300)

	if err := store.ClearScores("blocks"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("blocks", 10)
	if len(scores) != 0 {
		t.Errorf("expected no blocks scores after clear, got %d", len(scores))
	}
	scores, _ = store.TopScores("snake", 10)
	if len(scores) != 1 {
		t.Errorf("clearing one game wiped another, got %d snake scores", len(scores))
	}
}

func TestGameStatsAggregation(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("blocks", 100)
	store.SaveScore("blocks", 300)

	stats, err := store.GetGameStats("blocks")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("expected average 200, got %f", stats.AvgScore)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if _, ok := all["blocks"]; !ok {
		t.Error("aggregated stats missing blocks")
	}
}

func TestSaveDataRoundTrip(t *testing.T) {
	store := openTestStore(t)

	// First load gives defaults.
	data, err := store.LoadSaveData("blocks")
	if err != nil {
		t.Fatalf("LoadSaveData() failed: %v", err)
	}
	if data != DefaultSaveData() {
		t.Errorf("expected defaults for a fresh game, got %+v", data)
	}

	data.GamesPlayed = 3
	data.TotalScore = 4500
	data.BestCombo = 4
	data.LongestSurvivalSecs = 320
	if err := store.StoreSaveData("blocks", data); err != nil {
		t.Fatalf("StoreSaveData() failed: %v", err)
	}

	loaded, err := store.LoadSaveData("blocks")
	if err != nil {
		t.Fatalf("LoadSaveData() failed: %v", err)
	}
	if loaded != data {
		t.Errorf("round trip mismatch: stored %+v, loaded %+v", data, loaded)
	}
}

func TestCorruptSaveDataFallsBackToDefaults(t *testing.T) {
	store := openTestStore(t)

	_, err := store.db.Exec(
		"INSERT INTO save_data (game_id, data) VALUES (?, ?)",
		"blocks", "{not valid json!",
	)
	if err != nil {
		t.Fatalf("cannot plant corrupt blob: %v", err)
	}

	data, err := store.LoadSaveData("blocks")
	if err != nil {
		t.Fatalf("corrupt save data should not error, got: %v", err)
	}
	if data != DefaultSaveData() {
		t.Errorf("expected defaults for corrupt save, got %+v", data)
	}
}

func TestPartialSaveDataMergesIntoDefaults(t *testing.T) {
	store := openTestStore(t)

	// An older save missing newer fields keeps defaults for them.
	_, err := store.db.Exec(
		"INSERT INTO save_data (game_id, data) VALUES (?, ?)",
		"blocks", `{"games_played": 7}`,
	)
	if err != nil {
		t.Fatalf("cannot plant partial blob: %v", err)
	}

	data, err := store.LoadSaveData("blocks")
	if err != nil {
		t.Fatalf("LoadSaveData() failed: %v", err)
	}
	if data.GamesPlayed != 7 {
		t.Errorf("expected games_played 7, got %d", data.GamesPlayed)
	}
	if data.BestCombo != 0 || data.LongestSurvivalSecs != 0 {
		t.Errorf("missing fields should default to zero, got %+v", data)
	}
}

func TestRecordSessionFoldsTotals(t *testing.T) {
	store := openTestStore(t)

	first, err := store.RecordSession("blocks", 1000, 3, 120)
	if err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}
	if first.GamesPlayed != 1 || first.TotalScore != 1000 {
		t.Errorf("unexpected first session totals: %+v", first)
	}

	second, err := store.RecordSession("blocks", 500, 5, 60)
	if err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}
	if second.GamesPlayed != 2 || second.TotalScore != 1500 {
		t.Errorf("unexpected totals: %+v", second)
	}
	if second.BestCombo != 5 {
		t.Errorf("best combo should rise to 5, got %d", second.BestCombo)
	}
	if second.LongestSurvivalSecs != 120 {
		t.Errorf("survival record should keep 120, got %d", second.LongestSurvivalSecs)
	}
}
