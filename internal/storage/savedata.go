package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// SaveData is the per-game session ledger persisted between runs.
// Fields added in later versions simply keep their defaults when an
// older save is loaded.
type SaveData struct {
	GamesPlayed         int `json:"games_played"`
	TotalScore          int `json:"total_score"`
	BestCombo           int `json:"best_combo"`
	LongestSurvivalSecs int `json:"longest_survival_secs"`
}

// DefaultSaveData returns a zeroed ledger for first runs.
func DefaultSaveData() SaveData {
	return SaveData{}
}

// LoadSaveData returns the persisted ledger for a game, merged over
// defaults. A missing row or a save blob that fails to decode yields
// the defaults; corrupt data is never an error, only lost progress.
func (s *Store) LoadSaveData(gameID string) (SaveData, error) {
	data := DefaultSaveData()

	var blob string
	err := s.db.QueryRow(
		"SELECT data FROM save_data WHERE game_id = ?",
		gameID,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return data, nil
	}
	if err != nil {
		return data, fmt.Errorf("storage: cannot load save data: %w", err)
	}

	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		// Discard the corrupt blob and start fresh.
		return DefaultSaveData(), nil
	}
	return data, nil
}

// StoreSaveData persists the ledger for a game, replacing any previous
// version.
func (s *Store) StoreSaveData(gameID string, data SaveData) error {
	blob, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("storage: cannot encode save data: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO save_data (game_id, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		gameID, string(blob),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot store save data: %w", err)
	}
	return nil
}

// RecordSession folds one finished session into the ledger and persists
// it, returning the updated totals.
func (s *Store) RecordSession(gameID string, score, bestCombo, survivalSecs int) (SaveData, error) {
	data, err := s.LoadSaveData(gameID)
	if err != nil {
		return data, err
	}

	data.GamesPlayed++
	data.TotalScore += score
	if bestCombo > data.BestCombo {
		data.BestCombo = bestCombo
	}
	if survivalSecs > data.LongestSurvivalSecs {
		data.LongestSurvivalSecs = survivalSecs
	}

	if err := s.StoreSaveData(gameID, data); err != nil {
		return data, err
	}
	return data, nil
}
