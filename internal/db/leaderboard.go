package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dgz9/codetype/internal/logger"
	"github.com/dgz9/codetype/internal/models"
)

func (db *DB) InsertScore(ctx context.Context, sub models.ScoreSubmission) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("inserting score: name=%s, wpm=%d, mode=%s", sub.Name, sub.WPM, sub.Mode)

	var language interface{}
	if sub.Language != "" {
		language = sub.Language
	}

	res, err := db.ExecContext(ctx, `
INSERT INTO leaderboard (name, wpm, accuracy, mode, language)
VALUES (?, ?, ?, ?, ?)
`, sub.Name, sub.WPM, sub.Accuracy, sub.Mode, language)
	if err != nil {
		log.Error("failed to insert score: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get score id: %v", err)
		return 0, err
	}
	log.Debug("score inserted: id=%d", id)
	return id, nil
}

func (db *DB) GetScore(ctx context.Context, id int64) (*models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("fetching score: id=%d", id)

	var e models.LeaderboardEntry
	var language sql.NullString
	err := db.QueryRowContext(ctx, `
SELECT id, name, wpm, accuracy, mode, language, created_at
FROM leaderboard
WHERE id = ?
`, id).Scan(&e.ID, &e.Name, &e.WPM, &e.Accuracy, &e.Mode, &language, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("score not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get score: %v", err)
		return nil, err
	}
	if language.Valid {
		e.Language = language.String
	}
	return &e, nil
}
