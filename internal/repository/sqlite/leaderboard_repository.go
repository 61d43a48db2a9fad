package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/dgz9/codetype/internal/db"
	"github.com/dgz9/codetype/internal/logger"
	"github.com/dgz9/codetype/internal/models"
	"github.com/dgz9/codetype/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type leaderboardRepository struct {
	db *db.DB
}

// NewLeaderboardRepository creates a new LeaderboardRepository implementation
func NewLeaderboardRepository(db *db.DB) repository.LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) Insert(ctx context.Context, sub models.ScoreSubmission) (*models.LeaderboardEntry, error) {
	id, err := r.db.InsertScore(ctx, sub)
	if err != nil {
		return nil, err
	}
	return r.db.GetScore(ctx, id)
}

func (r *leaderboardRepository) List(ctx context.Context, filter models.LeaderboardFilter) ([]models.LeaderboardEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("leaderboard_repo")
	log.Debug("listing scores: mode=%s, limit=%d", filter.Mode, filter.Limit)

	query := sqlBuilder.Select(
		"id", "name", "wpm", "accuracy", "mode", "language", "created_at",
	).From("leaderboard")

	if filter.Mode != "" {
		query = query.Where(squirrel.Eq{"mode": filter.Mode})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	query = query.OrderBy("wpm DESC", "created_at ASC").Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list scores: %v", err)
		return nil, err
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		var language sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &e.WPM, &e.Accuracy, &e.Mode, &language, &e.CreatedAt); err != nil {
			log.Error("failed to scan score row: %v", err)
			return nil, err
		}
		if language.Valid {
			e.Language = language.String
		}
		entries = append(entries, e)
	}
	log.Debug("found %d scores", len(entries))
	return entries, rows.Err()
}
