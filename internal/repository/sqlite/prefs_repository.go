package sqlite

import (
	"context"

	"github.com/dgz9/codetype/internal/db"
	"github.com/dgz9/codetype/internal/repository"
)

type prefsRepository struct {
	db *db.DB
}

// NewPrefsRepository creates a new PrefsRepository implementation
func NewPrefsRepository(db *db.DB) repository.PrefsRepository {
	return &prefsRepository{db: db}
}

func (r *prefsRepository) Get(ctx context.Context, key string) ([]byte, error) {
	return r.db.GetPreference(ctx, key)
}

func (r *prefsRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.db.SetPreference(ctx, key, value)
}

func (r *prefsRepository) Delete(ctx context.Context, key string) error {
	return r.db.DeletePreference(ctx, key)
}
