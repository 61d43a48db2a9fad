package api

import (
	"github.com/dgz9/codetype/internal/db"
	"github.com/dgz9/codetype/internal/services"
)

type Server struct {
	DB          *db.DB
	Leaderboard services.LeaderboardService
	Snippets    services.SnippetService
	Progress    services.ProgressService
}
