package database

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

// Init opens the SQLite database at the given path (creating it if needed)
// and bootstraps the schema.
func Init(path string) error {
	var err error

	DB, err = sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON&_busy_timeout=30000")
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(10)
	DB.SetConnMaxLifetime(time.Hour)

	if err = DB.Ping(); err != nil {
		return err
	}

	return createSchema()
}

// Close closes the database connection.
func Close() error {
	if DB == nil {
		return nil
	}
	return DB.Close()
}

func createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS collaborators (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			bio TEXT NOT NULL DEFAULT '',
			skills TEXT NOT NULL DEFAULT '[]',
			rating REAL NOT NULL DEFAULT 0,
			avatar TEXT NOT NULL DEFAULT '',
			availability TEXT NOT NULL DEFAULT 'available',
			experience TEXT NOT NULL DEFAULT '',
			portfolio INTEGER NOT NULL DEFAULT 0,
			profile_url TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			type TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			budget TEXT NOT NULL DEFAULT '',
			timeline TEXT NOT NULL DEFAULT '',
			looking_for TEXT NOT NULL DEFAULT '[]',
			status TEXT NOT NULL DEFAULT 'recruiting',
			collaborators INTEGER NOT NULL DEFAULT 0,
			requests INTEGER NOT NULL DEFAULT 0,
			deadline TEXT NOT NULL DEFAULT '',
			created_by TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS collaboration_requests (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			collaborator_id TEXT NOT NULL,
			message TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TEXT NOT NULL DEFAULT '',
			collaborator_snapshot TEXT,
			project_snapshot TEXT,
			direction TEXT NOT NULL DEFAULT '',
			skills TEXT NOT NULL DEFAULT '[]',
			availability TEXT NOT NULL DEFAULT '',
			interest_level INTEGER NOT NULL DEFAULT 0,
			estimated_hours INTEGER NOT NULL DEFAULT 0,
			enhanced_portfolio TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_requests_project ON collaboration_requests(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_requests_collaborator ON collaboration_requests(collaborator_id)`,
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
