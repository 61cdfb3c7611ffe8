package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func RunMigrations(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    username TEXT NOT NULL,
    email TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    streak INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS colors (
    id UUID PRIMARY KEY,
    name TEXT UNIQUE NOT NULL,
    hex_code TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS tags (
    id UUID PRIMARY KEY,
    name TEXT UNIQUE NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS learning_logs (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    details TEXT NOT NULL DEFAULT '',
    color_id UUID,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_learning_logs_user_created
    ON learning_logs (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS learning_log_tags (
    learning_log_id UUID NOT NULL REFERENCES learning_logs(id) ON DELETE CASCADE,
    tag_id UUID NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (learning_log_id, tag_id)
);
`
	_, err := db.ExecContext(context.Background(), schema)
	return err
}

// defaultColors is the fixed palette offered by the log form. "Blue" doubles
// as the presentation fallback when a log references a missing color.
var defaultColors = []struct {
	Name string
	Hex  string
}{
	{"Blue", "#3B82F6"},
	{"Red", "#EF4444"},
	{"Green", "#22C55E"},
	{"Yellow", "#EAB308"},
	{"Purple", "#A855F7"},
	{"Pink", "#EC4899"},
	{"Orange", "#F97316"},
	{"Teal", "#14B8A6"},
}

// SeedColors inserts the reference palette, skipping names that already exist.
func SeedColors(db *sqlx.DB) error {
	for _, c := range defaultColors {
		_, err := db.ExecContext(context.Background(),
			`INSERT INTO colors (id, name, hex_code) VALUES ($1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			uuid.NewString(), c.Name, c.Hex)
		if err != nil {
			return err
		}
	}
	return nil
}
