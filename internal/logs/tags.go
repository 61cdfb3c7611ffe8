package logs

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"learnlog/internal/models"
)

// ResolveTag maps a tag name to its row, creating the row if absent. The name
// is trimmed first; a blank result fails with ErrValidation. Resolution is
// idempotent under concurrency: the insert races on the unique name constraint
// and loses silently, then the winner's row is read back. An existing tag is
// returned as stored, timestamps untouched.
func (r *Repository) ResolveTag(ctx context.Context, name string) (models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Tag{}, fmt.Errorf("%w: tag name cannot be empty", ErrValidation)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tags (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
		uuid.NewString(), name)
	if err != nil {
		return models.Tag{}, fmt.Errorf("insert tag %q: %w", name, err)
	}

	var tag models.Tag
	if err := r.db.GetContext(ctx, &tag,
		`SELECT id, name, created_at, updated_at FROM tags WHERE name = $1`, name); err != nil {
		return models.Tag{}, fmt.Errorf("load tag %q: %w", name, err)
	}
	return tag, nil
}

// ListTags returns every tag ordered by name.
func (r *Repository) ListTags(ctx context.Context) ([]models.Tag, error) {
	tags := []models.Tag{}
	err := r.db.SelectContext(ctx, &tags,
		`SELECT id, name, created_at, updated_at FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// TagCount pairs a tag name with how many of the user's logs carry it.
type TagCount struct {
	Name  string `db:"name" json:"name"`
	Count int    `db:"count" json:"count"`
}

// CountTags returns tag usage counts across the user's logs, most used first.
func (r *Repository) CountTags(ctx context.Context, userID string) ([]TagCount, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	counts := []TagCount{}
	err := r.db.SelectContext(ctx, &counts, `
		SELECT t.name, COUNT(*) AS count
		FROM tags t
		JOIN learning_log_tags lt ON lt.tag_id = t.id
		JOIN learning_logs l ON l.id = lt.learning_log_id
		WHERE l.user_id = $1
		GROUP BY t.name
		ORDER BY count DESC, t.name`, userID)
	if err != nil {
		return nil, fmt.Errorf("count tags: %w", err)
	}
	return counts, nil
}

// normalizeTagNames trims each name and drops duplicates, preserving first
// occurrence order. Tag equality is exact-string-after-trim; names are never
// case folded. Blank names survive normalization so the batch can report them
// as individual failures.
func normalizeTagNames(names []string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed != "" && seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
	}
	return out
}
