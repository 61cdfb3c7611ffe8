package logs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"learnlog/internal/models"
)

// Repository owns all learning-log persistence. Every operation takes the
// authenticated user id explicitly; nothing is read from ambient state.
type Repository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewRepository(db *sqlx.DB, logger *zap.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// CreateInput is the log-creation form payload. Date is the calendar day the
// user selected; it becomes the log's creation timestamp.
type CreateInput struct {
	Title   string
	Details string
	ColorID string
	Date    time.Time
	Tags    []string
}

// UpdateInput replaces a log's scalar fields and its entire tag set.
type UpdateInput struct {
	Title   string
	Details string
	ColorID string
	Tags    []string
}

// TagResult is one outcome of a partial-failure tag batch. Err is nil when
// the tag was resolved and attached.
type TagResult struct {
	Name string `json:"name"`
	Err  error  `json:"-"`
}

// Failed reports whether attaching this tag failed.
func (t TagResult) Failed() bool { return t.Err != nil }

const joinedSelect = `
	SELECT l.id, l.user_id, l.title, l.details, l.color_id,
	       l.created_at, l.updated_at,
	       c.name AS color_name, c.hex_code AS color_hex,
	       t.name AS tag_name
	FROM learning_logs l
	LEFT JOIN colors c ON c.id = l.color_id
	LEFT JOIN learning_log_tags lt ON lt.learning_log_id = l.id
	LEFT JOIN tags t ON t.id = lt.tag_id`

// Create inserts a log for the user, then attaches each tag best-effort. The
// log row must exist before its joins, so the insert runs first; a tag that
// fails to resolve or attach is reported in the returned results and logged,
// never fatal to the create.
func (r *Repository) Create(ctx context.Context, userID string, in CreateInput) (models.LearningLog, []TagResult, error) {
	if userID == "" {
		return models.LearningLog{}, nil, ErrUnauthenticated
	}
	if strings.TrimSpace(in.Title) == "" {
		return models.LearningLog{}, nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	var log models.LearningLog
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO learning_logs (id, user_id, title, details, color_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, NOW())
		RETURNING id, user_id, title, details, COALESCE(color_id::text, '') AS color_id, created_at, updated_at`,
		uuid.NewString(), userID, in.Title, in.Details, in.ColorID, in.Date).StructScan(&log)
	if err != nil {
		return models.LearningLog{}, nil, fmt.Errorf("insert learning log: %w", err)
	}

	results := r.attachTags(ctx, log.ID, in.Tags)
	return log, results, nil
}

// List returns all of the user's logs, newest first, with denormalized color
// and tag names. Missing colors fall back to the default.
func (r *Repository) List(ctx context.Context, userID string) ([]LogView, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	var rows []joinedRow
	err := r.db.SelectContext(ctx, &rows,
		joinedSelect+` WHERE l.user_id = $1 ORDER BY l.created_at DESC, l.id, t.name`, userID)
	if err != nil {
		return nil, fmt.Errorf("list learning logs: %w", err)
	}
	return projectViews(rows), nil
}

// GetByID loads one log with its color and tags. ErrNotFound when the id does
// not exist, ErrForbidden when it belongs to a different user.
func (r *Repository) GetByID(ctx context.Context, userID, id string) (LogDetails, error) {
	if userID == "" {
		return LogDetails{}, ErrUnauthenticated
	}
	// A malformed id cannot name an existing log; reject it before Postgres
	// chokes on the uuid comparison.
	if _, err := uuid.Parse(id); err != nil {
		return LogDetails{}, ErrNotFound
	}
	var rows []joinedRow
	err := r.db.SelectContext(ctx, &rows, joinedSelect+` WHERE l.id = $1 ORDER BY t.name`, id)
	if err != nil {
		return LogDetails{}, fmt.Errorf("load learning log: %w", err)
	}
	details, ok := projectDetails(rows)
	if !ok {
		return LogDetails{}, ErrNotFound
	}
	if details.UserID != userID {
		return LogDetails{}, ErrForbidden
	}
	return details, nil
}

// Update replaces the log's scalar fields and its full tag set. Old joins are
// removed before the new tag list is resolved and attached; like the joins
// themselves, the clear is a secondary write, so its failure is logged and
// tolerated rather than failing the update (re-inserts are safe under the
// join table's ON CONFLICT). Tag attachment is the same best-effort batch as
// Create. Returns the freshly reloaded record.
func (r *Repository) Update(ctx context.Context, userID, id string, in UpdateInput) (LogDetails, []TagResult, error) {
	if userID == "" {
		return LogDetails{}, nil, ErrUnauthenticated
	}
	if strings.TrimSpace(in.Title) == "" {
		return LogDetails{}, nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if err := r.checkOwnership(ctx, userID, id); err != nil {
		return LogDetails{}, nil, err
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE learning_logs
		SET title = $1, details = $2, color_id = NULLIF($3, '')::uuid, updated_at = NOW()
		WHERE id = $4`, in.Title, in.Details, in.ColorID, id)
	if err != nil {
		return LogDetails{}, nil, fmt.Errorf("update learning log: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM learning_log_tags WHERE learning_log_id = $1`, id); err != nil {
		r.logger.Warn("could not clear tag joins",
			zap.String("learning_log_id", id), zap.Error(err))
	}
	results := r.attachTags(ctx, id, in.Tags)

	details, err := r.GetByID(ctx, userID, id)
	if err != nil {
		return LogDetails{}, nil, err
	}
	return details, results, nil
}

// Delete removes the log and its tag joins. Join-row deletion failure is
// logged and tolerated; the log-row deletion is the operation of record and
// its failure is fatal.
func (r *Repository) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if err := r.checkOwnership(ctx, userID, id); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM learning_log_tags WHERE learning_log_id = $1`, id); err != nil {
		r.logger.Warn("could not delete tag joins",
			zap.String("learning_log_id", id), zap.Error(err))
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM learning_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete learning log: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) checkOwnership(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	var owner string
	err := r.db.GetContext(ctx, &owner,
		`SELECT user_id FROM learning_logs WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load learning log owner: %w", err)
	}
	if owner != userID {
		return ErrForbidden
	}
	return nil
}

// attachTags resolves each name and inserts its join row. Names are trimmed
// and deduplicated first; each remaining name gets its own outcome and a
// failure never aborts the batch.
func (r *Repository) attachTags(ctx context.Context, logID string, names []string) []TagResult {
	results := []TagResult{}
	for _, name := range normalizeTagNames(names) {
		result := TagResult{Name: name}
		tag, err := r.ResolveTag(ctx, name)
		if err == nil {
			_, err = r.db.ExecContext(ctx, `
				INSERT INTO learning_log_tags (learning_log_id, tag_id)
				VALUES ($1, $2) ON CONFLICT DO NOTHING`, logID, tag.ID)
		}
		if err != nil {
			result.Err = err
			r.logger.Warn("could not attach tag",
				zap.String("learning_log_id", logID),
				zap.String("tag", name), zap.Error(err))
		}
		results = append(results, result)
	}
	return results
}
