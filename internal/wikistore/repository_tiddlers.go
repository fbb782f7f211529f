package wikistore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/linonetwo/tw-mobile-sync/internal/logger"
	"github.com/linonetwo/tw-mobile-sync/models"
)

type tiddlerRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewTiddlerRepository creates the SQL-backed [TiddlerStore].
func NewTiddlerRepository(db *DB, log *logger.Logger) TiddlerStore {
	return &tiddlerRepository{
		DB:     db,
		logger: log,
		now:    time.Now,
	}
}

func (r *tiddlerRepository) Get(ctx context.Context, title string) (models.TiddlerFields, bool, error) {
	query, args, err := r.builder.
		Select("fields").
		From("tiddlers").
		Where(sq.Eq{"title": title}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build get query: %w", err)
	}

	var raw string
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		r.logger.Err(err).Str("func", "tiddlerRepository.Get").Str("title", title).
			Msg("failed to query tiddler")
		return nil, false, fmt.Errorf("failed to query tiddler %q: %w", title, err)
	}

	fields, err := decodeFields(raw)
	if err != nil {
		return nil, false, fmt.Errorf("tiddler %q: %w", title, err)
	}
	return fields, true, nil
}

func (r *tiddlerRepository) Upsert(ctx context.Context, fields models.TiddlerFields) error {
	query, args, err := r.upsertSQL(fields)
	if err != nil {
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "tiddlerRepository.Upsert").Str("title", fields.Title()).
			Msg("failed to execute upsert for tiddler")
		return fmt.Errorf("failed to upsert tiddler %q: %w", fields.Title(), err)
	}

	return nil
}

// UpsertAll writes every record inside one transaction, so a failure
// partway through applies none of them.
func (r *tiddlerRepository) UpsertAll(ctx context.Context, tiddlers []models.TiddlerFields) error {
	if len(tiddlers) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert transaction: %w", err)
	}
	defer tx.Rollback()

	for _, fields := range tiddlers {
		query, args, err := r.upsertSQL(fields)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).Str("func", "tiddlerRepository.UpsertAll").Str("title", fields.Title()).
				Msg("failed to execute upsert for tiddler")
			return fmt.Errorf("failed to upsert tiddler %q: %w", fields.Title(), err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert transaction: %w", err)
	}
	return nil
}

func (r *tiddlerRepository) upsertSQL(fields models.TiddlerFields) (string, []any, error) {
	title := fields.Title()
	if title == "" {
		return "", nil, errors.New("cannot upsert a tiddler without a title")
	}

	fields = fields.NormalizedDates()
	if fields.Modified() == "" {
		fields[models.FieldModified] = models.FormatWikiDate(r.now())
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return "", nil, fmt.Errorf("encode tiddler %q: %w", title, err)
	}

	caption, _ := fields[models.FieldCaption].(string)

	query, args, err := r.builder.
		Insert("tiddlers").
		Columns("title", "caption", "modified", "fields").
		Values(title, caption, fields.Modified(), string(raw)).
		Suffix("ON CONFLICT (title) DO UPDATE SET caption = excluded.caption, modified = excluded.modified, fields = excluded.fields").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build upsert query: %w", err)
	}
	return query, args, nil
}

func (r *tiddlerRepository) GetText(ctx context.Context, title string) (string, bool, error) {
	fields, found, err := r.Get(ctx, title)
	if err != nil || !found {
		return "", found, err
	}
	return fields.Text(), true, nil
}

func (r *tiddlerRepository) ChangedSince(ctx context.Context, since models.LastSync) ([]models.TiddlerFields, error) {
	builder := r.builder.
		Select("fields").
		From("tiddlers").
		OrderBy("modified", "title")

	// The 17-digit wiki timestamp sorts lexicographically in time order, so
	// strictly-after is a plain string comparison. Never synced means the
	// full document set.
	if at, ok := since.Value(); ok {
		builder = builder.Where(sq.Gt{"modified": at})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build changed-since query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "tiddlerRepository.ChangedSince").
			Str("since", since.String()).
			Msg("failed to query changed tiddlers")
		return nil, fmt.Errorf("failed to query changed tiddlers: %w", err)
	}
	defer rows.Close()

	var changed []models.TiddlerFields
	for rows.Next() {
		var raw string
		if err = rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan changed tiddler: %w", err)
		}
		fields, err := decodeFields(raw)
		if err != nil {
			return nil, err
		}
		changed = append(changed, fields)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate changed tiddlers: %w", err)
	}

	return changed, nil
}

func (r *tiddlerRepository) TitlesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	// LIKE with an explicit ESCAPE clause matches the prefix character by
	// character on both drivers. A range with a sentinel upper bound does
	// not: titles continuing with a rune above the sentinel fall outside
	// the range, and postgres collations reorder the comparison entirely.
	query, args, err := r.builder.
		Select("title").
		From("tiddlers").
		Where(sq.Expr(`title LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%")).
		OrderBy("title").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build titles-by-prefix query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "tiddlerRepository.TitlesByPrefix").Str("prefix", prefix).
			Msg("failed to query titles by prefix")
		return nil, fmt.Errorf("failed to query titles by prefix %q: %w", prefix, err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err = rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scan title: %w", err)
		}
		titles = append(titles, title)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate titles: %w", err)
	}

	return titles, nil
}

// escapeLike neutralizes LIKE wildcards so the prefix is matched literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func decodeFields(raw string) (models.TiddlerFields, error) {
	var fields models.TiddlerFields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("decode stored tiddler fields: %w", err)
	}
	return fields, nil
}
