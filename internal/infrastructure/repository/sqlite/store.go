package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"github.com/valyala/bytebufferpool"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"

	"github.com/scoutschool/daily-shift/internal/platform/logging"
	qb "github.com/scoutschool/daily-shift/internal/platform/querybuilder"
)

const tableGameState = "game_state"

// ErrCorruptValue marks a stored blob that no longer decodes. Typed
// repositories treat it as "never written" and heal to defaults.
var ErrCorruptValue = errors.New("corrupt stored value")

// Open opens (creating if needed) the local SQLite store with traced
// statements. SQLite serializes writers, so the pool is pinned to one
// connection rather than letting callers fight over SQLITE_BUSY.
func Open(path string) (*sqlx.DB, error) {
	dsn := path + "?_busy_timeout=5000&_journal_mode=WAL"
	db, err := otelsqlx.Connect("sqlite3", dsn,
		otelsql.WithAttributes(semconv.DBSystemSqlite),
		otelsql.WithDBName(filepath.Base(path)),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite store %s", path)
	}
	db.SetMaxOpenConns(1)

	return db, nil
}

const maxTracedQueryLength = 512

var queryWhitespaceRegex = regexp.MustCompile(`\s+`)

// formatQueryForTrace collapses whitespace and truncates long
// statements so span attributes stay bounded.
func formatQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := queryWhitespaceRegex.ReplaceAllString(query, " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}

type gameStateRow struct {
	Key       string `db:"key"`
	Value     string `db:"value"`
	UpdatedAt int64  `db:"updated_at"`
}

// Store is a keyed-blob gateway over the game_state table. Values are
// JSON; the typed repositories layer defaults-write-back and corrupt
// healing on top.
type Store struct {
	db     *sqlx.DB
	logger *logging.Logger
	now    func() time.Time
}

func NewStore(db *sqlx.DB, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Store) get(ctx context.Context, key string, dst any) (bool, error) {
	query, args, err := qb.Select("value").
		From(tableGameState).
		Where(qb.Eq("key", key)).
		ToSQL()
	if err != nil {
		return false, errors.Wrapf(err, "build get %s query", key)
	}

	var raw string
	if err := s.db.GetContext(ctx, &raw, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, errors.Wrapf(err, "get %s", key)
	}

	if err := sonic.UnmarshalString(raw, dst); err != nil {
		return false, errors.Mark(errors.Wrapf(err, "decode %s", key), ErrCorruptValue)
	}

	return true, nil
}

func (s *Store) put(ctx context.Context, key string, value any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := sonic.ConfigDefault.NewEncoder(buf)
	if err := enc.Encode(value); err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	row := gameStateRow{
		Key:       key,
		Value:     strings.TrimRight(buf.String(), "\n"),
		UpdatedAt: s.now().Unix(),
	}
	query, args, err := qb.InsertModel(tableGameState, row, `ON CONFLICT (key)
DO UPDATE SET
    value = excluded.value,
    updated_at = excluded.updated_at`)
	if err != nil {
		return errors.Wrapf(err, "build put %s query", key)
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "put %s", key)
	}

	return nil
}

func (s *Store) delete(ctx context.Context, key string) error {
	query, args, err := qb.DeleteFrom(tableGameState).
		Where(qb.Eq("key", key)).
		ToSQL()
	if err != nil {
		return errors.Wrapf(err, "build delete %s query", key)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}
