package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sucan/ordertrack/internal/domain/model"
)

// DB is the subset of pgxpool.Pool used by the store. Declared as an
// interface so tests can substitute a pgxmock pool.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Store keeps the order collection in a single JSONB document table. The
// observable document schema is identical to the file-backed store; only
// the durability layer differs.
type Store struct {
	db     DB
	logger *slog.Logger
}

// New creates a database-backed order store with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	store := &Store{db: pool, logger: logger}
	if err := store.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return store, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *Store) initSchema(ctx context.Context) error {
	const stmt = `CREATE TABLE IF NOT EXISTS order_documents (
            position INT NOT NULL,
            document JSONB NOT NULL
        )`
	if _, err := s.db.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// LoadAll returns the stored collection ordered by position. A row that no
// longer decodes is logged and degrades the result to an empty collection,
// mirroring the file store's corrupt-document behavior.
func (s *Store) LoadAll(ctx context.Context) ([]model.Order, error) {
	const query = `SELECT document FROM order_documents ORDER BY position`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan order document: %w", err)
		}
		var order model.Order
		if err := json.Unmarshal(doc, &order); err != nil {
			s.logger.Warn("stored order document is corrupt, starting from an empty collection",
				slog.String("error", err.Error()),
			)
			return []model.Order{}, nil
		}
		order.Normalize()
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order documents: %w", err)
	}
	return orders, nil
}

// SaveAll transactionally replaces the whole collection.
func (s *Store) SaveAll(ctx context.Context, orders []model.Order) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_documents`); err != nil {
		return fmt.Errorf("clear order documents: %w", err)
	}

	const insert = `INSERT INTO order_documents (position, document) VALUES ($1, $2)`
	for i, order := range orders {
		doc, err := json.Marshal(order)
		if err != nil {
			return fmt.Errorf("encode order %s: %w", order.ID, err)
		}
		if _, err := tx.Exec(ctx, insert, i, doc); err != nil {
			return fmt.Errorf("insert order document: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}
