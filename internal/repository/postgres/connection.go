package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/dtroode/jobmarket-server/internal/model"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

type Connection struct {
	*sqlx.DB
}

// NewConnection opens a pool through the pgx driver and migrates the schema.
func NewConnection(ctx context.Context, dsn string) (*Connection, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	if err := Migrate(ctx, db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

func (c *Connection) Ping(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("connection pool is nil")
	}
	return c.DB.PingContext(ctx)
}

// returningID runs a write that returns the id of the affected row.
func (c *Connection) returningID(ctx context.Context, op, query string, args ...any) (int64, error) {
	var id int64
	if err := c.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return 0, model.ErrNotFound
		case isUniqueViolation(err):
			return 0, fmt.Errorf("failed to %s: %w", op, model.ErrConflict)
		case isForeignKeyViolation(err):
			return 0, fmt.Errorf("failed to %s: %w", op, model.ErrInvalidReference)
		}
		return 0, fmt.Errorf("failed to %s: %w", op, err)
	}
	return id, nil
}

// execOne runs a statement that must touch exactly one row.
func (c *Connection) execOne(ctx context.Context, op, query string, args ...any) error {
	res, err := c.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("failed to %s: %w", op, model.ErrInUse)
		}
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return pgCode(err) == uniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgCode(err) == foreignKeyViolation
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
