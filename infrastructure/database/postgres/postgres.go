package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/vfg2006/ecommerce-agent-api/internal/config"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
	RunReadOnly(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}

// NewConnectionFromDB reaproveita um *sql.DB já aberto (usado nos testes com sqlmock)
func NewConnectionFromDB(db *sql.DB) *Connection {
	return &Connection{DB: db}
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return c.run(ctx, nil, fn, true)
}

// RunReadOnly executa fn numa transação somente leitura que é sempre desfeita
func (c *Connection) RunReadOnly(ctx context.Context, fn func(*sql.Tx) error) error {
	return c.run(ctx, &sql.TxOptions{ReadOnly: true}, fn, false)
}

func (c *Connection) run(ctx context.Context, opts *sql.TxOptions, fn func(*sql.Tx) error, commit bool) error {
	tx, err := c.DB.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return rbErr
		}
		return err
	}

	if !commit {
		return tx.Rollback()
	}

	return tx.Commit()
}
