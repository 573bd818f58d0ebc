package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avGenie/go-bookstore-inventory/internal/app/storage/api/model"
)

const (
	defaultMaxConnections    = int32(16)
	defaultMinConnections    = int32(2)
	defaultMaxConnLifetime   = time.Hour
	defaultMaxConnIdleTime   = time.Minute * 5
	defaultHealthCheckPeriod = time.Minute
	defaultConnectTimeout    = time.Second * 5
)

type Postgres struct {
	*repository

	pool *pgxpool.Pool
}

func NewPostgresStorage(ctx context.Context, dbStorageConnect string) (*Postgres, error) {
	dbConfig, err := pgxpool.ParseConfig(dbStorageConnect)
	if err != nil {
		return nil, fmt.Errorf("error while parsing postgresql config: %w", err)
	}

	dbConfig.MaxConns = defaultMaxConnections
	dbConfig.MinConns = defaultMinConnections
	dbConfig.MaxConnLifetime = defaultMaxConnLifetime
	dbConfig.MaxConnIdleTime = defaultMaxConnIdleTime
	dbConfig.HealthCheckPeriod = defaultHealthCheckPeriod
	dbConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		return nil, fmt.Errorf("error while postgresql connect: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error while pinging postgresql: %w", err)
	}

	if err := migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &Postgres{
		repository: newRepository(pool),
		pool:       pool,
	}, nil
}

func (s *Postgres) WithTx(ctx context.Context, fn func(tx model.Repository) error) error {
	return pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(newRepository(tx))
	})
}

func (s *Postgres) Close() error {
	s.pool.Close()

	return nil
}

func newRepository(db querier) *repository {
	return &repository{
		db:      db,
		builder: goqu.Dialect(dialectPostgres),
	}
}
