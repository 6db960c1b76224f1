package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Aleale0612/swift-fin/internal/config"
	"github.com/Aleale0612/swift-fin/internal/storage/debt"
	"github.com/Aleale0612/swift-fin/internal/storage/goal"
	"github.com/Aleale0612/swift-fin/internal/storage/transaction"
)

// Storage bundles the connection pool with the per-entity table gateways.
type Storage struct {
	Pool         *pgxpool.Pool
	Transactions transaction.ITransactionTable
	Debts        debt.IDebtTable
	Goals        goal.IGoalTable
}

func NewStorage(ctx context.Context, env *config.PostgresConfig) (*Storage, error) {
	poolConfig, err := pgxpool.ParseConfig(env.DSN())
	if err != nil {
		return nil, err
	}

	poolConfig.MaxConns = int32(env.PoolMaxConns)
	poolConfig.HealthCheckPeriod = 15 * time.Second
	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}

	return &Storage{
		Pool:         pool,
		Transactions: transaction.NewTable(pool),
		Debts:        debt.NewTable(pool),
		Goals:        goal.NewTable(pool),
	}, nil
}

// Write begins a database transaction and returns a Writer whose gateways
// all run inside it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() {
	s.Pool.Close()
}
