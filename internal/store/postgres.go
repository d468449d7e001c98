package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marlonbarreto-git/tejaco-ledger/internal/domain"
)

// PostgresStore reads users and transactions from Postgres. It is still
// read-only from the engine's point of view; cmd/seeder owns the writes.
type PostgresStore struct {
	Db *pgxpool.Pool
}

func NewPostgresStore(connString string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &PostgresStore{Db: pool}, nil
}

func (s *PostgresStore) Close() {
	s.Db.Close()
}

func (s *PostgresStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := s.Db.QueryRow(ctx,
		"SELECT id, name, email, home_currency, country FROM users WHERE id = $1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.HomeCurrency, &u.Country)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *PostgresStore) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.Db.Query(ctx, "SELECT id, name, email, home_currency, country FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.HomeCurrency, &u.Country); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *PostgresStore) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	var exists bool
	err := s.Db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE id=$1)", userID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	rows, err := s.Db.Query(ctx,
		`SELECT id, user_id, type, state, source_currency, source_amount,
		        destination_currency, destination_amount, exchange_rate,
		        fee, fee_currency, description, created_at, updated_at,
		        related_transaction_id
		   FROM transactions WHERE user_id = $1 ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Type, &tx.State,
			&tx.SourceCurrency, &tx.SourceAmount,
			&tx.DestinationCurrency, &tx.DestinationAmount, &tx.ExchangeRate,
			&tx.Fee, &tx.FeeCurrency, &tx.Description,
			&tx.CreatedAt, &tx.UpdatedAt, &tx.RelatedTransactionID,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
