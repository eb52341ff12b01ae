package wallet

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLSTATE codes translated into wallet conditions at the repository boundary.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// BalanceFunc computes the next balance from the current one. Returning an
// error aborts the update and leaves the stored balance untouched.
type BalanceFunc func(current float64) (float64, error)

// Repository persists wallet records.
type Repository interface {
	Insert(ctx context.Context, wallet Wallet) (Wallet, error)
	FindByID(ctx context.Context, id int64) (Wallet, error)
	FindByName(ctx context.Context, name string) (Wallet, error)
	FindByUserID(ctx context.Context, userID int64) ([]Wallet, error)
	FindEmpty(ctx context.Context) ([]Wallet, error)
	UpdateBalance(ctx context.Context, id int64, apply BalanceFunc) (Wallet, error)
}

// PostgresRepository stores wallets in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert persists a new wallet and returns it with the store-assigned id.
// A unique-constraint violation on the name surfaces as ErrNameTaken rather
// than a raw storage fault.
func (r *PostgresRepository) Insert(ctx context.Context, wallet Wallet) (Wallet, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO wallets (name, user_id, balance, created_at)
        VALUES ($1, $2, $3, $4) RETURNING id`,
		wallet.Name, wallet.UserID, wallet.Balance, wallet.CreatedAt.UTC())
	if err := row.Scan(&wallet.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return Wallet{}, ErrNameTaken
			case pgForeignKeyViolation:
				return Wallet{}, ErrOwnerNotFound
			}
		}
		return Wallet{}, err
	}
	return wallet, nil
}

// FindByID fetches a wallet by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (Wallet, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, user_id, balance, created_at
        FROM wallets WHERE id = $1`, id)
	return scanWallet(row)
}

// FindByName fetches a wallet by its unique name.
func (r *PostgresRepository) FindByName(ctx context.Context, name string) (Wallet, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, user_id, balance, created_at
        FROM wallets WHERE name = $1`, name)
	return scanWallet(row)
}

// FindByUserID lists all wallets owned by the given user in insertion order.
func (r *PostgresRepository) FindByUserID(ctx context.Context, userID int64) ([]Wallet, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, user_id, balance, created_at
        FROM wallets WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWallets(rows)
}

// FindEmpty lists all wallets with a zero balance.
func (r *PostgresRepository) FindEmpty(ctx context.Context) ([]Wallet, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, user_id, balance, created_at
        FROM wallets WHERE balance = 0 ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectWallets(rows)
}

// UpdateBalance applies the balance function under a row-level lock so that
// concurrent mutations of the same wallet serialize. An error from apply
// rolls the transaction back and the stored balance stays at its prior value.
func (r *PostgresRepository) UpdateBalance(ctx context.Context, id int64, apply BalanceFunc) (Wallet, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Wallet{}, err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	row := tx.QueryRow(ctx, `SELECT id, name, user_id, balance, created_at
        FROM wallets WHERE id = $1 FOR UPDATE`, id)
	wallet, err := scanWallet(row)
	if err != nil {
		return Wallet{}, err
	}

	next, err := apply(wallet.Balance)
	if err != nil {
		return Wallet{}, err
	}

	if _, err := tx.Exec(ctx, `UPDATE wallets SET balance = $1 WHERE id = $2`, next, id); err != nil {
		return Wallet{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Wallet{}, err
	}

	wallet.Balance = next
	return wallet, nil
}

func scanWallet(row pgx.Row) (Wallet, error) {
	var w Wallet
	var createdAt time.Time
	if err := row.Scan(&w.ID, &w.Name, &w.UserID, &w.Balance, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Wallet{}, ErrNotFound
		}
		return Wallet{}, err
	}
	w.CreatedAt = createdAt.UTC()
	return w, nil
}

func collectWallets(rows pgx.Rows) ([]Wallet, error) {
	wallets := make([]Wallet, 0)
	for rows.Next() {
		var w Wallet
		var createdAt time.Time
		if err := rows.Scan(&w.ID, &w.Name, &w.UserID, &w.Balance, &createdAt); err != nil {
			return nil, err
		}
		w.CreatedAt = createdAt.UTC()
		wallets = append(wallets, w)
	}
	return wallets, rows.Err()
}
