package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound occurs when a user lookup misses.
	ErrNotFound = errors.New("user not found")

	// ErrNameTaken indicates the requested user name already exists.
	ErrNameTaken = errors.New("user name already exists")

	// ErrNameRequired rejects registration with a blank name.
	ErrNameRequired = errors.New("user name is required")
)

const pgUniqueViolation = "23505"

// Repository persists users.
type Repository interface {
	Insert(ctx context.Context, user User) (User, error)
	FindByID(ctx context.Context, id int64) (User, error)
	FindByName(ctx context.Context, name string) (User, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed user repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert persists a new user and returns it with the store-assigned id.
func (r *PostgresRepository) Insert(ctx context.Context, user User) (User, error) {
	row := r.db.QueryRow(ctx, `INSERT INTO users (name, created_at)
        VALUES ($1, $2) RETURNING id`, user.Name, user.CreatedAt.UTC())
	if err := row.Scan(&user.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return User{}, ErrNameTaken
		}
		return User{}, err
	}
	return user, nil
}

// FindByID fetches a user by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, created_at FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// FindByName fetches a user by name.
func (r *PostgresRepository) FindByName(ctx context.Context, name string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, created_at FROM users WHERE name = $1`, name)
	return scanUser(row)
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	var createdAt time.Time
	if err := row.Scan(&u.ID, &u.Name, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	u.CreatedAt = createdAt.UTC()
	return u, nil
}
