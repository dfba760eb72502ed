package repository

import (
	"context"
	"database/sql"
	"errors"

	"jobtrack/internal/database"
	"jobtrack/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, last_name, location, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.LastName, u.Location, u.CreatedAt, u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return user.ErrEmailTaken
	}
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, selectUser+` WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, selectUser+` WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) error {
	n, err := r.db.Exec(ctx,
		`UPDATE users
		 SET name = $2, email = $3, last_name = $4, location = $5, updated_at = $6
		 WHERE id = $1`,
		u.ID, u.Name, u.Email, u.LastName, u.Location, u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return user.ErrEmailTaken
	}
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

const selectUser = `SELECT id, name, email, password_hash, last_name, location, created_at, updated_at FROM users`

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.LastName, &u.Location, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
