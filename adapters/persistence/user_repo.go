package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snapstream/snapstream-api/internal/domain/user"
	"github.com/snapstream/snapstream-api/pkg/apperror"
	"github.com/snapstream/snapstream-api/pkg/logger"
)

type postgresUserRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresUserRepo(db *pgxpool.Pool, logger logger.Logger) user.Repository {
	return &postgresUserRepo{db: db, logger: logger}
}

const pgUniqueViolation = "23505"

func (r *postgresUserRepo) Save(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, u.ID, u.Name, u.Email, u.Password, u.Role)
	if err != nil {
		// The unique index on LOWER(email) is the authoritative duplicate
		// check; a violation here means we lost the registration race.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.NewConflict("user", "email", u.Email)
		}
		return apperror.NewInternal("failed to insert user", err)
	}
	return nil
}

func (r *postgresUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, name, email, password, role
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`
	u := &user.User{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Password,
		&u.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("user", email)
		}
		return nil, apperror.NewInternal("failed to query user by email", err)
	}
	return u, nil
}

func (r *postgresUserRepo) List(ctx context.Context) ([]*user.User, error) {
	// Password column deliberately left out of the select list.
	query := `SELECT id, name, email, role FROM users`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.NewInternal("failed to query users", err)
	}
	defer rows.Close()

	users := make([]*user.User, 0)
	for rows.Next() {
		u := &user.User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role); err != nil {
			return nil, apperror.NewInternal("failed to scan user row", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating user rows", err)
	}
	return users, nil
}
