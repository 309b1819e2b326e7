package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	database "taskapp/internal/adapter/database/postgres"
	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
)

// 23505 is the postgres unique_violation class.
const uniqueViolationCode = "23505"

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	query := r.db.QueryBuilder.Insert("users").
		Columns("email", "full_name", "password", "created_at").
		Values(user.Email, user.FullName, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING id")

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	err = r.db.QueryRow(ctx, stmt, args...).Scan(&user.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrEmailExists
		}

		log.Error().Err(err).Str("email", user.Email).Msg("error creating user")
		return domain.User{}, err
	}

	return r.GetByID(ctx, user.ID)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	query := r.db.QueryBuilder.Select("id", "email", "full_name", "password", "created_at").
		From("users").
		Where(sq.Eq{"email": email}).
		Limit(1)

	return r.getOne(ctx, query)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	query := r.db.QueryBuilder.Select("id", "email", "full_name", "password", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		Limit(1)

	return r.getOne(ctx, query)
}

func (r *UserRepository) getOne(ctx context.Context, query sq.SelectBuilder) (domain.User, error) {
	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	var user domain.User

	err = r.db.QueryRow(ctx, stmt, args...).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}

		return domain.User{}, err
	}

	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
