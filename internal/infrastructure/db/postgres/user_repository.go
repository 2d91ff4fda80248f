package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pizzastore/ordering-system/internal/core/domain"
	"github.com/pizzastore/ordering-system/internal/core/ports"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	var favorite *string
	if user.FavoriteItem != "" {
		favorite = &user.FavoriteItem
	}

	_, err := r.pool.Exec(ctx, insertUserSQL,
		user.Login, user.PasswordHash, string(user.Role), favorite, user.Phone, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrUserExists
		}
		return nil, storeErr("insert user", err)
	}

	return r.FindByLogin(ctx, user.Login)
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := r.pool.QueryRow(ctx, getUserSQL, login).
		Scan(&u.Login, &u.PasswordHash, &role, &u.FavoriteItem, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storeErr("find user", err)
	}
	u.Role = domain.Role(role)
	return &u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, login string, upd ports.ProfileUpdate) error {
	tag, err := r.pool.Exec(ctx, updateUserProfileSQL, login, upd.FavoriteItem, upd.Phone, upd.PasswordHash)
	if err != nil {
		return storeErr("update profile", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, login string, role domain.Role) error {
	tag, err := r.pool.Exec(ctx, updateUserRoleSQL, login, string(role))
	if err != nil {
		return storeErr("update role", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx, listUsersSQL)
	if err != nil {
		return nil, storeErr("query users", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var (
			u    domain.User
			role string
		)
		if err := rows.Scan(&u.Login, &u.PasswordHash, &role, &u.FavoriteItem, &u.Phone, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, storeErr("scan user", err)
		}
		u.Role = domain.Role(role)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate users", err)
	}
	return users, nil
}
