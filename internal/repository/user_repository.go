package repository

import (
	"context"
	"database/sql"
	"errors"

	"community-board/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByHandle(ctx context.Context, handle string) (*domain.User, error)
	ExistsByHandle(ctx context.Context, handle string) (bool, error)
	ExistsByNickname(ctx context.Context, nickname string) (bool, error)
	UpdateNickname(ctx context.Context, id int64, nickname string) error
	SetBanned(ctx context.Context, id int64, banned bool) error
	MarkDeleted(ctx context.Context, id int64) error
	ListActive(ctx context.Context) ([]domain.AdminUser, error)
}

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (handle, password_hash, nickname, is_admin, is_active, is_banned, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	return r.db.QueryRowxContext(ctx, query,
		user.Handle, user.PasswordHash, user.Nickname,
		user.IsAdmin, user.IsActive, user.IsBanned, user.IsDeleted,
	).Scan(&user.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE id = $1 AND is_deleted = false`

	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByHandle(ctx context.Context, handle string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE handle = $1 AND is_deleted = false`

	err := r.db.GetContext(ctx, &user, query, handle)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByHandle(ctx context.Context, handle string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE handle = $1)`
	err := r.db.GetContext(ctx, &exists, query, handle)
	return exists, err
}

func (r *userRepository) ExistsByNickname(ctx context.Context, nickname string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE nickname = $1)`
	err := r.db.GetContext(ctx, &exists, query, nickname)
	return exists, err
}

func (r *userRepository) UpdateNickname(ctx context.Context, id int64, nickname string) error {
	query := `UPDATE users SET nickname = $2 WHERE id = $1 AND is_deleted = false`
	_, err := r.db.ExecContext(ctx, query, id, nickname)
	return err
}

func (r *userRepository) SetBanned(ctx context.Context, id int64, banned bool) error {
	query := `UPDATE users SET is_banned = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, banned)
	return err
}

func (r *userRepository) MarkDeleted(ctx context.Context, id int64) error {
	query := `UPDATE users SET is_deleted = true WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *userRepository) ListActive(ctx context.Context) ([]domain.AdminUser, error) {
	var users []domain.AdminUser
	query := `
		SELECT id, handle, nickname, is_admin, is_active, is_banned
		FROM users
		WHERE is_deleted = false
		ORDER BY id`

	err := r.db.SelectContext(ctx, &users, query)
	return users, err
}
