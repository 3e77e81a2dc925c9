package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"community-board/internal/domain"
)

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, params domain.PostListParams) ([]domain.Post, int64, error)
	ListByOwner(ctx context.Context, handle string, params domain.PaginationParams) ([]domain.PostSummary, int64, error)
}

type postRepository struct {
	db DBTX
}

func NewPostRepository(db DBTX) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (title, content, image_url, owner_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return r.db.QueryRowxContext(ctx, query,
		post.Title, post.Content, post.ImageURL, post.OwnerHandle,
	).Scan(&post.ID, &post.CreatedAt)
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	query := `
		SELECT p.id, p.title, p.content, p.image_url, p.owner_handle, p.created_at,
			CASE WHEN u.is_deleted THEN $2 ELSE u.nickname END AS nickname
		FROM posts p
		LEFT JOIN users u ON p.owner_handle = u.handle
		WHERE p.id = $1`

	err := r.db.GetContext(ctx, &post, query, id, domain.DeletedUserNickname)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, image_url = $4
		WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, post.ID, post.Title, post.Content, post.ImageURL)
	return err
}

func (r *postRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *postRepository) List(ctx context.Context, params domain.PostListParams) ([]domain.Post, int64, error) {
	params.Pagination.Validate()

	orderBy := "p.created_at DESC"
	switch params.Order {
	case domain.PostOrderOldest:
		orderBy = "p.created_at ASC"
	case domain.PostOrderTitle:
		orderBy = "p.title ASC"
	}

	var total int64
	var posts []domain.Post

	if params.Keyword != "" {
		pattern := "%" + params.Keyword + "%"

		countQuery := `SELECT COUNT(*) FROM posts WHERE title ILIKE $1 OR content ILIKE $1`
		if err := r.db.GetContext(ctx, &total, countQuery, pattern); err != nil {
			return nil, 0, err
		}

		query := fmt.Sprintf(`
			SELECT p.id, p.title, p.content, p.image_url, p.owner_handle, p.created_at,
				CASE WHEN u.is_deleted THEN $2 ELSE u.nickname END AS nickname
			FROM posts p
			LEFT JOIN users u ON p.owner_handle = u.handle
			WHERE p.title ILIKE $1 OR p.content ILIKE $1
			ORDER BY %s
			LIMIT $3 OFFSET $4`, orderBy)

		err := r.db.SelectContext(ctx, &posts, query,
			pattern, domain.DeletedUserNickname, params.Pagination.PageSize, params.Pagination.Offset())
		return posts, total, err
	}

	countQuery := `SELECT COUNT(*) FROM posts`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.title, p.content, p.image_url, p.owner_handle, p.created_at,
			CASE WHEN u.is_deleted THEN $1 ELSE u.nickname END AS nickname
		FROM posts p
		LEFT JOIN users u ON p.owner_handle = u.handle
		ORDER BY %s
		LIMIT $2 OFFSET $3`, orderBy)

	err := r.db.SelectContext(ctx, &posts, query,
		domain.DeletedUserNickname, params.Pagination.PageSize, params.Pagination.Offset())
	return posts, total, err
}

func (r *postRepository) ListByOwner(ctx context.Context, handle string, params domain.PaginationParams) ([]domain.PostSummary, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM posts WHERE owner_handle = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, handle); err != nil {
		return nil, 0, err
	}

	var posts []domain.PostSummary
	query := `
		SELECT id, title, created_at
		FROM posts
		WHERE owner_handle = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	err := r.db.SelectContext(ctx, &posts, query, handle, params.PageSize, params.Offset())
	return posts, total, err
}
