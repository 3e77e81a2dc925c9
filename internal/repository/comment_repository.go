package repository

import (
	"context"
	"database/sql"
	"errors"

	"community-board/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	GetReplyByID(ctx context.Context, id int64) (*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id int64) error
	ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error)
	ListAll(ctx context.Context) ([]*domain.Comment, error)
	ListByAuthor(ctx context.Context, userID int64, params domain.PaginationParams) ([]domain.CommentSummary, int64, error)
}

type commentRepository struct {
	db DBTX
}

func NewCommentRepository(db DBTX) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (post_id, user_id, parent_id, content, image_url, nickname)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	return r.db.QueryRowxContext(ctx, query,
		comment.PostID, comment.UserID, comment.ParentID,
		comment.Content, comment.ImageURL, comment.Nickname,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment domain.Comment
	query := `SELECT id, post_id, user_id, parent_id, content, image_url, nickname, created_at
		FROM comments WHERE id = $1`

	err := r.db.GetContext(ctx, &comment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetReplyByID resolves only comments that have a parent.
func (r *commentRepository) GetReplyByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment domain.Comment
	query := `SELECT id, post_id, user_id, parent_id, content, image_url, nickname, created_at
		FROM comments WHERE id = $1 AND parent_id IS NOT NULL`

	err := r.db.GetContext(ctx, &comment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	query := `UPDATE comments SET content = $2, image_url = $3 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, comment.ID, comment.Content, comment.ImageURL)
	return err
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM comments WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// ListByPost returns the flat comment set ordered by creation time so the
// tree builder gets deterministic sibling order.
func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	query := `
		SELECT id, post_id, user_id, parent_id, content, image_url, nickname, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC, id ASC`

	err := r.db.SelectContext(ctx, &comments, query, postID)
	return comments, err
}

// ListAll returns every comment across all posts. Orphaned replies that the
// tree builder drops from rendered threads are still present here.
func (r *commentRepository) ListAll(ctx context.Context) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	query := `
		SELECT id, post_id, user_id, parent_id, content, image_url, nickname, created_at
		FROM comments
		ORDER BY created_at ASC, id ASC`

	err := r.db.SelectContext(ctx, &comments, query)
	return comments, err
}

func (r *commentRepository) ListByAuthor(ctx context.Context, userID int64, params domain.PaginationParams) ([]domain.CommentSummary, int64, error) {
	params.Validate()

	var total int64
	countQuery := `SELECT COUNT(*) FROM comments WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	var comments []domain.CommentSummary
	query := `
		SELECT id, post_id, content, created_at
		FROM comments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	err := r.db.SelectContext(ctx, &comments, query, userID, params.PageSize, params.Offset())
	return comments, total, err
}
