package domain

import "time"

// DeletedUserNickname replaces the stored nickname of withdrawn authors in
// read paths. The persisted row is never rewritten.
const DeletedUserNickname = "deleted user"

type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	ParentID  *int64    `json:"parent_id" db:"parent_id"`
	Content   string    `json:"content" db:"content"`
	ImageURL  *string   `json:"image_url" db:"image_url"`
	Nickname  string    `json:"nickname" db:"nickname"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Replies []*Comment `json:"replies"`
}

type CreateCommentInput struct {
	PostID   int64  `json:"post_id" validate:"required"`
	ParentID *int64 `json:"parent_id"`
	Content  string `json:"content" validate:"required,max=2000"`
}

type UpdateCommentInput struct {
	Content *string `json:"content,omitempty" validate:"omitempty,max=2000"`
}

// CommentSummary is the shape of "my comments" listings.
type CommentSummary struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DisplayNickname returns the author name to show for c.
func (c *Comment) DisplayNickname() string {
	if c.Nickname == "" {
		return DeletedUserNickname
	}
	return c.Nickname
}
