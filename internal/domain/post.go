package domain

import "time"

// Post references its author by login handle rather than numeric user id.
// Comments use the numeric id; the two keys meet only in the notification
// fanout, which resolves the owner by handle.
type Post struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	ImageURL    *string   `json:"image_url" db:"image_url"`
	OwnerHandle string    `json:"user_id" db:"owner_handle"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Resolved at read time from the users table, placeholder for
	// deleted authors.
	Nickname string `json:"nickname" db:"nickname"`
}

type CreatePostInput struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

type UpdatePostInput struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Content *string `json:"content,omitempty"`
}

type PostOrder string

const (
	PostOrderNewest PostOrder = "newest"
	PostOrderOldest PostOrder = "oldest"
	PostOrderTitle  PostOrder = "title"
)

func (o PostOrder) IsValid() bool {
	switch o {
	case PostOrderNewest, PostOrderOldest, PostOrderTitle:
		return true
	default:
		return false
	}
}

type PostListParams struct {
	Pagination PaginationParams
	Keyword    string
	Order      PostOrder
}

// PostSummary is the shape of "my posts" listings.
type PostSummary struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
