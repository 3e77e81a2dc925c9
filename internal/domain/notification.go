package domain

import "time"

type Notification struct {
	ID        int64            `json:"id" db:"id"`
	UserID    int64            `json:"user_id" db:"user_id"`
	Type      NotificationType `json:"type" db:"type"`
	Message   string           `json:"message" db:"message"`
	PostID    *int64           `json:"post_id" db:"post_id"`
	CommentID *int64           `json:"comment_id" db:"comment_id"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

type NotificationType string

const (
	NotifCommentOnPost  NotificationType = "comment_on_post"
	NotifReplyOnComment NotificationType = "reply_on_comment"
)
