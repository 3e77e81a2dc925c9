package domain

type User struct {
	ID           int64  `json:"id" db:"id"`
	Handle       string `json:"user_id" db:"handle"`
	PasswordHash string `json:"-" db:"password_hash"`
	Nickname     string `json:"nickname" db:"nickname"`
	IsAdmin      bool   `json:"is_admin" db:"is_admin"`
	IsActive     bool   `json:"is_active" db:"is_active"`
	IsBanned     bool   `json:"is_banned" db:"is_banned"`
	IsDeleted    bool   `json:"-" db:"is_deleted"`
}

type RegisterInput struct {
	Handle   string `json:"user_id" validate:"required,max=16"`
	Password string `json:"password" validate:"required,max=20"`
	Nickname string `json:"nickname" validate:"required,max=16"`
}

type LoginInput struct {
	Handle   string `json:"user_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateNicknameInput struct {
	Nickname string `json:"nickname" validate:"required,max=16"`
}

// AdminUser is the trimmed view returned by the admin user listing.
type AdminUser struct {
	ID       int64  `json:"id" db:"id"`
	Handle   string `json:"user_id" db:"handle"`
	Nickname string `json:"nickname" db:"nickname"`
	IsAdmin  bool   `json:"is_admin" db:"is_admin"`
	IsActive bool   `json:"is_active" db:"is_active"`
	IsBanned bool   `json:"is_banned" db:"is_banned"`
}
