package models

// Admin defines the administrator model based on the 'admins' table
type Admin struct {
	ID       int64  `json:"id" db:"admin_id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"` // bcrypt hash, never serialized
}
