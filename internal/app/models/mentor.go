package models

// Mentor defines the mentor model based on the 'mentors' table
type Mentor struct {
	ID         int64   `json:"id" db:"mentor_id"`
	Name       string  `json:"name" db:"name"`
	Email      string  `json:"email" db:"email"`
	Password   string  `json:"-" db:"password"` // bcrypt hash, never serialized
	Department *string `json:"department,omitempty" db:"department"`
}
