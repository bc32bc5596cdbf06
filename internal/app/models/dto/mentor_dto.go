package dto

// CreateMentorRequest is the admin payload for registering a mentor
type CreateMentorRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=6"`
	Department *string `json:"department"`
}

// UpdateMentorRequest is a partial update: nil fields keep their stored value
type UpdateMentorRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Password   *string `json:"password" binding:"omitempty,min=6"`
	Department *string `json:"department"`
}

// MentorResponse is the mentor record as returned to admins
type MentorResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Department *string `json:"department,omitempty"`
}
