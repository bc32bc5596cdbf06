package dto

// CreateStudentRequest is the admin payload for registering a student
type CreateStudentRequest struct {
	Name       string  `json:"name" binding:"required"`
	PRN        string  `json:"prn" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=6"`
	MentorID   *int64  `json:"mentorId"`
	GithubLink *string `json:"githubLink"`
}

// UpdateStudentRequest is a partial update: nil fields keep their stored value
type UpdateStudentRequest struct {
	Name       *string `json:"name"`
	PRN        *string `json:"prn"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Password   *string `json:"password" binding:"omitempty,min=6"`
	MentorID   *int64  `json:"mentorId"`
	GithubLink *string `json:"githubLink"`
}

// ResetPasswordRequest overwrites a credential without confirmation
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// AssignMentorRequest links a student to a mentor
type AssignMentorRequest struct {
	StudentID int64 `json:"studentId" binding:"required"`
	MentorID  int64 `json:"mentorId" binding:"required"`
}

// UpdateGithubLinkRequest is the student self-service repository link update
type UpdateGithubLinkRequest struct {
	GithubLink string `json:"githubLink" binding:"required,url"`
}

// StudentResponse is the admin view of a student, joined with the
// assigned mentor's name when one is set
type StudentResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	PRN        string  `json:"prn"`
	Email      string  `json:"email"`
	MentorID   *int64  `json:"mentorId,omitempty"`
	MentorName *string `json:"mentorName,omitempty"`
	GithubLink *string `json:"githubLink,omitempty"`
}
