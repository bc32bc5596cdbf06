package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64   `json:"id" db:"student_id"`
	Name       string  `json:"name" db:"name"`
	PRN        string  `json:"prn" db:"prn"` // Unique registration number
	Email      string  `json:"email" db:"email"`
	Password   string  `json:"-" db:"password"` // bcrypt hash, never serialized
	MentorID   *int64  `json:"mentorId,omitempty" db:"mentor_id"`
	GithubLink *string `json:"githubLink,omitempty" db:"github_link"`

	// Relations (populated when needed)
	Mentor *Mentor `json:"mentor,omitempty"`
}
