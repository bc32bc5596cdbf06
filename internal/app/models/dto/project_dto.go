package dto

import "time"

// CreateProjectRequest is the student payload for submitting a project
type CreateProjectRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	MentorID    *int64  `json:"mentorId"`
	GithubLink  *string `json:"githubLink"`
}

// UpdateStatusRequest is the mentor review payload. Feedback and progress
// are only written when supplied; omission keeps the stored value.
type UpdateStatusRequest struct {
	Status             string  `json:"status" binding:"required"`
	MentorFeedback     *string `json:"mentorFeedback"`
	ProgressPercentage *int    `json:"progressPercentage" binding:"omitempty,min=0,max=100"`
}

// UpdateProjectDetailsRequest is the student-writable field set of a project.
// Ownership, status and review fields are not reachable through this payload.
type UpdateProjectDetailsRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	GithubLink  *string `json:"githubLink"`
}

// AdminProjectResponse is the admin list row: every project joined with the
// owning student's name and the assigned mentor's name when present
type AdminProjectResponse struct {
	ID          int64      `json:"id"`
	ProjectID   string     `json:"projectId"`
	Title       string     `json:"title"`
	StudentName string     `json:"studentName"`
	MentorName  *string    `json:"mentorName,omitempty"`
	Status      string     `json:"status"`
	GithubLink  *string    `json:"githubLink,omitempty"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

// MentorProjectResponse is the mentor dashboard row. Review fields are
// display-defaulted: a null status reads as Pending, progress as 0, feedback
// as empty, and last_updated falls back to the submission date.
type MentorProjectResponse struct {
	ID                 int64     `json:"id"`
	ProjectID          string    `json:"projectId"`
	Title              string    `json:"title"`
	StudentName        string    `json:"studentName"`
	GithubLink         *string   `json:"githubLink,omitempty"`
	Status             string    `json:"status"`
	ProgressPercentage int       `json:"progressPercentage"`
	MentorFeedback     string    `json:"mentorFeedback"`
	LastUpdated        time.Time `json:"lastUpdated"`
}

// StudentProjectResponse is the full project view for the owning student
type StudentProjectResponse struct {
	ID                 int64      `json:"id"`
	ProjectID          string     `json:"projectId"`
	Title              string     `json:"title"`
	Description        *string    `json:"description,omitempty"`
	StudentName        string     `json:"studentName"`
	MentorName         *string    `json:"mentorName,omitempty"`
	Status             string     `json:"status"`
	ProgressPercentage int        `json:"progressPercentage"`
	GithubLink         *string    `json:"githubLink,omitempty"`
	MentorFeedback     *string    `json:"mentorFeedback,omitempty"`
	SubmissionDate     time.Time  `json:"submissionDate"`
	LastUpdated        *time.Time `json:"lastUpdated,omitempty"`
}
