package models

import "time"

// ProjectStatus represents the review state of a project.
// The set is closed: unknown values are rejected at the service layer
// instead of being stored verbatim.
type ProjectStatus string

const (
	StatusPending  ProjectStatus = "Pending"
	StatusApproved ProjectStatus = "Approved"
	StatusRejected ProjectStatus = "Rejected"
)

// IsValid reports whether the status is one of the known review states.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Project defines the project model based on the 'projects' table.
// PublicID is the short display identifier (e.g. "PRJ-3F9A21BC"),
// distinct from the internal primary key.
type Project struct {
	ID                 int64         `json:"id" db:"id"`
	PublicID           string        `json:"projectId" db:"project_id"`
	Title              string        `json:"title" db:"title"`
	Description        *string       `json:"description,omitempty" db:"description"`
	StudentID          int64         `json:"studentId" db:"student_id"`
	MentorID           *int64        `json:"mentorId,omitempty" db:"mentor_id"`
	Status             ProjectStatus `json:"status" db:"status"`
	ProgressPercentage int           `json:"progressPercentage" db:"progress_percentage"`
	MentorFeedback     *string       `json:"mentorFeedback,omitempty" db:"mentor_feedback"`
	GithubLink         *string       `json:"githubLink,omitempty" db:"github_link"`
	SubmissionDate     time.Time     `json:"submissionDate" db:"submission_date"`
	LastUpdated        *time.Time    `json:"lastUpdated,omitempty" db:"last_updated"`
}
