package models

import "time"

// SenderType identifies which role authored a message.
type SenderType string

const (
	SenderAdmin   SenderType = "admin"
	SenderMentor  SenderType = "mentor"
	SenderStudent SenderType = "student"
)

// IsValid reports whether the sender type is one of the known roles.
func (s SenderType) IsValid() bool {
	switch s {
	case SenderAdmin, SenderMentor, SenderStudent:
		return true
	}
	return false
}

// Message represents an append-only message tied to a project.
// Messages are never updated or deleted.
type Message struct {
	ID         int64      `json:"id" db:"message_id"`
	ProjectID  int64      `json:"projectId" db:"project_id"`
	SenderType SenderType `json:"senderType" db:"sender_type"`
	SenderID   int64      `json:"senderId" db:"sender_id"`
	Text       string     `json:"text" db:"message_text"`
	SentAt     time.Time  `json:"sentAt" db:"sent_at"`
}
