package dto

// SendMessageRequest appends a message to a project's log. The sender's
// role and id are taken from the access token, not the payload.
type SendMessageRequest struct {
	ProjectID int64  `json:"projectId" binding:"required"`
	Text      string `json:"text" binding:"required"`
}
