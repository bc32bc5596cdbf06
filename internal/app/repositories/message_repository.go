package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ozanc/mentorhub/internal/app/models"
)

// MessageRepository handles database operations for the project message log.
// The log is append-only: there is deliberately no update or delete here.
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

// Create appends a message and fills in the generated id and timestamp
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (project_id, sender_type, sender_id, message_text)
		VALUES ($1, $2, $3, $4)
		RETURNING message_id, sent_at
	`

	err := r.db.QueryRow(ctx, query,
		message.ProjectID,
		message.SenderType,
		message.SenderID,
		message.Text,
	).Scan(&message.ID, &message.SentAt)
	if err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}

	return nil
}

// GetByProjectID retrieves a project's messages in chronological order
func (r *MessageRepository) GetByProjectID(ctx context.Context, projectID int64) ([]*models.Message, error) {
	query := `
		SELECT message_id, project_id, sender_type, sender_id, message_text, sent_at
		FROM messages
		WHERE project_id = $1
		ORDER BY sent_at, message_id
	`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		var message models.Message
		if err := rows.Scan(
			&message.ID,
			&message.ProjectID,
			&message.SenderType,
			&message.SenderID,
			&message.Text,
			&message.SentAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, &message)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
