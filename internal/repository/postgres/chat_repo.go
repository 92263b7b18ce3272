package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"sofdesk/internal/domain"
	"sofdesk/internal/port"
)

type chatRepo struct {
	db *sqlx.DB
}

// NewChatRepo creates a new PostgreSQL-backed ChatRepository.
func NewChatRepo(db *sqlx.DB) port.ChatRepository {
	return &chatRepo{db: db}
}

func (r *chatRepo) Create(ctx context.Context, msg *domain.ChatMessage) error {
	msg.CreatedAt = time.Now().UTC()

	query := `INSERT INTO chat_messages
		(id, session_id, role, agent, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.SessionID, msg.Role, msg.Agent, msg.Content, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("chatRepo.Create: %w", err)
	}
	return nil
}

func (r *chatRepo) ListBySession(ctx context.Context, sessionID string, offset, limit int) ([]domain.ChatMessage, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM chat_messages WHERE session_id = $1", sessionID)
	if err != nil {
		return nil, 0, fmt.Errorf("chatRepo.ListBySession count: %w", err)
	}

	var msgs []domain.ChatMessage
	err = r.db.SelectContext(ctx, &msgs,
		`SELECT * FROM chat_messages WHERE session_id = $1
		 ORDER BY created_at ASC LIMIT $2 OFFSET $3`,
		sessionID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("chatRepo.ListBySession: %w", err)
	}
	return msgs, total, nil
}

func (r *chatRepo) ListRecent(ctx context.Context, offset, limit int) ([]domain.ChatMessage, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM chat_messages"); err != nil {
		return nil, 0, fmt.Errorf("chatRepo.ListRecent count: %w", err)
	}

	var msgs []domain.ChatMessage
	err := r.db.SelectContext(ctx, &msgs,
		"SELECT * FROM chat_messages ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("chatRepo.ListRecent: %w", err)
	}
	return msgs, total, nil
}
