package port

import (
	"context"

	"github.com/google/uuid"

	"sofdesk/internal/domain"
)

// SOFRecordRepository defines the contract for parse result persistence.
type SOFRecordRepository interface {
	Create(ctx context.Context, rec *domain.SOFRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SOFRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.SOFRecord, int, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]domain.SOFRecord, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FileMetaRepository defines the contract for file metadata persistence.
type FileMetaRepository interface {
	Create(ctx context.Context, meta *domain.FileMeta) error
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.FileMeta, error)
	List(ctx context.Context, offset, limit int) ([]domain.FileMeta, int, error)
	UpdateStatus(ctx context.Context, fileID uuid.UUID, status domain.FileStatus) error
	Delete(ctx context.Context, fileID uuid.UUID) error
}

// VoyageRepository defines the contract for voyage persistence.
type VoyageRepository interface {
	Create(ctx context.Context, voyage *domain.Voyage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Voyage, error)
	List(ctx context.Context, offset, limit int) ([]domain.Voyage, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VoyageStatus) error
}

// ChatRepository defines the contract for chat history persistence.
type ChatRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) error
	ListBySession(ctx context.Context, sessionID string, offset, limit int) ([]domain.ChatMessage, int, error)
	ListRecent(ctx context.Context, offset, limit int) ([]domain.ChatMessage, int, error)
}

// StatsRepository provides aggregate statistics queries.
type StatsRepository interface {
	GetSystemStats(ctx context.Context) (*domain.SystemStats, error)
}
