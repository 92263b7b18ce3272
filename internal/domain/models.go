package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FileMeta stores metadata about an uploaded SOF document.
type FileMeta struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	FileName     string     `db:"file_name" json:"file_name"`
	OriginalName string     `db:"original_name" json:"original_name"`
	FileType     FileType   `db:"file_type" json:"file_type"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	S3Bucket     string     `db:"s3_bucket" json:"s3_bucket"`
	S3Key        string     `db:"s3_key" json:"s3_key"`
	ContentType  string     `db:"content_type" json:"content_type"`
	Status       FileStatus `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// SOFRecord is one persisted parse outcome. Result holds the full
// structured parse as JSON; the projected columns exist for listing and
// filtering without unpacking the document.
type SOFRecord struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	FileID          *uuid.UUID      `db:"file_id" json:"file_id,omitempty"`
	FileName        string          `db:"file_name" json:"file_name"`
	Result          json.RawMessage `db:"result" json:"result"`
	LaytimeStatus   string          `db:"laytime_status" json:"laytime_status"`
	TotalTimeHours  *float64        `db:"total_time_hours" json:"total_time_hours,omitempty"`
	DemurrageUSD    *float64        `db:"demurrage_usd" json:"demurrage_usd,omitempty"`
	DespatchUSD     *float64        `db:"despatch_usd" json:"despatch_usd,omitempty"`
	ConfidenceScore float64         `db:"confidence_score" json:"confidence_score"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

// Voyage represents a tracked voyage on the chartering desk.
type Voyage struct {
	ID               uuid.UUID    `db:"id" json:"id"`
	VesselName       string       `db:"vessel_name" json:"vessel_name"`
	VoyageNumber     string       `db:"voyage_number" json:"voyage_number"`
	LoadPort         string       `db:"load_port" json:"load_port"`
	DischargePort    string       `db:"discharge_port" json:"discharge_port"`
	CargoDescription string       `db:"cargo_description" json:"cargo_description"`
	Status           VoyageStatus `db:"status" json:"status"`
	Notes            string       `db:"notes" json:"notes"`
	CreatedAt        time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at" json:"updated_at"`
}

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SessionID string    `db:"session_id" json:"session_id"`
	Role      ChatRole  `db:"role" json:"role"`
	Agent     string    `db:"agent" json:"agent"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SystemStats aggregates desk-wide counters.
type SystemStats struct {
	SOFRecords      int64 `db:"sof_records" json:"sof_records"`
	FilesStored     int64 `db:"files_stored" json:"files_stored"`
	Voyages         int64 `db:"voyages" json:"voyages"`
	ChatMessages    int64 `db:"chat_messages" json:"chat_messages"`
	LaytimeExceeded int64 `db:"laytime_exceeded" json:"laytime_exceeded"`
}
