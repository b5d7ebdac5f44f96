package media

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MediaStatus string

const (
	StatusUploading  MediaStatus = "uploading"
	StatusProcessing MediaStatus = "processing"
	StatusCompleted  MediaStatus = "completed"
	StatusFailed     MediaStatus = "failed"
)

type MediaItem struct {
	ID           uuid.UUID       `json:"id"`
	OwnerID      uuid.UUID       `json:"owner_id"`
	Name         string          `json:"name"`
	Type         string          `json:"type"`
	Size         int64           `json:"size"`
	Status       MediaStatus     `json:"status"`
	URL          string          `json:"url"`
	ThumbnailURL *string         `json:"thumbnail_url"`
	Profile      *string         `json:"profile"`
	UploadDate   time.Time       `json:"upload_date"`
	// Opaque payload attached after creation; non-nil means the item is
	// completed.
	AnalysisResults json.RawMessage `json:"analysis_results"`
}

type Repository interface {
	Save(ctx context.Context, m *MediaItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*MediaItem, error)
	// ListAll and ListByOwner order by upload_date descending, ties broken
	// by id so one snapshot always lists deterministically.
	ListAll(ctx context.Context) ([]*MediaItem, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*MediaItem, error)
	// AttachAnalysis stores the payload and forces status to completed in a
	// single write. Missing id surfaces as not found.
	AttachAnalysis(ctx context.Context, id uuid.UUID, payload json.RawMessage) error
	// Delete is idempotent; deleting an absent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
