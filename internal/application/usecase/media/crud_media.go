package media

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/snapstream/snapstream-api/internal/domain/media"
)

// Create

type CreateMediaUseCase struct {
	mediaRepo media.Repository
}

func NewCreateMediaUseCase(r media.Repository) *CreateMediaUseCase {
	return &CreateMediaUseCase{mediaRepo: r}
}

type CreateMediaInput struct {
	ID           *uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Type         string
	Size         int64
	Status       media.MediaStatus
	URL          string
	ThumbnailURL *string
	Profile      *string
}

func (uc *CreateMediaUseCase) Execute(ctx context.Context, in CreateMediaInput) (*media.MediaItem, error) {
	id := uuid.New()
	if in.ID != nil {
		id = *in.ID
	}
	status := in.Status
	if status == "" {
		status = media.StatusUploading
	}

	// The owner reference is asserted by the caller, never checked against
	// the users collection.
	item := &media.MediaItem{
		ID:           id,
		OwnerID:      in.OwnerID,
		Name:         in.Name,
		Type:         in.Type,
		Size:         in.Size,
		Status:       status,
		URL:          in.URL,
		ThumbnailURL: in.ThumbnailURL,
		Profile:      in.Profile,
		UploadDate:   time.Now().UTC(),
	}

	if err := uc.mediaRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List

type ListMediaUseCase struct {
	mediaRepo media.Repository
}

func NewListMediaUseCase(r media.Repository) *ListMediaUseCase {
	return &ListMediaUseCase{mediaRepo: r}
}

type ListMediaInput struct {
	OwnerID uuid.UUID
	IsAdmin bool
}

func (uc *ListMediaUseCase) Execute(ctx context.Context, in ListMediaInput) ([]*media.MediaItem, error) {
	if in.IsAdmin {
		items, err := uc.mediaRepo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list all media failed: %w", err)
		}
		return items, nil
	}
	items, err := uc.mediaRepo.ListByOwner(ctx, in.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list media by owner failed: %w", err)
	}
	return items, nil
}

// Delete

type DeleteMediaUseCase struct {
	mediaRepo media.Repository
}

func NewDeleteMediaUseCase(r media.Repository) *DeleteMediaUseCase {
	return &DeleteMediaUseCase{mediaRepo: r}
}

type DeleteMediaInput struct {
	MediaID uuid.UUID
}

func (uc *DeleteMediaUseCase) Execute(ctx context.Context, in DeleteMediaInput) error {
	return uc.mediaRepo.Delete(ctx, in.MediaID)
}
