package media

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/snapstream/snapstream-api/internal/application/service"
	"github.com/snapstream/snapstream-api/internal/domain/media"
	"github.com/snapstream/snapstream-api/pkg/apperror"
	"github.com/snapstream/snapstream-api/pkg/logger"
)

type UploadMediaUseCase struct {
	mediaRepo media.Repository
	uploader  service.Uploader
	notifier  service.Notifier
	logger    logger.Logger
}

func NewUploadMediaUseCase(
	r media.Repository,
	u service.Uploader,
	n service.Notifier,
	log logger.Logger,
) *UploadMediaUseCase {
	return &UploadMediaUseCase{mediaRepo: r, uploader: u, notifier: n, logger: log}
}

type UploadMediaInput struct {
	OwnerID  uuid.UUID
	File     io.Reader
	Filename string
	Size     int64
	Type     string
	Profile  *string
}

func (uc *UploadMediaUseCase) Execute(ctx context.Context, input UploadMediaInput) (*media.MediaItem, error) {
	mediaID := uuid.New()

	folder := fmt.Sprintf("users/%s/media", input.OwnerID.String())
	publicID := mediaID.String()

	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload media file", err)
	}

	var thumbURL *string
	if t, err := uc.uploader.ThumbnailURL(publicID); err != nil {
		uc.logger.Warn("Could not build thumbnail URL", zap.String("media_id", publicID), zap.Error(err))
	} else {
		thumbURL = &t
	}

	item := &media.MediaItem{
		ID:           mediaID,
		OwnerID:      input.OwnerID,
		Name:         input.Filename,
		Type:         input.Type,
		Size:         input.Size,
		Status:       media.StatusProcessing,
		URL:          url,
		ThumbnailURL: thumbURL,
		Profile:      input.Profile,
		UploadDate:   time.Now().UTC(),
	}

	if err := uc.mediaRepo.Save(ctx, item); err != nil {
		// The binary is already remote; clean it up off the request path.
		go uc.uploader.Delete(context.Background(), publicID)
		return nil, err
	}

	go func() {
		msg := fmt.Sprintf("Media '%s' uploaded by %s.", item.Name, item.OwnerID)
		if err := uc.notifier.Notify(context.Background(), "Media Uploaded", msg); err != nil {
			uc.logger.Error("Failed to publish upload notification", err, zap.String("media_id", mediaID.String()))
		}
	}()

	return item, nil
}
