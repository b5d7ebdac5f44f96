package media

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/snapstream/snapstream-api/internal/application/service"
	"github.com/snapstream/snapstream-api/internal/domain/media"
	"github.com/snapstream/snapstream-api/pkg/apperror"
	"github.com/snapstream/snapstream-api/pkg/logger"
)

type AttachAnalysisUseCase struct {
	mediaRepo media.Repository
	notifier  service.Notifier
	logger    logger.Logger
}

func NewAttachAnalysisUseCase(r media.Repository, n service.Notifier, log logger.Logger) *AttachAnalysisUseCase {
	return &AttachAnalysisUseCase{mediaRepo: r, notifier: n, logger: log}
}

type AttachAnalysisInput struct {
	MediaID uuid.UUID
	Payload json.RawMessage
}

func (uc *AttachAnalysisUseCase) Execute(ctx context.Context, in AttachAnalysisInput) error {
	if len(in.Payload) == 0 || !json.Valid(in.Payload) {
		return apperror.NewInvalidInput("analysis payload must be valid JSON", nil)
	}

	// Single write: the store sets analysis_results and forces status to
	// completed together, so the invariant cannot be observed half-applied.
	if err := uc.mediaRepo.AttachAnalysis(ctx, in.MediaID, in.Payload); err != nil {
		return err
	}

	go func() {
		msg := fmt.Sprintf("Analysis completed for media item %s.", in.MediaID)
		if err := uc.notifier.Notify(context.Background(), "Analysis Completed", msg); err != nil {
			uc.logger.Error("Failed to publish analysis notification", err)
		}
	}()

	return nil
}
