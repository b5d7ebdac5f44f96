package notification

import (
	"context"
	"fmt"

	"github.com/snapstream/snapstream-api/internal/domain/notification"
)

type ListRecentUseCase struct {
	feed notification.Feed
}

func NewListRecentUseCase(f notification.Feed) *ListRecentUseCase {
	return &ListRecentUseCase{feed: f}
}

type ListRecentInput struct{ Limit int }

func (uc *ListRecentUseCase) Execute(ctx context.Context, in ListRecentInput) ([]notification.Notification, error) {
	if in.Limit <= 0 {
		in.Limit = 20
	}
	items, err := uc.feed.Recent(ctx, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("read notification feed failed: %w", err)
	}
	return items, nil
}
