package media

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapstream/snapstream-api/internal/domain/media"
	"github.com/snapstream/snapstream-api/pkg/apperror"
	"github.com/snapstream/snapstream-api/pkg/logger"
)

type mockMediaRepo struct {
	mu      sync.Mutex
	items   map[uuid.UUID]*media.MediaItem
	saveErr error
}

func newMockMediaRepo() *mockMediaRepo {
	return &mockMediaRepo{items: make(map[uuid.UUID]*media.MediaItem)}
}

func (m *mockMediaRepo) Save(ctx context.Context, item *media.MediaItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	cp := *item
	m.items[item.ID] = &cp
	return nil
}

func (m *mockMediaRepo) FindByID(ctx context.Context, id uuid.UUID) (*media.MediaItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, apperror.NewNotFound("media item", id.String())
	}
	cp := *item
	return &cp, nil
}

func (m *mockMediaRepo) sorted(filter func(*media.MediaItem) bool) []*media.MediaItem {
	out := make([]*media.MediaItem, 0, len(m.items))
	for _, item := range m.items {
		if filter(item) {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UploadDate.Equal(out[j].UploadDate) {
			return out[i].UploadDate.After(out[j].UploadDate)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out
}

func (m *mockMediaRepo) ListAll(ctx context.Context) ([]*media.MediaItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(*media.MediaItem) bool { return true }), nil
}

func (m *mockMediaRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*media.MediaItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sorted(func(item *media.MediaItem) bool { return item.OwnerID == ownerID }), nil
}

func (m *mockMediaRepo) AttachAnalysis(ctx context.Context, id uuid.UUID, payload json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return apperror.NewNotFound("media item", id.String())
	}
	item.AnalysisResults = payload
	item.Status = media.StatusCompleted
	return nil
}

func (m *mockMediaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

type noopNotifier struct{}

func (noopNotifier) Notify(ctx context.Context, subject, message string) error { return nil }

func TestCreateMediaGeneratesIDAndDate(t *testing.T) {
	repo := newMockMediaRepo()
	uc := NewCreateMediaUseCase(repo)

	owner := uuid.New()
	item, err := uc.Execute(context.Background(), CreateMediaInput{
		OwnerID: owner,
		Name:    "cat.png",
		Type:    "image",
		Size:    1024,
		Status:  media.StatusProcessing,
		URL:     "s3://bucket/cat.png",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.Equal(t, owner, item.OwnerID)
	assert.False(t, item.UploadDate.IsZero())
	assert.Equal(t, media.StatusProcessing, item.Status)

	stored, err := repo.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "cat.png", stored.Name)
}

func TestCreateMediaKeepsCallerID(t *testing.T) {
	repo := newMockMediaRepo()
	uc := NewCreateMediaUseCase(repo)

	id := uuid.New()
	item, err := uc.Execute(context.Background(), CreateMediaInput{
		ID:      &id,
		OwnerID: uuid.New(),
		Name:    "dog.mp4",
		Type:    "video",
	})
	require.NoError(t, err)
	assert.Equal(t, id, item.ID)
	// Empty status falls back to the initial lifecycle state.
	assert.Equal(t, media.StatusUploading, item.Status)
}

func TestAttachAnalysisForcesCompletion(t *testing.T) {
	repo := newMockMediaRepo()
	createUC := NewCreateMediaUseCase(repo)
	attachUC := NewAttachAnalysisUseCase(repo, noopNotifier{}, logger.NewNop())

	item, err := createUC.Execute(context.Background(), CreateMediaInput{
		OwnerID: uuid.New(), Name: "cat.png", Type: "image", Status: media.StatusProcessing,
	})
	require.NoError(t, err)

	payload := json.RawMessage(`{"tags":["cat"]}`)
	require.NoError(t, attachUC.Execute(context.Background(), AttachAnalysisInput{
		MediaID: item.ID,
		Payload: payload,
	}))

	stored, err := repo.FindByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, media.StatusCompleted, stored.Status)
	assert.JSONEq(t, `{"tags":["cat"]}`, string(stored.AnalysisResults))
}

func TestAttachAnalysisRejectsInvalidJSON(t *testing.T) {
	attachUC := NewAttachAnalysisUseCase(newMockMediaRepo(), noopNotifier{}, logger.NewNop())

	err := attachUC.Execute(context.Background(), AttachAnalysisInput{
		MediaID: uuid.New(),
		Payload: json.RawMessage(`{"broken`),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestAttachAnalysisMissingItem(t *testing.T) {
	attachUC := NewAttachAnalysisUseCase(newMockMediaRepo(), noopNotifier{}, logger.NewNop())

	err := attachUC.Execute(context.Background(), AttachAnalysisInput{
		MediaID: uuid.New(),
		Payload: json.RawMessage(`{}`),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestDeleteMediaIsIdempotent(t *testing.T) {
	repo := newMockMediaRepo()
	createUC := NewCreateMediaUseCase(repo)
	deleteUC := NewDeleteMediaUseCase(repo)

	item, err := createUC.Execute(context.Background(), CreateMediaInput{
		OwnerID: uuid.New(), Name: "cat.png", Type: "image",
	})
	require.NoError(t, err)

	require.NoError(t, deleteUC.Execute(context.Background(), DeleteMediaInput{MediaID: item.ID}))
	require.NoError(t, deleteUC.Execute(context.Background(), DeleteMediaInput{MediaID: item.ID}))

	_, err = repo.FindByID(context.Background(), item.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}

func TestListMediaScopesByOwnerUnlessAdmin(t *testing.T) {
	repo := newMockMediaRepo()
	createUC := NewCreateMediaUseCase(repo)
	listUC := NewListMediaUseCase(repo)

	alice := uuid.New()
	bob := uuid.New()
	for i, owner := range []uuid.UUID{alice, alice, bob} {
		_, err := createUC.Execute(context.Background(), CreateMediaInput{
			OwnerID: owner, Name: "file", Type: "image", Size: int64(i),
		})
		require.NoError(t, err)
	}

	mine, err := listUC.Execute(context.Background(), ListMediaInput{OwnerID: alice, IsAdmin: false})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, item := range mine {
		assert.Equal(t, alice, item.OwnerID)
	}

	all, err := listUC.Execute(context.Background(), ListMediaInput{OwnerID: alice, IsAdmin: true})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
