package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/snapstream/snapstream-api/internal/domain/media"
	"github.com/snapstream/snapstream-api/internal/domain/user"
	"github.com/snapstream/snapstream-api/pkg/apperror"
	"github.com/snapstream/snapstream-api/pkg/logger"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	userRepo    user.Repository
	mediaRepo   media.Repository
	testOwner   *user.User
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	log := logger.NewNop()
	s.userRepo = NewPostgresUserRepo(pool, log)
	s.mediaRepo = NewPostgresMediaRepo(pool, log)

	s.testOwner = &user.User{
		ID:       uuid.New(),
		Name:     "Test Owner",
		Email:    "owner@example.com",
		Password: "pw",
		Role:     user.RoleStandard,
	}
	if err := s.userRepo.Save(ctx, s.testOwner); err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func (s *RepoIntegrationTestSuite) newItem(uploadDate time.Time) *media.MediaItem {
	return &media.MediaItem{
		ID:         uuid.New(),
		OwnerID:    s.testOwner.ID,
		Name:       "clip.mp4",
		Type:       "video",
		Size:       2048,
		Status:     media.StatusProcessing,
		URL:        "https://cdn.example.com/clip.mp4",
		UploadDate: uploadDate,
	}
}

func (s *RepoIntegrationTestSuite) Test_User_DuplicateEmail_DifferentCase() {
	ctx := context.Background()

	dup := &user.User{
		ID:       uuid.New(),
		Name:     "Shadow Owner",
		Email:    "OWNER@Example.com",
		Password: "pw2",
		Role:     user.RoleStandard,
	}

	err := s.userRepo.Save(ctx, dup)
	s.Error(err)
	s.True(errors.Is(err, apperror.ErrConflict))
}

func (s *RepoIntegrationTestSuite) Test_User_FindByEmail_CaseInsensitive() {
	ctx := context.Background()

	found, err := s.userRepo.FindByEmail(ctx, "OWNER@EXAMPLE.COM")
	s.NoError(err)
	s.Equal(s.testOwner.ID, found.ID)
	s.Equal("owner@example.com", found.Email)
}

func (s *RepoIntegrationTestSuite) Test_User_List_OmitsPassword() {
	ctx := context.Background()

	users, err := s.userRepo.List(ctx)
	s.NoError(err)
	s.NotEmpty(users)
	for _, u := range users {
		s.Empty(u.Password)
	}
}

func (s *RepoIntegrationTestSuite) Test_Media_Save_And_FindByID() {
	ctx := context.Background()

	thumb := "https://cdn.example.com/thumb/clip.jpg"
	profile := "hd"
	item := s.newItem(time.Now().UTC())
	item.ThumbnailURL = &thumb
	item.Profile = &profile

	s.NoError(s.mediaRepo.Save(ctx, item))

	found, err := s.mediaRepo.FindByID(ctx, item.ID)
	s.NoError(err)
	s.Equal(item.OwnerID, found.OwnerID)
	s.Equal(item.Name, found.Name)
	s.Equal(media.StatusProcessing, found.Status)
	s.Require().NotNil(found.ThumbnailURL)
	s.Equal(thumb, *found.ThumbnailURL)
	s.Require().NotNil(found.Profile)
	s.Equal(profile, *found.Profile)
	s.Nil(found.AnalysisResults)
}

func (s *RepoIntegrationTestSuite) Test_Media_List_NewestFirst() {
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Millisecond)
	older := s.newItem(base.Add(-2 * time.Hour))
	newer := s.newItem(base.Add(-1 * time.Hour))
	s.NoError(s.mediaRepo.Save(ctx, older))
	s.NoError(s.mediaRepo.Save(ctx, newer))

	items, err := s.mediaRepo.ListByOwner(ctx, s.testOwner.ID)
	s.NoError(err)

	var prev time.Time
	for i, item := range items {
		if i > 0 {
			s.False(item.UploadDate.After(prev))
		}
		prev = item.UploadDate
	}
}

func (s *RepoIntegrationTestSuite) Test_Media_ListByOwner_ExcludesOthers() {
	ctx := context.Background()

	other := &user.User{
		ID:       uuid.New(),
		Name:     "Other",
		Email:    uuid.NewString() + "@example.com",
		Password: "pw",
		Role:     user.RoleStandard,
	}
	s.NoError(s.userRepo.Save(ctx, other))

	foreign := s.newItem(time.Now().UTC())
	foreign.OwnerID = other.ID
	s.NoError(s.mediaRepo.Save(ctx, foreign))

	items, err := s.mediaRepo.ListByOwner(ctx, s.testOwner.ID)
	s.NoError(err)
	for _, item := range items {
		s.Equal(s.testOwner.ID, item.OwnerID)
	}

	all, err := s.mediaRepo.ListAll(ctx)
	s.NoError(err)
	s.GreaterOrEqual(len(all), len(items)+1)
}

func (s *RepoIntegrationTestSuite) Test_Media_AttachAnalysis_RoundTrip() {
	ctx := context.Background()

	item := s.newItem(time.Now().UTC())
	s.NoError(s.mediaRepo.Save(ctx, item))

	payload := json.RawMessage(`{"labels": ["sunset", "beach"], "confidence": 0.97}`)
	s.NoError(s.mediaRepo.AttachAnalysis(ctx, item.ID, payload))

	found, err := s.mediaRepo.FindByID(ctx, item.ID)
	s.NoError(err)
	s.Equal(media.StatusCompleted, found.Status)
	s.JSONEq(string(payload), string(found.AnalysisResults))
}

func (s *RepoIntegrationTestSuite) Test_Media_AttachAnalysis_MissingRow() {
	err := s.mediaRepo.AttachAnalysis(context.Background(), uuid.New(), json.RawMessage(`{}`))
	s.Error(err)
	s.True(errors.Is(err, apperror.ErrNotFound))
}

func (s *RepoIntegrationTestSuite) Test_Media_Delete_Idempotent() {
	ctx := context.Background()

	item := s.newItem(time.Now().UTC())
	s.NoError(s.mediaRepo.Save(ctx, item))

	s.NoError(s.mediaRepo.Delete(ctx, item.ID))
	s.NoError(s.mediaRepo.Delete(ctx, item.ID))

	_, err := s.mediaRepo.FindByID(ctx, item.ID)
	s.True(errors.Is(err, apperror.ErrNotFound))

	// Analysis arriving after deletion surfaces as not-found too.
	err = s.mediaRepo.AttachAnalysis(ctx, item.ID, json.RawMessage(`{"late": true}`))
	s.True(errors.Is(err, apperror.ErrNotFound))
}
