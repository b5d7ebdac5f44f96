package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/snapstream/snapstream-api/internal/domain/media"
	"github.com/snapstream/snapstream-api/pkg/apperror"
	"github.com/snapstream/snapstream-api/pkg/logger"
)

type postgresMediaRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresMediaRepo(db *pgxpool.Pool, logger logger.Logger) media.Repository {
	return &postgresMediaRepo{db: db, logger: logger}
}

var psqlMedia = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const mediaColumns = "id, owner_id, name, type, size, status, url, thumbnail_url, profile, upload_date, analysis_results"

func scanMediaItem(row pgx.Row) (*media.MediaItem, error) {
	m := &media.MediaItem{}
	var thumbURL, profile sql.NullString
	var analysis []byte

	err := row.Scan(
		&m.ID, &m.OwnerID, &m.Name, &m.Type, &m.Size,
		&m.Status, &m.URL, &thumbURL, &profile,
		&m.UploadDate, &analysis,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("media item", "")
		}
		return nil, apperror.NewInternal("failed to scan media row", err)
	}

	if thumbURL.Valid {
		m.ThumbnailURL = &thumbURL.String
	}
	if profile.Valid {
		m.Profile = &profile.String
	}
	if len(analysis) > 0 {
		m.AnalysisResults = json.RawMessage(analysis)
	}
	return m, nil
}

func scanMediaItems(rows pgx.Rows) ([]*media.MediaItem, error) {
	defer rows.Close()
	items := make([]*media.MediaItem, 0)
	for rows.Next() {
		m, err := scanMediaItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating media rows", err)
	}
	return items, nil
}

func (r *postgresMediaRepo) Save(ctx context.Context, m *media.MediaItem) error {
	query := `
		INSERT INTO media_items (id, owner_id, name, type, size, status, url, thumbnail_url, profile, upload_date, analysis_results)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	var analysis []byte
	if m.AnalysisResults != nil {
		analysis = m.AnalysisResults
	}
	_, err := r.db.Exec(ctx, query,
		m.ID, m.OwnerID, m.Name, m.Type, m.Size, m.Status,
		m.URL, m.ThumbnailURL, m.Profile, m.UploadDate, analysis,
	)
	if err != nil {
		return apperror.NewInternal("failed to insert media item", err)
	}
	return nil
}

func (r *postgresMediaRepo) FindByID(ctx context.Context, id uuid.UUID) (*media.MediaItem, error) {
	query := `SELECT ` + mediaColumns + ` FROM media_items WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	return scanMediaItem(row)
}

func (r *postgresMediaRepo) ListAll(ctx context.Context) ([]*media.MediaItem, error) {
	return r.list(ctx, nil)
}

func (r *postgresMediaRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*media.MediaItem, error) {
	return r.list(ctx, sq.Eq{"owner_id": ownerID})
}

func (r *postgresMediaRepo) list(ctx context.Context, where any) ([]*media.MediaItem, error) {
	builder := psqlMedia.Select(mediaColumns).
		From("media_items").
		OrderBy("upload_date DESC", "id DESC")
	if where != nil {
		builder = builder.Where(where)
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build media list query", err)
	}
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query media items", err)
	}
	return scanMediaItems(rows)
}

// AttachAnalysis is a single UPDATE so the payload and the completed status
// land together; racing with Delete leaves either a completed row or no row.
func (r *postgresMediaRepo) AttachAnalysis(ctx context.Context, id uuid.UUID, payload json.RawMessage) error {
	query := `
		UPDATE media_items
		SET analysis_results = $2, status = $3
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, id, []byte(payload), media.StatusCompleted)
	if err != nil {
		return apperror.NewInternal("failed to attach analysis", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("media item", id.String())
	}
	return nil
}

func (r *postgresMediaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM media_items WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return apperror.NewInternal("failed to delete media item", err)
	}
	// Zero rows affected is fine, delete is idempotent.
	return nil
}
