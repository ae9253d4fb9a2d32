package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"
	"update-depot/internal/core/domain"
	"update-depot/internal/core/port"
)

type sqlArtifactRepository struct {
	db SQLQuerier
}

// NewSQLArtifactRepository creates a new sqlArtifactRepository
func NewSQLArtifactRepository(db SQLQuerier) port.ArtifactRepository {
	return &sqlArtifactRepository{db: db}
}

// Create appends a new catalog record. The table is append-only; rows are
// never updated or deleted, and "current" is simply the highest id.
func (r *sqlArtifactRepository) Create(ctx context.Context, record domain.ArtifactRecord) (int64, error) {
	query := `
		INSERT INTO artifact (
			current_version, min_version, stored_filename, original_name, size_bytes, uploaded_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRowContext(
		ctx,
		query,
		record.CurrentVersion,
		record.MinVersion,
		record.StoredFilename,
		record.OriginalName,
		record.SizeBytes,
		record.UploadedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Current returns the most recently inserted record
func (r *sqlArtifactRepository) Current(ctx context.Context) (*domain.ArtifactRecord, error) {
	query := `
		SELECT id, current_version, min_version, stored_filename, original_name, size_bytes, uploaded_at
		FROM artifact
		ORDER BY id DESC
		LIMIT 1`

	var row dbArtifact
	err := r.db.QueryRowContext(ctx, query).Scan(
		&row.ID,
		&row.CurrentVersion,
		&row.MinVersion,
		&row.StoredFilename,
		&row.OriginalName,
		&row.SizeBytes,
		&row.UploadedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoArtifactPublished
		}
		return nil, err
	}

	return row.ToDomain(), nil
}

// FindCurrentByStoredFilename matches the filename against the current
// record only. A filename that was once valid but has been superseded is
// not found, so downloads only ever serve the latest artifact.
func (r *sqlArtifactRepository) FindCurrentByStoredFilename(ctx context.Context, storedFilename string) (*domain.ArtifactRecord, error) {
	query := `
		SELECT id, current_version, min_version, stored_filename, original_name, size_bytes, uploaded_at
		FROM artifact
		WHERE id = (SELECT MAX(id) FROM artifact) AND stored_filename = $1`

	var row dbArtifact
	err := r.db.QueryRowContext(ctx, query, storedFilename).Scan(
		&row.ID,
		&row.CurrentVersion,
		&row.MinVersion,
		&row.StoredFilename,
		&row.OriginalName,
		&row.SizeBytes,
		&row.UploadedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArtifactNotFound
		}
		return nil, err
	}

	return row.ToDomain(), nil
}

type dbArtifact struct {
	ID             int64     `db:"id"`
	CurrentVersion string    `db:"current_version"`
	MinVersion     string    `db:"min_version"`
	StoredFilename string    `db:"stored_filename"`
	OriginalName   string    `db:"original_name"`
	SizeBytes      int64     `db:"size_bytes"`
	UploadedAt     time.Time `db:"uploaded_at"`
}

// ToDomain converts db obj to domain
func (a *dbArtifact) ToDomain() *domain.ArtifactRecord {
	return &domain.ArtifactRecord{
		ID:             a.ID,
		CurrentVersion: a.CurrentVersion,
		MinVersion:     a.MinVersion,
		StoredFilename: a.StoredFilename,
		OriginalName:   a.OriginalName,
		SizeBytes:      a.SizeBytes,
		UploadedAt:     a.UploadedAt,
	}
}
