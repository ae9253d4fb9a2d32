package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"
	"update-depot/internal/core/domain"
	"update-depot/internal/core/port"

	"github.com/google/uuid"
)

type sqlUploadSessionRepository struct {
	db SQLQuerier
}

// NewSQLUploadSessionRepository creates a new sqlUploadSessionRepository
func NewSQLUploadSessionRepository(db SQLQuerier) port.UploadSessionRepository {
	return &sqlUploadSessionRepository{db: db}
}

// Create creates an upload session
func (s *sqlUploadSessionRepository) Create(ctx context.Context, session domain.UploadSession) error {
	query := `
		INSERT INTO upload_session (
			id, file_name, declared_size, total_chunks, current_version, min_version
		) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.FileName,
		session.DeclaredSize,
		session.TotalChunks,
		session.CurrentVersion,
		session.MinVersion,
	)
	if err != nil {
		return err
	}
	return nil
}

func (s *sqlUploadSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.UploadSession, error) {
	query := `
		SELECT id, file_name, declared_size, total_chunks, current_version, min_version, created_at, updated_at
		FROM upload_session
		WHERE id = $1`

	var row dbUploadSession
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&row.ID,
		&row.FileName,
		&row.DeclaredSize,
		&row.TotalChunks,
		&row.CurrentVersion,
		&row.MinVersion,
		&row.CreatedAt,
		&row.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	return row.ToDomain(), nil
}

// RecordChunk upserts one received chunk index. The conflict clause makes
// re-uploads of the same index idempotent: the set of indices does not grow,
// the recorded size is replaced. The session's updated_at is bumped so an
// upload with ongoing chunk traffic is never treated as abandoned.
func (s *sqlUploadSessionRepository) RecordChunk(ctx context.Context, id uuid.UUID, chunkIndex int, sizeBytes int64) error {
	query := `
		INSERT INTO upload_chunk (session_id, chunk_index, size_bytes)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id, chunk_index)
		DO UPDATE SET size_bytes = EXCLUDED.size_bytes, received_at = now()`

	if _, err := s.db.ExecContext(ctx, query, id, chunkIndex, sizeBytes); err != nil {
		return err
	}

	touch := `UPDATE upload_session SET updated_at = now() WHERE id = $1`
	if _, err := s.db.ExecContext(ctx, touch, id); err != nil {
		return err
	}
	return nil
}

// CountReceived counts distinct received chunk indices
func (s *sqlUploadSessionRepository) CountReceived(ctx context.Context, id uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM upload_chunk WHERE session_id = $1`

	var count int
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ReceivedIndices returns the received chunk indices in ascending order
func (s *sqlUploadSessionRepository) ReceivedIndices(ctx context.Context, id uuid.UUID) ([]int, error) {
	query := `SELECT chunk_index FROM upload_chunk WHERE session_id = $1 ORDER BY chunk_index`

	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var indices []int
	for rows.Next() {
		var index int
		if err := rows.Scan(&index); err != nil {
			return nil, err
		}
		indices = append(indices, index)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return indices, nil
}

// Delete removes the session; chunk rows go with it via ON DELETE CASCADE.
// A missing session is treated as already clean.
func (s *sqlUploadSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM upload_session WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return nil
}

// FindAllExpired returns sessions with no activity since the cutoff. Expiry
// is keyed on updated_at, which every recorded chunk refreshes.
func (s *sqlUploadSessionRepository) FindAllExpired(ctx context.Context, cutoff time.Time) ([]domain.UploadSession, error) {
	query := `
		SELECT id, file_name, declared_size, total_chunks, current_version, min_version, created_at, updated_at
		FROM upload_session
		WHERE updated_at < $1`

	rows, err := s.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.UploadSession
	for rows.Next() {
		var row dbUploadSession
		if err := rows.Scan(
			&row.ID,
			&row.FileName,
			&row.DeclaredSize,
			&row.TotalChunks,
			&row.CurrentVersion,
			&row.MinVersion,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, *row.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

type dbUploadSession struct {
	ID             uuid.UUID `db:"id"`
	FileName       string    `db:"file_name"`
	DeclaredSize   int64     `db:"declared_size"`
	TotalChunks    int       `db:"total_chunks"`
	CurrentVersion string    `db:"current_version"`
	MinVersion     string    `db:"min_version"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// ToDomain converts db obj to domain
func (s *dbUploadSession) ToDomain() *domain.UploadSession {
	return &domain.UploadSession{
		ID:             s.ID,
		FileName:       s.FileName,
		DeclaredSize:   s.DeclaredSize,
		TotalChunks:    s.TotalChunks,
		CurrentVersion: s.CurrentVersion,
		MinVersion:     s.MinVersion,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
