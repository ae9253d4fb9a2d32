package upload

import (
	"context"
	"math"

	"github.com/google/uuid"
)

// Status reports the session's chunk progress. The percentage is rounded to
// two decimal places.
func (s *uploadService) Status(ctx context.Context, sessionID uuid.UUID) (int, int, float64, error) {

	session, err := s.uow.UploadSessionRepo().FindByID(ctx, sessionID)
	if err != nil {
		return 0, 0, 0, err
	}

	received, err := s.uow.UploadSessionRepo().CountReceived(ctx, sessionID)
	if err != nil {
		return 0, 0, 0, err
	}

	progress := math.Round(float64(received)/float64(session.TotalChunks)*10000) / 100

	return received, session.TotalChunks, progress, nil
}
