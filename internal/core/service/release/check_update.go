package release

import (
	"context"
	"fmt"
	"update-depot/internal/core/domain"
)

// CheckUpdate decides whether a client on clientVersion must or may update.
// needsUpdate means the client fell below the minimum supported version;
// hasUpdate means a newer version exists. The download URL is only handed
// out when there is something newer to download.
func (s *releaseService) CheckUpdate(ctx context.Context, clientVersion string) (*domain.UpdateDecision, error) {

	if clientVersion == "" {
		return nil, fmt.Errorf("%w: version is required", domain.ErrMissingField)
	}
	if !domain.ValidVersion(clientVersion) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidVersion, clientVersion)
	}

	record, err := s.uow.ArtifactRepo().Current(ctx)
	if err != nil {
		return nil, err
	}

	decision := &domain.UpdateDecision{
		NeedsUpdate:    domain.CompareVersions(clientVersion, record.MinVersion) < 0,
		HasUpdate:      domain.CompareVersions(clientVersion, record.CurrentVersion) < 0,
		CurrentVersion: record.CurrentVersion,
		MinVersion:     record.MinVersion,
	}
	if decision.HasUpdate {
		decision.DownloadURL = s.downloadURL(record)
	}

	return decision, nil
}
