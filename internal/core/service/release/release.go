package release

import (
	"net/url"
	"update-depot/internal/core/domain"
	"update-depot/internal/core/port"
)

// DownloadRoute is the path under which the current artifact is served.
const DownloadRoute = "/api/v1/update/download/"

type releaseService struct {
	uow           port.UnitOfWork
	storage       port.FileStorage
	publicBaseURL string
}

// NewReleaseService creates a new release service. publicBaseURL may be
// empty, in which case download URLs are relative.
func NewReleaseService(uow port.UnitOfWork, storage port.FileStorage, publicBaseURL string) port.ReleaseService {
	return &releaseService{
		uow:           uow,
		storage:       storage,
		publicBaseURL: publicBaseURL,
	}
}

func (s *releaseService) downloadURL(record *domain.ArtifactRecord) string {
	return s.publicBaseURL + DownloadRoute + url.PathEscape(record.StoredFilename)
}
