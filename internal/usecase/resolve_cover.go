package usecase

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/folio/internal/adapter/github"
	"github.com/yourusername/folio/internal/domain"
)

// CoverResolver finds a repository's cover image. It never fails; lookup
// problems resolve to an absent cover.
type CoverResolver interface {
	Resolve(ctx context.Context, req ResolveCoverRequest) domain.CoverImage
}

// ResolveCoverUseCase looks up the cover image in a repository's cover directory.
type ResolveCoverUseCase struct {
	source    GitHubSource
	coverPath string
	log       logrus.FieldLogger
}

// NewResolveCoverUseCase creates a new ResolveCoverUseCase. An empty
// coverPath uses domain.DefaultCoverPath.
func NewResolveCoverUseCase(source GitHubSource, coverPath string, log logrus.FieldLogger) *ResolveCoverUseCase {
	if coverPath == "" {
		coverPath = domain.DefaultCoverPath
	}
	return &ResolveCoverUseCase{
		source:    source,
		coverPath: coverPath,
		log:       log,
	}
}

// ResolveCoverRequest names the repository to look in.
type ResolveCoverRequest struct {
	Account    string
	Repository string
}

// Resolve returns the download URL of the first image file in the cover
// directory, or an absent cover.
func (uc *ResolveCoverUseCase) Resolve(ctx context.Context, req ResolveCoverRequest) domain.CoverImage {
	log := uc.log.WithFields(logrus.Fields{
		"account":    req.Account,
		"repository": req.Repository,
	})

	if req.Repository == "" {
		return domain.NoCover()
	}

	contents, err := uc.source.GetContents(ctx, req.Account, req.Repository, uc.coverPath)
	if err != nil {
		// A missing cover directory is the common case, not worth a warning.
		if domain.StatusCodeOf(err) == http.StatusNotFound {
			log.Debug("no cover directory")
		} else {
			log.WithError(err).Warn("cover image lookup failed")
		}
		return domain.NoCover()
	}

	// A single file at the cover path is not treated as a cover.
	if !contents.IsDirectory {
		log.Debug("cover path is not a directory")
		return domain.NoCover()
	}

	for _, entry := range contents.Entries {
		if entry.Type != github.ContentTypeFile || !domain.IsCoverImageName(entry.Name) {
			continue
		}
		cover := domain.CoverAt(entry.DownloadURL)
		if !cover.Found() {
			log.WithField("file", entry.Name).Warn("cover image has no usable download URL")
		}
		return cover
	}

	return domain.NoCover()
}
