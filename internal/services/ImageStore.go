package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/atomic"

	"ard/internal/models"
)

// lastObjectMillis is shared by all stores in the process so names stay
// strictly increasing even when two uploads land in the same millisecond.
var lastObjectMillis atomic.Int64

type ImageStore struct {
	container BlobContainer
	now       func() time.Time
}

func NewImageStore(container BlobContainer) ImageStoreInterface {
	return &ImageStore{container: container, now: time.Now}
}

func (is *ImageStore) objectName() string {
	candidate := is.now().UnixMilli()
	for {
		last := lastObjectMillis.Load()
		next := max(candidate, last+1)
		if lastObjectMillis.CompareAndSwap(last, next) {
			return fmt.Sprintf("chart_%d.png", next)
		}
	}
}

func (is *ImageStore) ensureContainer(ctx context.Context) error {
	exists, err := is.container.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return is.container.Create(ctx)
}

// Store uploads the artifact under a fresh name and returns its public URL.
// Blobs from previous runs are never removed.
func (is *ImageStore) Store(ctx context.Context, artifact *models.ChartArtifact) (string, error) {
	if err := is.ensureContainer(ctx); err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrStorageUnavailable, err)
	}

	name := is.objectName()
	if err := is.container.Upload(ctx, name, artifact.Data, models.ContentTypePNG); err != nil {
		return "", fmt.Errorf("%w: %s: %w", models.ErrUpload, name, err)
	}

	return strings.TrimRight(is.container.URL(), "/") + "/" + name, nil
}
