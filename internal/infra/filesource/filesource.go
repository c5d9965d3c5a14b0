// Package filesource reads documents from local paths or cloud buckets.
package filesource

import (
	"context"
	"log/slog"
	"mime"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"schoolnote/config"
	domainerrors "schoolnote/internal/domain/errors"
	"schoolnote/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

type bucketOpener func(ctx context.Context, bucketURL string) (*blob.Bucket, error)

// blobSource implements service.FileSource over gocloud buckets.
// Locations are local paths, file:// URLs or bucket URLs such as
// s3://bucket/notes/letter.pdf?region=ap-northeast-2 and gs://bucket/letter.pdf.
type blobSource struct {
	openBucket bucketOpener
	maxBytes   int64
	logger     *slog.Logger
}

// New is the constructor for blobSource.
func New(cfg *config.Config, logger *slog.Logger) service.FileSource {
	return &blobSource{
		openBucket: blob.OpenBucket,
		maxBytes:   cfg.Translation.MaxFileBytes(),
		logger:     logger,
	}
}

// Open reads the whole document, refusing files above the upload limit.
func (s *blobSource) Open(ctx context.Context, location string) (*service.SourceFile, error) {
	bucket, key, err := s.resolve(ctx, location)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := bucket.Close(); cerr != nil {
			s.logger.Warn("Failed to close bucket", slog.String("location", location), slog.Any("error", cerr))
		}
	}()

	attrs, err := bucket.Attributes(ctx, key)
	if err != nil {
		return nil, mapBlobError(err, location)
	}
	if s.maxBytes > 0 && attrs.Size > s.maxBytes {
		return nil, errors.WithStack(domainerrors.ErrFileTooLarge.WithDetails(location))
	}

	content, err := bucket.ReadAll(ctx, key)
	if err != nil {
		return nil, mapBlobError(err, location)
	}

	name := path.Base(key)
	contentType := mime.TypeByExtension(strings.ToLower(path.Ext(name)))
	if contentType == "" {
		contentType = attrs.ContentType
	}

	return &service.SourceFile{
		Name:        name,
		ContentType: contentType,
		Content:     content,
	}, nil
}

// resolve splits a location into a bucket and an object key.
func (s *blobSource) resolve(ctx context.Context, location string) (*blob.Bucket, string, error) {
	if location == "" {
		return nil, "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("file location is empty"))
	}

	if !strings.Contains(location, "://") || strings.HasPrefix(location, "file://") {
		local := strings.TrimPrefix(location, "file://")
		abs, err := filepath.Abs(local)
		if err != nil {
			return nil, "", errors.Wrapf(err, "failed to resolve %s", location)
		}
		bucket, err := fileblob.OpenBucket(filepath.Dir(abs), nil)
		if err != nil {
			return nil, "", mapBlobError(err, location)
		}

		return bucket, filepath.Base(abs), nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return nil, "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return nil, "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("no object key in " + location))
	}
	u.Path = ""

	bucket, err := s.openBucket(ctx, u.String())
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to open bucket for %s", location)
	}

	return bucket, key, nil
}

func mapBlobError(err error, location string) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return errors.WithStack(domainerrors.ErrNotFound.WithDetails(location))
	}

	return errors.Wrapf(err, "failed to read %s", location)
}
