package filesource

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"schoolnote/config"
	domainerrors "schoolnote/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func createTestSource(t *testing.T, maxFileSize string) *blobSource {
	t.Helper()

	cfg := &config.Config{Translation: &config.TranslationConfig{MaxFileSize: maxFileSize}}
	src, ok := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*blobSource)
	require.True(t, ok)

	return src
}

func TestBlobSource_OpenLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "letter.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7 hello"), 0o600))
	src := createTestSource(t, "1KB")

	for _, location := range []string{path, "file://" + path} {
		file, err := src.Open(context.Background(), location)

		require.NoError(t, err)
		assert.Equal(t, "letter.pdf", file.Name)
		assert.Equal(t, "application/pdf", file.ContentType)
		assert.Equal(t, []byte("%PDF-1.7 hello"), file.Content)
	}
}

func TestBlobSource_Errors(t *testing.T) {
	dir := t.TempDir()
	big := filepath.Join(dir, "big.png")
	require.NoError(t, os.WriteFile(big, make([]byte, 2048), 0o600))
	src := createTestSource(t, "1KB")

	tests := []struct {
		name     string
		location string
		want     error
	}{
		{name: "too large", location: big, want: domainerrors.ErrFileTooLarge},
		{name: "missing", location: filepath.Join(dir, "missing.pdf"), want: domainerrors.ErrNotFound},
		{name: "empty", location: "", want: domainerrors.ErrValidationFailed},
		{name: "bucket without key", location: "mem://", want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := src.Open(context.Background(), tt.location)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBlobSource_OpenBucket(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	require.NoError(t, bucket.WriteAll(ctx, "notices/trip.jpg", []byte{0xff, 0xd8, 0xff}, nil))

	var openedURL string
	src := createTestSource(t, "1KB")
	src.openBucket = func(_ context.Context, bucketURL string) (*blob.Bucket, error) {
		openedURL = bucketURL

		return bucket, nil
	}

	file, err := src.Open(ctx, "s3://school-notices/notices/trip.jpg?region=ap-northeast-2")

	require.NoError(t, err)
	assert.Equal(t, "s3://school-notices?region=ap-northeast-2", openedURL)
	assert.Equal(t, "trip.jpg", file.Name)
	assert.Equal(t, "image/jpeg", file.ContentType)
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, file.Content)
}
