package gcs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"civiclens/internal/config"
	"civiclens/pkg/e"
)

// BlobStore uploads local files into a Google Cloud Storage bucket and
// hands back their public URL. The bucket must allow public reads.
type BlobStore struct {
	client *storage.Client
	bucket string
	logger *slog.Logger
}

func NewBlobStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*BlobStore, error) {
	var opts []option.ClientOption
	if cfg.GCS.KeyFile != "" {
		if _, err := os.Stat(cfg.GCS.KeyFile); err == nil {
			opts = append(opts, option.WithCredentialsFile(cfg.GCS.KeyFile))
		}
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		logger.Error("Failed to create GCS client", slog.String("error", err.Error()))
		return nil, e.Wrap("storage.gcs.NewBlobStore", err)
	}
	logger.Info("GCS client created", slog.String("bucket", cfg.GCS.Bucket))

	return &BlobStore{
		client: client,
		bucket: cfg.GCS.Bucket,
		logger: logger,
	}, nil
}

// Put streams the file at localPath into the bucket under objectName and
// returns the durable public URL. The local file is removed before Put
// returns, whether the upload succeeded or not.
func (b *BlobStore) Put(ctx context.Context, localPath, objectName string) (string, error) {
	const op = "gcs.BlobStore.Put"

	defer func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			b.logger.Warn("temp file remove failed",
				slog.String("op", op),
				slog.String("path", localPath),
				slog.Any("error", err),
			)
		}
	}()

	src, err := os.Open(localPath)
	if err != nil {
		b.logger.Error("temp file open failed", slog.String("op", op), slog.Any("error", err))
		return "", fmt.Errorf("%s: %w", op, e.ErrBlobUpload)
	}
	defer src.Close()

	w := b.client.Bucket(b.bucket).Object(objectName).NewWriter(ctx)
	w.CacheControl = "public, max-age=31536000"

	if _, err := io.Copy(w, src); err != nil {
		_ = w.Close()
		b.logger.Error("object write failed",
			slog.String("op", op),
			slog.String("object", objectName),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("%s: %w", op, e.ErrBlobUpload)
	}
	if err := w.Close(); err != nil {
		b.logger.Error("object close failed",
			slog.String("op", op),
			slog.String("object", objectName),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("%s: %w", op, e.ErrBlobUpload)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", b.bucket, objectName)
	b.logger.Info("photo uploaded", slog.String("object", objectName))
	return url, nil
}

func (b *BlobStore) Close() error {
	return b.client.Close()
}
