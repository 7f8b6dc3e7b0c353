// Package media stores report photos in object storage and hands back a
// stable public URL. The core treats that URL as an opaque string and
// never inspects photo content.
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/vietts/insicuri/internal/config"
	"github.com/vietts/insicuri/pkg/e"
)

var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/heic": ".heic",
}

type Storage struct {
	client  *minio.Client
	bucket  string
	baseURL string
	logger  *slog.Logger
}

func NewStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		return nil, e.Wrap("storage.media.NewStorage", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Minio.Bucket)
	if err != nil {
		return nil, e.Wrap("storage.media.BucketExists", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Minio.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, e.Wrap("storage.media.MakeBucket", err)
		}
		logger.Info("Created media bucket", slog.String("bucket", cfg.Minio.Bucket))
	}

	return &Storage{
		client:  client,
		bucket:  cfg.Minio.Bucket,
		baseURL: strings.TrimRight(cfg.Minio.PublicURL, "/"),
		logger:  logger,
	}, nil
}

func (s *Storage) UploadReportPhoto(ctx context.Context, r io.Reader, size int64, contentType string) (string, error) {
	const op = "media.UploadReportPhoto"

	ext, ok := extByContentType[contentType]
	if !ok {
		return "", fmt.Errorf("%s: unsupported content type %q: %w", op, contentType, e.ErrInvalidInput)
	}

	name := fmt.Sprintf("reports/%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	_, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "max-age=3600",
	})
	if err != nil {
		s.logger.Error("photo upload failed", slog.String("op", op), slog.Any("error", err))
		return "", e.Wrap(op, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, name), nil
}
