package minio

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"chunkstream/internal/config"
	"chunkstream/internal/core/domain"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter implements port.ObjectStorage over the minio multipart Core API
type Adapter struct {
	client *minio.Client
	core   *minio.Core
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	core := minio.Core{Client: client}
	return &Adapter{client: client, config: cfg, core: &core, logger: logger}, nil
}

// CreateMultipartSession opens a multipart upload for the object key
func (a *Adapter) CreateMultipartSession(ctx context.Context, objectKey string, contentType string) (string, error) {
	opts := minio.PutObjectOptions{
		ContentType: contentType,
	}
	sessionID, err := a.core.NewMultipartUpload(ctx, a.config.BucketName, objectKey, opts)
	if err != nil {
		return "", fmt.Errorf("failed to init multipart upload: %w", err)
	}
	return sessionID, nil
}

// PresignPartUpload generates a time-limited upload URL for one part
func (a *Adapter) PresignPartUpload(ctx context.Context, sessionID string, objectKey string, partNumber int) (string, *time.Time, error) {
	reqParams := make(url.Values)
	reqParams.Set("partNumber", fmt.Sprintf("%d", partNumber))
	reqParams.Set("uploadId", sessionID)

	presignedURL, err := a.core.PresignHeader(ctx, http.MethodPut, a.config.BucketName, objectKey, a.config.PartPresignedDuration, reqParams, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate presigned URL for part: %w", err)
	}

	expiresAt := time.Now().Add(a.config.PartPresignedDuration)
	return presignedURL.String(), &expiresAt, nil
}

// UploadPart uploads one part's bytes and returns the store's ETag
func (a *Adapter) UploadPart(ctx context.Context, sessionID string, objectKey string, partNumber int, data []byte) (string, error) {
	part, err := a.core.PutObjectPart(
		ctx,
		a.config.BucketName,
		objectKey,
		sessionID,
		partNumber,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectPartOptions{},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload part %d: %w", partNumber, err)
	}
	return part.ETag, nil
}

// ListCommittedParts lists every part the store has committed for the
// session, draining pagination
func (a *Adapter) ListCommittedParts(ctx context.Context, sessionID string, objectKey string) ([]domain.UploadPart, error) {
	var parts []domain.UploadPart

	marker := 0
	for {
		result, err := a.core.ListObjectParts(ctx, a.config.BucketName, objectKey, sessionID, marker, 1000)
		if err != nil {
			if minio.ToErrorResponse(err).Code == "NoSuchUpload" {
				return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
			}
			return nil, fmt.Errorf("failed to list parts: %w", err)
		}

		for _, part := range result.ObjectParts {
			parts = append(parts, domain.UploadPart{
				PartNumber: part.PartNumber,
				ETag:       part.ETag,
				SizeBytes:  part.Size,
			})
		}

		if !result.IsTruncated || result.NextPartNumberMarker == 0 {
			break
		}
		marker = result.NextPartNumberMarker
	}

	return parts, nil
}

// CompleteMultipartUpload assembles the committed parts into the final object
func (a *Adapter) CompleteMultipartUpload(ctx context.Context, sessionID string, objectKey string, parts []domain.UploadPart) (string, error) {
	completeParts := make([]minio.CompletePart, 0, len(parts))
	for _, part := range parts {
		completeParts = append(completeParts, minio.CompletePart{
			PartNumber: part.PartNumber,
			ETag:       part.ETag,
		})
	}

	info, err := a.core.CompleteMultipartUpload(ctx, a.config.BucketName, objectKey, sessionID, completeParts, minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to complete multipart upload: %w", err)
	}

	return info.ETag, nil
}

// AbortMultipartUpload releases the session's partial storage. An unknown
// or already-gone session is treated as success so abort stays idempotent.
func (a *Adapter) AbortMultipartUpload(ctx context.Context, sessionID string, objectKey string) error {
	err := a.core.AbortMultipartUpload(ctx, a.config.BucketName, objectKey, sessionID)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchUpload" {
			return nil
		}
		return fmt.Errorf("failed to abort multipart upload: %w", err)
	}

	a.logger.Info("multipart upload aborted",
		slog.String("objectKey", objectKey),
		slog.String("sessionID", sessionID))

	return nil
}

// StatObject retrieves the finalized object's size and integrity tag
func (a *Adapter) StatObject(ctx context.Context, objectKey string) (*domain.ObjectStat, error) {
	info, err := a.client.StatObject(ctx, a.config.BucketName, objectKey, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object info: %w", err)
	}
	return &domain.ObjectStat{SizeBytes: info.Size, ETag: info.ETag}, nil
}

// PresignDownload generates a presigned URL for downloading a finalized object
func (a *Adapter) PresignDownload(ctx context.Context, objectKey string) (string, *time.Time, error) {
	presignedURL, err := a.client.PresignedGetObject(ctx, a.config.BucketName, objectKey, a.config.DownloadSignedURLDuration, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate presigned download URL: %w", err)
	}

	expiresAt := time.Now().Add(a.config.DownloadSignedURLDuration)
	return presignedURL.String(), &expiresAt, nil
}
