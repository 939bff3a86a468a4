package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"

	"secsys-worker-go/internal/helpers"
	"secsys-worker-go/internal/models"
)

// MinioStore uploads snapshots to an S3-compatible object store
type MinioStore struct {
	client  *minio.Client
	bucket  string
	quality int
}

func NewMinioStore(endpoint, accessKey, secretKey, bucket string, quality int) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	log.Info().Str("endpoint", endpoint).Str("bucket", bucket).Msg("MinIO snapshot store initialized")

	return &MinioStore{
		client:  client,
		bucket:  bucket,
		quality: quality,
	}, nil
}

func (m *MinioStore) Save(frame *models.RawFrame, path string) error {
	jpeg, err := helpers.ConvertFrameToJPEG(frame.Data, frame.Width, frame.Height, m.quality)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = m.client.PutObject(
		ctx,
		m.bucket,
		path,
		bytes.NewReader(jpeg),
		int64(len(jpeg)),
		minio.PutObjectOptions{ContentType: "image/jpeg"},
	)
	if err != nil {
		return fmt.Errorf("failed to upload snapshot %s: %w", path, err)
	}

	return nil
}
