package content

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// BucketSource reads letter bodies from an object storage bucket, keyed
// "letters/{id}.md". Used by deployments that publish the catalog and letter
// texts to a bucket instead of baking them into the image.
type BucketSource struct {
	client *minio.Client
	bucket string
}

type BucketConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func NewBucketSource(cfg BucketConfig) (*BucketSource, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}
	return &BucketSource{client: client, bucket: cfg.Bucket}, nil
}

func (s *BucketSource) Fetch(ctx context.Context, letterID string) (string, error) {
	object, err := s.client.GetObject(ctx, s.bucket, "letters/"+letterID+".md", minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("get letter object %s: %w", letterID, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read letter object %s: %w", letterID, err)
	}
	return Dedent(string(data)), nil
}
