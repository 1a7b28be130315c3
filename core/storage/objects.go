package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
)

// EnsureBucket creates the bucket when it does not exist yet.
func EnsureBucket(ctx context.Context, client Client, bucket, region string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

// GetJSON downloads an object and decodes it into v.
func GetJSON(ctx context.Context, client Client, bucket, object string, v any) error {
	obj, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to get object %s: %w", object, err)
	}
	defer obj.Close()

	if err := json.NewDecoder(obj).Decode(v); err != nil {
		return fmt.Errorf("failed to decode object %s: %w", object, err)
	}
	return nil
}

// PutJSON encodes v as indented JSON and uploads it.
func PutJSON(ctx context.Context, client Client, bucket, object string, v any) (minio.UploadInfo, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to encode object %s: %w", object, err)
	}

	info, err := client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to put object %s: %w", object, err)
	}
	return info, nil
}

// ListKeys lists object names under prefix, recursively, filtered by extension
// when one is given.
func ListKeys(ctx context.Context, client Client, bucket, prefix, extension string) ([]string, error) {
	var keys []string
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects under %s: %w", prefix, obj.Err)
		}
		if extension != "" && !strings.HasSuffix(obj.Key, extension) {
			continue
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}
