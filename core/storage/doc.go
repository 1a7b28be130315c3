// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface so feature code can be tested
// against core/storage/mocks. It supports both AWS S3 and self-hosted MinIO instances.
//
// # Operations
//
//   - BucketExists / MakeBucket, combined by EnsureBucket.
//   - GetObject, decoded by GetJSON.
//   - PutObject, encoded by PutJSON.
//   - ListObjects, flattened by ListKeys.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	var feed []Product
//	err = storage.GetJSON(ctx, client, cfg.Storage.Bucket, "feeds/products.json", &feed)
package storage
