package product

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"record-merger/core/storage"
)

// CheckReport describes whether the bucket, feed and table are ready for a reconcile.
type CheckReport struct {
	Bucket        string   `json:"bucket" yaml:"bucket"`
	BucketCreated bool     `json:"bucket_created" yaml:"bucket_created"`
	FeedProducts  int      `json:"feed_products" yaml:"feed_products"`
	Problems      []string `json:"problems" yaml:"problems"`
}

// Healthy reports whether no problems were found.
func (r *CheckReport) Healthy() bool {
	return len(r.Problems) == 0
}

// Check verifies the bucket, the feed object and the products table. With fix
// a missing bucket is created. Problems are collected; only an unusable
// storage client returns an error.
func (s *Service) Check(ctx context.Context, fix bool, region string) (*CheckReport, error) {
	report := &CheckReport{Bucket: s.bucket, Problems: []string{}}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if !fix {
			report.Problems = append(report.Problems, fmt.Sprintf("bucket %s does not exist", s.bucket))
			return report, nil
		}
		if err := storage.EnsureBucket(ctx, s.client, s.bucket, region); err != nil {
			return nil, err
		}
		report.BucketCreated = true
		s.logger.Info("Created bucket", zap.String("bucket", s.bucket))
	}

	s.feed.Invalidate()
	feed, err := s.feed.Load(ctx)
	if err != nil {
		report.Problems = append(report.Problems, fmt.Sprintf("feed %s: %v", s.feed.Object(), err))
	} else {
		report.FeedProducts = len(feed)
	}

	if err := s.repo.VerifySchema(ctx); err != nil {
		if errors.Is(err, ErrNoDatabase) {
			report.Problems = append(report.Problems, "no database configured")
		} else {
			report.Problems = append(report.Problems, err.Error())
		}
	}

	return report, nil
}

// ListReports returns the keys of saved reports in key order.
func (s *Service) ListReports(ctx context.Context) ([]string, error) {
	keys, err := storage.ListKeys(ctx, s.client, s.bucket, s.cfg.ReportPrefix, ".json")
	if err != nil {
		return nil, err
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}
