package product

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"record-merger/core/reconcile"
	"record-merger/core/storage"
)

// Service reconciles the supplier feed against the products table.
type Service struct {
	engine *reconcile.Engine[Product]
	feed   *FeedLoader
	repo   *Repository
	client storage.Client
	bucket string
	cfg    reconcile.Config
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires the engine, feed loader and repository.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cfg reconcile.Config) (*Service, error) {
	engine, err := NewEngine(cfg.Workers, logger)
	if err != nil {
		return nil, err
	}
	return &Service{
		engine: engine,
		feed:   NewFeedLoader(client, bucket, cfg.FeedObject, cfg.CacheTTL()),
		repo:   NewRepository(db),
		client: client,
		bucket: bucket,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}, nil
}

// Reconcile loads both sides, runs the engine in opts.Mode and plans actions.
// Nothing is written; merges only touch the in-memory copies referenced by the
// returned plan.
func (s *Service) Reconcile(ctx context.Context, opts Options) (*Report, error) {
	if opts.Mode == "" {
		opts.Mode = reconcile.ModeCompare
	}

	feed, err := s.feed.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}

	if err := s.repo.VerifySchema(ctx); err != nil {
		return nil, err
	}
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var before map[*Product]Product
	if opts.Mode.Merges() {
		before = make(map[*Product]Product, len(stored))
		for _, p := range stored {
			before[p] = *p
		}
	}

	results, err := s.engine.Run(opts.Mode, feed, stored)
	if err != nil {
		return nil, err
	}

	changed := func(p *Product) bool {
		prev, ok := before[p]
		if !ok {
			return false
		}
		return !cmp.Equal(prev, *p)
	}

	report := &Report{
		Mode:        opts.Mode,
		FeedObject:  s.feed.Object(),
		GeneratedAt: s.now(),
		Fields:      s.engine.Fields(),
		Plan:        BuildPlan(results, changed, opts),
	}

	sum := report.Plan.Summary
	s.logger.Info("Products reconciled",
		zap.String("mode", string(opts.Mode)),
		zap.Int("feed", len(feed)),
		zap.Int("stored", len(stored)),
		zap.Int("matched", sum.Matched),
		zap.Int("conflicts", sum.Conflicts),
		zap.Int("actions", len(report.Plan.Actions)),
	)
	return report, nil
}

// Apply executes the plan of a report.
func (s *Service) Apply(ctx context.Context, report *Report, opts Options) (int, error) {
	executed, err := ApplyPlan(ctx, s.repo, report.Plan, opts)
	if err != nil {
		return executed, err
	}
	if executed > 0 {
		s.logger.Info("Product actions applied", zap.Int("count", executed))
	}
	return executed, nil
}

// WriteReport stores the report as JSON in the bucket and returns its key.
func (s *Service) WriteReport(ctx context.Context, report *Report) (string, error) {
	key := report.ObjectName(s.cfg.ReportPrefix)
	if _, err := storage.PutJSON(ctx, s.client, s.bucket, key, report); err != nil {
		return "", err
	}
	return key, nil
}

// InvalidateFeed drops the cached feed.
func (s *Service) InvalidateFeed() {
	s.feed.Invalidate()
}
