package product

import (
	"context"
	"slices"
	"time"

	"record-merger/core/cache"
	"record-merger/core/storage"
)

// FeedLoader reads the supplier feed, a JSON array of products, from object
// storage.
type FeedLoader struct {
	client storage.Client
	bucket string
	object string
	cache  *cache.Cache[[]Product]
}

// NewFeedLoader creates a loader that keeps a downloaded feed for cacheTTL.
func NewFeedLoader(client storage.Client, bucket, object string, cacheTTL time.Duration) *FeedLoader {
	return &FeedLoader{
		client: client,
		bucket: bucket,
		object: object,
		cache:  cache.New[[]Product](cacheTTL),
	}
}

// Object returns the feed object name.
func (f *FeedLoader) Object() string {
	return f.object
}

// Load returns fresh copies of the feed products; callers may modify them freely.
func (f *FeedLoader) Load(ctx context.Context) ([]*Product, error) {
	feed, err := f.cache.GetOrLoad(ctx, f.object, func(ctx context.Context) ([]Product, error) {
		var products []Product
		if err := storage.GetJSON(ctx, f.client, f.bucket, f.object, &products); err != nil {
			return nil, err
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*Product, len(feed))
	for i := range feed {
		p := feed[i]
		if p.Description != nil {
			d := *p.Description
			p.Description = &d
		}
		p.Tags = slices.Clone(p.Tags)
		out[i] = &p
	}
	return out, nil
}

// Invalidate forces the next Load to download the feed again.
func (f *FeedLoader) Invalidate() {
	f.cache.Invalidate(f.object)
}
