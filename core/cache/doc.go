// Package cache provides a small TTL cache with stampede protection.
//
// Concurrent misses for the same key share a single load through singleflight, so an
// expensive source (an object download, a table scan) is hit once per expiry no
// matter how many requests arrive at the same time.
package cache
