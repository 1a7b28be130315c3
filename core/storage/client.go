package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client is the subset of object storage used for feeds and reports.
type Client interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	// PutObject uploads a report.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// GetObject opens a feed for reading. Callers close it.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	// ListObjects streams object infos; errors arrive in ObjectInfo.Err.
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
}

const defaultTimeout = 30 * time.Second

// endpoint strips an URL scheme from the configured endpoint. An https scheme
// forces TLS even when UseSSL is off.
func endpoint(cfg Config) (host string, secure bool) {
	switch {
	case strings.HasPrefix(cfg.Endpoint, "https://"):
		return strings.TrimPrefix(cfg.Endpoint, "https://"), true
	case strings.HasPrefix(cfg.Endpoint, "http://"):
		return strings.TrimPrefix(cfg.Endpoint, "http://"), cfg.UseSSL
	}
	return cfg.Endpoint, cfg.UseSSL
}

// timeout returns the configured timeout, defaulting to 30 seconds.
func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// newTransport bounds dialing, the TLS handshake and the wait for response
// headers, so a dead endpoint fails the first request instead of hanging it.
func newTransport(timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: time.Second,
		ResponseHeaderTimeout: timeout,
	}
}

// NewClient creates a minio backed Client. No request is made until first use.
func NewClient(cfg Config) (Client, error) {
	host, secure := endpoint(cfg)
	if host == "" {
		return nil, fmt.Errorf("storage endpoint is empty")
	}

	mc, err := minio.New(host, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    secure,
		Region:    cfg.Region,
		Transport: newTransport(cfg.timeout()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &minioClient{Client: mc}, nil
}

// minioClient narrows GetObject's *minio.Object to io.ReadCloser.
type minioClient struct {
	*minio.Client
}

func (c *minioClient) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.Client.GetObject(ctx, bucketName, objectName, opts)
}
