package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEndpoint tests scheme stripping and TLS selection.
func TestEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		wantHost   string
		wantSecure bool
	}{
		{"Plain", Config{Endpoint: "localhost:9000"}, "localhost:9000", false},
		{"PlainSSL", Config{Endpoint: "minio.internal:9000", UseSSL: true}, "minio.internal:9000", true},
		{"HTTP", Config{Endpoint: "http://localhost:9000"}, "localhost:9000", false},
		{"HTTPS", Config{Endpoint: "https://s3.amazonaws.com"}, "s3.amazonaws.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, secure := endpoint(tt.cfg)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantSecure, secure)
		})
	}
}

// TestConfig_Timeout tests the default client timeout.
func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, Config{}.timeout())
	assert.Equal(t, 5*time.Second, Config{TimeoutSeconds: 5}.timeout())

	tr := newTransport(5 * time.Second)
	assert.Equal(t, 5*time.Second, tr.ResponseHeaderTimeout)
	assert.Equal(t, 5*time.Second, tr.TLSHandshakeTimeout)
}

// TestNewClient tests that clients are created lazily, without a reachable server.
func TestNewClient(t *testing.T) {
	client, err := NewClient(Config{
		Endpoint:  "https://s3.amazonaws.com",
		AccessKey: "testkey",
		SecretKey: "testsecret",
		Region:    "us-east-1",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)

	_, err = NewClient(Config{})
	assert.Error(t, err)
}
