package product

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"record-merger/core/storage/mocks"
)

func objectsChan(objects ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, o := range objects {
		ch <- o
	}
	close(ch)
	return ch
}

// TestService_CheckHealthy tests a ready bucket, feed and table.
func TestService_CheckHealthy(t *testing.T) {
	client := mockFeed(t, feedCatalog())
	client.On("BucketExists", mock.Anything, testBucket).Return(true, nil).Once()
	svc, _ := setupService(t, client)

	report, err := svc.Check(context.Background(), false, "")
	require.NoError(t, err)
	assert.True(t, report.Healthy())
	assert.False(t, report.BucketCreated)
	assert.Equal(t, 3, report.FeedProducts)
	client.AssertExpectations(t)
}

// TestService_CheckMissingBucket tests that a missing bucket is reported, or created with fix.
func TestService_CheckMissingBucket(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, testBucket).Return(false, nil).Once()
	svc, _ := setupService(t, client)

	report, err := svc.Check(context.Background(), false, "")
	require.NoError(t, err)
	assert.False(t, report.Healthy())
	assert.Contains(t, report.Problems[0], "does not exist")
	client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)

	client = mockFeed(t, feedCatalog())
	client.On("BucketExists", mock.Anything, testBucket).Return(false, nil).Times(2)
	client.On("MakeBucket", mock.Anything, testBucket, minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil).Once()
	svc, _ = setupService(t, client)

	report, err = svc.Check(context.Background(), true, "eu-west-1")
	require.NoError(t, err)
	assert.True(t, report.BucketCreated)
	assert.True(t, report.Healthy())
	client.AssertExpectations(t)
}

// TestService_CheckProblems tests that feed and schema problems are collected.
func TestService_CheckProblems(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, testBucket).Return(true, nil)
	client.On("GetObject", mock.Anything, testBucket, testFeed, mock.Anything).Return(nil, errors.New("no such key"))

	svc, err := NewService(client, testBucket, zap.NewNop(), nil, testConfig())
	require.NoError(t, err)

	report, err := svc.Check(context.Background(), false, "")
	require.NoError(t, err)
	require.Len(t, report.Problems, 2)
	assert.Contains(t, report.Problems[0], "no such key")
	assert.Equal(t, "no database configured", report.Problems[1])
}

// TestService_CheckStorageDown tests that an unreachable storage is an error.
func TestService_CheckStorageDown(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, testBucket).Return(false, errors.New("dial tcp: refused"))
	svc, _ := setupService(t, client)

	_, err := svc.Check(context.Background(), false, "")
	require.Error(t, err)
}

// TestService_ListReports tests that only JSON reports under the prefix are listed.
func TestService_ListReports(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, testBucket, minio.ListObjectsOptions{Prefix: "reports/", Recursive: true}).
		Return(objectsChan(
			minio.ObjectInfo{Key: "reports/products-compare-20260301T120000Z.json"},
			minio.ObjectInfo{Key: "reports/notes.txt"},
			minio.ObjectInfo{Key: "reports/products-merge-20260302T120000Z.json"},
		)).Once()
	svc, _ := setupService(t, client)

	keys, err := svc.ListReports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"reports/products-compare-20260301T120000Z.json",
		"reports/products-merge-20260302T120000Z.json",
	}, keys)
}

// TestHandler_Reports tests the reports endpoint, including an empty bucket.
func TestHandler_Reports(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, testBucket, mock.Anything).Return(objectsChan()).Once()
	app, _ := setupApp(t, client)

	resp, err := app.Test(httptest.NewRequest("GET", "/products/reports", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body["reports"])
	assert.Empty(t, body["reports"])
}

// TestHandler_Check tests that problems turn into 503.
func TestHandler_Check(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, testBucket).Return(false, nil)
	app, _ := setupApp(t, client)

	resp, err := app.Test(httptest.NewRequest("GET", "/products/check", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)

	var report CheckReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, testBucket, report.Bucket)
	assert.Len(t, report.Problems, 1)
}
