package product

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"record-merger/core/database"
	"record-merger/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const (
	testBucket = "test-bucket"
	testFeed   = "feeds/products.json"
)

var (
	idChair = uuid.MustParse("6f1c2a8e-0b5d-4e7a-9c33-1d2e3f405061")
	idLamp  = uuid.MustParse("7a2d3b9f-1c6e-4f8b-8d44-2e3f40516172")
	idDesk  = uuid.MustParse("8b3e4ca0-2d7f-4a9c-9e55-3f4051627283")
)

func strPtr(s string) *string { return &s }

// setupTestDB creates an in-memory SQLite DB with the products table.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Product{}))
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

// mockFeed serves products as the feed object on every GetObject call.
func mockFeed(t *testing.T, products []Product) *mocks.Client {
	t.Helper()
	data, err := json.Marshal(products)
	require.NoError(t, err)

	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, testBucket, testFeed, mock.Anything).
		Return(io.NopCloser(bytes.NewReader(data)), nil).Once()
	return client
}

// storedCatalog is the database side used across tests.
func storedCatalog() []*Product {
	return []*Product{
		{ID: idChair, SKU: "CH-1", Name: "Chair", PriceCents: 4900, Stock: 3, Active: true},
		{ID: idLamp, SKU: "LA-1", Name: "Lamp", PriceCents: 1900, Stock: 0, Active: true},
		{ID: idDesk, SKU: "DE-1", Name: "Desk", PriceCents: 19900, Stock: 1},
	}
}
