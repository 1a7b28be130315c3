package product

import (
	"record-merger/core/reconcile"
	"record-merger/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Product feature.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cfg reconcile.Config) (*Feature, error) {
	svc, err := NewService(client, bucket, logger, db, cfg)
	if err != nil {
		return nil, err
	}
	return &Feature{service: svc, handler: NewHandler(svc, logger)}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "products"
}

// IsEnabled reports whether the feature has a database to reconcile against.
func (f *Feature) IsEnabled() bool {
	return f.service.repo.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the feature's service for the CLI.
func (f *Feature) Service() *Service {
	return f.service
}
