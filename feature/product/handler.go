package product

import (
	"record-merger/core/logger"
	"record-merger/core/reconcile"
	"record-merger/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for product reconciliation.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the product routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/products")
	group.Get("/reconcile", h.HandleGetReconcile)
	group.Post("/reconcile", h.HandlePostReconcile)
	group.Get("/reports", h.HandleListReports)
	group.Get("/check", h.HandleCheck)
}

// ApplyResponse is returned by POST /products/reconcile.
type ApplyResponse struct {
	Report    *Report `json:"report"`
	Executed  int     `json:"executed"`
	ReportKey string  `json:"report_key,omitempty"`
}

func parseOptions(c *fiber.Ctx) (Options, error) {
	mode, err := reconcile.ParseMode(c.Query("mode"))
	if err != nil {
		return Options{}, err
	}
	return Options{
		Mode:     mode,
		DoPurge:  utils.ToBool(c.Query("purge")),
		DoInsert: utils.ToBool(c.Query("insert")),
		DryRun:   utils.ToBool(c.Query("dry_run")),
	}, nil
}

// HandleGetReconcile reports how the feed and the database differ.
// @Summary Reconcile Products (report)
// @Description Match supplier feed products to stored products and report conflicts. Nothing is written.
// @Tags products
// @Produce json
// @Param mode query string false "compare, merge-missing or merge" default(compare)
// @Param purge query bool false "Plan deletion of stored products missing from the feed"
// @Param insert query bool false "Plan insertion of feed products missing from the database"
// @Success 200 {object} product.Report "Reconcile report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/reconcile [get]
func (h *Handler) HandleGetReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	opts, err := parseOptions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := h.service.Reconcile(c.Context(), opts)
	if err != nil {
		l.Error("Product reconcile failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandlePostReconcile reconciles and applies the planned actions.
// @Summary Reconcile Products (apply)
// @Description Reconcile, then write merges, inserts and purges to the database. The request itself is the confirmation.
// @Tags products
// @Produce json
// @Param mode query string false "compare, merge-missing or merge" default(compare)
// @Param purge query bool false "Delete stored products missing from the feed"
// @Param insert query bool false "Insert feed products missing from the database"
// @Param dry_run query bool false "Plan only"
// @Param save query bool false "Store the report in the bucket"
// @Success 200 {object} product.ApplyResponse "Applied report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/reconcile [post]
func (h *Handler) HandlePostReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	opts, err := parseOptions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	opts.Confirmed = true

	report, err := h.service.Reconcile(c.Context(), opts)
	if err != nil {
		l.Error("Product reconcile failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	executed, err := h.service.Apply(c.Context(), report, opts)
	if err != nil {
		l.Error("Applying product actions failed", zap.Error(err), zap.Int("executed", executed))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	resp := ApplyResponse{Report: report, Executed: executed}
	if utils.ToBool(c.Query("save")) {
		key, err := h.service.WriteReport(c.Context(), report)
		if err != nil {
			l.Warn("Saving product report failed", zap.Error(err))
		} else {
			resp.ReportKey = key
		}
	}

	return c.JSON(resp)
}

// HandleListReports lists saved reconcile reports.
// @Summary List Product Reports
// @Description List the keys of reconcile reports saved in the bucket.
// @Tags products
// @Produce json
// @Success 200 {object} map[string][]string "Report keys"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /products/reports [get]
func (h *Handler) HandleListReports(c *fiber.Ctx) error {
	keys, err := h.service.ListReports(c.Context())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Listing product reports failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"reports": keys})
}

// HandleCheck verifies that a reconcile can run.
// @Summary Check Products Setup
// @Description Check the bucket, the feed object and the products table schema. Nothing is created.
// @Tags products
// @Produce json
// @Success 200 {object} product.CheckReport "Healthy"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} product.CheckReport "Problems found"
// @Router /products/check [get]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	report, err := h.service.Check(c.Context(), false, "")
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Product check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Healthy() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
