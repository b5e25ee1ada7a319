package handler

import (
	"context"

	"gatorhire/internal/database"
	"gatorhire/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

func NewHealthHandler(db database.DB, c *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: c}
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	status := healthStatus{Status: "ok", Database: "ok", Cache: "ok"}
	code := fiber.StatusOK

	if err := h.pingDB(c.Context()); err != nil {
		status.Status = "degraded"
		status.Database = "unreachable"
		code = fiber.StatusServiceUnavailable
	}
	if h.cache == nil || h.cache.Ping(c.Context()) != nil {
		// The cache is optional; a miss degrades nothing but is reported.
		status.Cache = "unavailable"
	}

	return c.Status(code).JSON(status)
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	if h.db == nil {
		return context.Canceled
	}
	var one int
	return h.db.QueryRow(ctx, "SELECT 1").Scan(&one)
}
