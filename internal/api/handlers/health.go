package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
var Version = "1.0.0"

const storePingTimeout = 2 * time.Second

// HealthHandler reports process and shift store health
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// storeStatus pings the shift store. ok is false when the ping fails or the
// handler has no store.
func (h *HealthHandler) storeStatus(ctx context.Context) (ok bool, detail string) {
	if h.db == nil {
		return false, "not configured"
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return false, err.Error()
	}
	ctx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func statusCode(ok bool) int {
	if ok {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including shift store connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ok, detail := h.storeStatus(c.Request.Context())

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
		Services:  map[string]string{"database": "healthy"},
	}
	if !ok {
		resp.Status = "unhealthy"
		resp.Services["database"] = "error: " + detail
	}
	c.JSON(statusCode(ok), resp)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the shift store accepts connections
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ok, detail := h.storeStatus(c.Request.Context())
	database := "ready"
	if !ok {
		database = "not ready: " + detail
	}
	c.JSON(statusCode(ok), gin.H{
		"ready":     ok,
		"timestamp": time.Now(),
		"services":  gin.H{"database": database},
	})
}

// Live always answers 200 while the process serves requests
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true, "timestamp": time.Now()})
}
