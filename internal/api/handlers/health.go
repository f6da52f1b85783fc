package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dsyorkd/cert-agent/internal/ca"
	"github.com/dsyorkd/cert-agent/internal/store"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store    store.Interface
	keystore *ca.Keystore
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(st store.Interface, keystore *ca.Keystore) *HealthHandler {
	return &HealthHandler{
		store:    st,
		keystore: keystore,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    string    `json:"uptime,omitempty"`
}

// ReadinessResponse represents the readiness check response
type ReadinessResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

var startTime = time.Now()

// Health returns the basic health status
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Uptime:    time.Since(startTime).String(),
	}

	c.JSON(http.StatusOK, response)
}

// Ready returns the readiness status including service dependencies
func (h *HealthHandler) Ready(c *gin.Context) {
	services := make(map[string]string)
	status := "ready"
	statusCode := http.StatusOK

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		services["redis"] = "unhealthy: " + err.Error()
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	} else {
		services["redis"] = "healthy"
	}

	if h.keystore.Certificate().NotAfter.Before(time.Now()) {
		services["ca"] = "unhealthy: certificate expired"
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	} else {
		services["ca"] = "healthy"
	}

	response := ReadinessResponse{
		Status:    status,
		Timestamp: time.Now(),
		Services:  services,
	}

	c.JSON(statusCode, response)
}
