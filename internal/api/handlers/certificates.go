package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dsyorkd/cert-agent/internal/errors"
	"github.com/dsyorkd/cert-agent/internal/logger"
	"github.com/dsyorkd/cert-agent/internal/models"
	"github.com/dsyorkd/cert-agent/internal/services"
)

// CertificatesHandler exposes the read-only certificate inventory
type CertificatesHandler struct {
	lifecycle *services.Lifecycle
	logger    logger.Interface
}

// NewCertificatesHandler creates a new certificates handler
func NewCertificatesHandler(lifecycle *services.Lifecycle, log logger.Interface) *CertificatesHandler {
	return &CertificatesHandler{
		lifecycle: lifecycle,
		logger:    log,
	}
}

// List returns all certificate records, optionally filtered by status
// via the ?status= query parameter.
func (h *CertificatesHandler) List(c *gin.Context) {
	status := models.CertificateStatus(c.Query("status"))
	if status != "" && !models.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid Request",
			"message": "unknown status '" + string(status) + "'",
		})
		return
	}

	records, err := h.lifecycle.List(c.Request.Context(), status)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list certificates")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "failed to list certificates",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"certificates": records,
		"count":        len(records),
	})
}

// Get returns a single certificate record by id
func (h *CertificatesHandler) Get(c *gin.Context) {
	record, err := h.lifecycle.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Not Found",
				"message": "certificate not found",
			})
			return
		}
		h.logger.WithError(err).Error("Failed to get certificate")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "failed to get certificate",
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Expiring returns active certificates expiring within ?days= days
// (default 30).
func (h *CertificatesHandler) Expiring(c *gin.Context) {
	days := 30
	if v := c.Query("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid Request",
				"message": "days must be a positive integer",
			})
			return
		}
		days = n
	}

	records, err := h.lifecycle.ExpiringWithin(c.Request.Context(), days)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list expiring certificates")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "failed to list expiring certificates",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"certificates": records,
		"count":        len(records),
		"within_days":  days,
	})
}
