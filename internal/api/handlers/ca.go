package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dsyorkd/cert-agent/internal/ca"
)

// CAHandler exposes the public half of the CA
type CAHandler struct {
	keystore *ca.Keystore
}

// NewCAHandler creates a new CA handler
func NewCAHandler(keystore *ca.Keystore) *CAHandler {
	return &CAHandler{keystore: keystore}
}

// CAInfoResponse describes the CA certificate
type CAInfoResponse struct {
	Subject        string    `json:"subject"`
	NotBefore      time.Time `json:"not_before"`
	NotAfter       time.Time `json:"not_after"`
	SerialNumber   string    `json:"serial_number"`
	CertificatePEM string    `json:"certificate_pem"`
}

// Info returns the CA certificate and its validity window. The private
// key is never exposed here.
func (h *CAHandler) Info(c *gin.Context) {
	cert := h.keystore.Certificate()

	c.JSON(http.StatusOK, CAInfoResponse{
		Subject:        cert.Subject.String(),
		NotBefore:      cert.NotBefore,
		NotAfter:       cert.NotAfter,
		SerialNumber:   cert.SerialNumber.String(),
		CertificatePEM: string(h.keystore.CertificatePEM()),
	})
}
