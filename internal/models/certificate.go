package models

import (
	"time"
)

// CertificateStatus defines the current status of a certificate
type CertificateStatus string

const (
	CertificateStatusActive  CertificateStatus = "active"  // Certificate is valid and active
	CertificateStatusExpired CertificateStatus = "expired" // Certificate has expired
	CertificateStatusRevoked CertificateStatus = "revoked" // Certificate has been revoked
	CertificateStatusPending CertificateStatus = "pending" // Certificate is being issued
)

// CertificateRecord is the canonical per-certificate entity kept in the
// store. The JSON field names are part of the store contract and must not
// change: records are shared with every consumer of the cert:<id> keys.
type CertificateRecord struct {
	ID          string            `json:"certificate_id"`
	CommonName  string            `json:"common_name"`
	DNSNames    []string          `json:"dns_names"`
	IPAddresses []string          `json:"ip_addresses"`
	Status      CertificateStatus `json:"status"`
	ExpiresAt   int64             `json:"expires_at"`
	IssuedAt    int64             `json:"issued_at"`
	Metadata    map[string]string `json:"metadata"`
}

// IsActive returns true if the certificate is in an active state
func (r *CertificateRecord) IsActive() bool {
	return r.Status == CertificateStatusActive
}

// IsRevoked returns true if the certificate has been revoked
func (r *CertificateRecord) IsRevoked() bool {
	return r.Status == CertificateStatusRevoked
}

// ExpiresWithin reports whether the certificate is still ahead of its
// expiry but due within the given number of days. Records already past
// expiry are excluded; those belong to an expiry sweep, not renewal.
func (r *CertificateRecord) ExpiresWithin(days int, now time.Time) bool {
	remaining := r.ExpiresAt - now.Unix()
	return remaining > 0 && remaining <= int64(days)*24*60*60
}

// CanTransitionTo reports whether a status flip is allowed. Transitions
// are one-directional: pending->active, active->revoked, active->expired.
// Revoked and expired are terminal.
func (r *CertificateRecord) CanTransitionTo(next CertificateStatus) bool {
	switch r.Status {
	case CertificateStatusPending:
		return next == CertificateStatusActive
	case CertificateStatusActive:
		return next == CertificateStatusRevoked || next == CertificateStatusExpired
	default:
		return false
	}
}

// ValidStatus reports whether s is one of the known certificate statuses.
func ValidStatus(s CertificateStatus) bool {
	switch s {
	case CertificateStatusActive, CertificateStatusExpired,
		CertificateStatusRevoked, CertificateStatusPending:
		return true
	}
	return false
}
