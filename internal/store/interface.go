package store

import (
	"context"

	"github.com/dsyorkd/cert-agent/internal/models"
)

// Event names published to the cert_events channel. Payloads follow the
// "<event>:<data>" grammar shared with every channel subscriber.
const (
	EventIssued        = "issued"
	EventRevoked       = "revoked"
	EventRenewed       = "renewed"
	EventAutoRenewed   = "auto_renewed"
	EventRenewalFailed = "renewal_failed"
	EventHealthCheck   = "health_check"
	EventCleanup       = "cleanup"
)

// Interface defines the certificate store capability. Implementations
// persist records, maintain the certs:all index, and publish lifecycle
// events to the cert_events channel.
type Interface interface {
	// Put stores a record and adds its id to the certs:all index.
	Put(ctx context.Context, record *models.CertificateRecord) error

	// Get returns the record for id, or an error wrapping
	// errors.ErrNotFound when the id is absent.
	Get(ctx context.Context, id string) (*models.CertificateRecord, error)

	// UpdateStatus flips the status of an existing record, enforcing the
	// one-way transition rule of models.CertificateRecord. A missing id
	// or a same-status update is a silent no-op so that revocation stays
	// idempotent.
	UpdateStatus(ctx context.Context, id string, status models.CertificateStatus) error

	// List returns all records, filtered by status when non-empty.
	// Order is unspecified.
	List(ctx context.Context, status models.CertificateStatus) ([]*models.CertificateRecord, error)

	// Delete removes the record and its index entry.
	Delete(ctx context.Context, id string) error

	// Publish sends "<event>:<data>" to the cert_events channel.
	Publish(ctx context.Context, event, data string) error

	// Ping verifies store connectivity.
	Ping(ctx context.Context) error

	Close() error
}
