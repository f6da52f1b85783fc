package services

import (
	"context"
	"time"

	"github.com/dsyorkd/cert-agent/internal/logger"
	"github.com/dsyorkd/cert-agent/internal/models"
	"github.com/dsyorkd/cert-agent/internal/store"
)

// Lifecycle provides the read side of certificate state: status lookups,
// listings and expiry scans.
type Lifecycle struct {
	store  store.Interface
	logger logger.Interface
}

// NewLifecycle creates a Lifecycle service
func NewLifecycle(st store.Interface, log logger.Interface) *Lifecycle {
	return &Lifecycle{
		store:  st,
		logger: log.WithField("component", "lifecycle"),
	}
}

// GetStatus returns the stored record for id
func (l *Lifecycle) GetStatus(ctx context.Context, id string) (*models.CertificateRecord, error) {
	return l.store.Get(ctx, id)
}

// List returns all records, filtered by status when non-empty
func (l *Lifecycle) List(ctx context.Context, status models.CertificateStatus) ([]*models.CertificateRecord, error) {
	return l.store.List(ctx, status)
}

// ExpiringWithin returns active records whose expiry falls within the
// next days days. Already-expired records are excluded; they are past
// renewal, not approaching it.
func (l *Lifecycle) ExpiringWithin(ctx context.Context, days int) ([]*models.CertificateRecord, error) {
	records, err := l.store.List(ctx, models.CertificateStatusActive)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expiring := make([]*models.CertificateRecord, 0)
	for _, record := range records {
		if record.ExpiresWithin(days, now) {
			expiring = append(expiring, record)
		}
	}
	return expiring, nil
}
