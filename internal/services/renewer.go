package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dsyorkd/cert-agent/internal/config"
	"github.com/dsyorkd/cert-agent/internal/logger"
	"github.com/dsyorkd/cert-agent/internal/models"
	"github.com/dsyorkd/cert-agent/internal/store"
)

// renewalIssuer is the slice of Issuer the renewer needs
type renewalIssuer interface {
	Renew(ctx context.Context, id string, validityDays int) (*IssuedCertificate, error)
}

// expiryScanner is the slice of Lifecycle the renewer needs
type expiryScanner interface {
	ExpiringWithin(ctx context.Context, days int) ([]*models.CertificateRecord, error)
}

// Renewer periodically scans for certificates approaching expiry and
// renews them with bounded concurrency. One renewal failure never stops
// the sweep; each failure is logged and published individually.
type Renewer struct {
	config  *config.WatcherConfig
	issuer  renewalIssuer
	scanner expiryScanner
	store   store.Interface
	logger  logger.Interface
}

// NewRenewer creates a Renewer
func NewRenewer(cfg *config.WatcherConfig, issuer renewalIssuer, scanner expiryScanner, st store.Interface, log logger.Interface) *Renewer {
	return &Renewer{
		config:  cfg,
		issuer:  issuer,
		scanner: scanner,
		store:   st,
		logger:  log.WithField("component", "renewer"),
	}
}

// Run ticks at the configured interval until ctx is cancelled. The
// first sweep happens one full interval after start, matching a process
// that has just issued nothing yet.
func (r *Renewer) Run(ctx context.Context) error {
	interval := r.config.CheckInterval()
	r.logger.WithFields(map[string]interface{}{
		"interval":       interval.String(),
		"threshold_days": r.config.RenewalThresholdDays,
	}).Info("Starting renewal watcher")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Renewal watcher stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := r.RenewExpiring(ctx); err != nil {
				r.logger.WithError(err).Error("Renewal sweep failed")
			}
		}
	}
}

// RenewExpiring runs one sweep: scan for records inside the renewal
// threshold and renew each one, at most MaxConcurrentRenewals at a time.
func (r *Renewer) RenewExpiring(ctx context.Context) error {
	expiring, err := r.scanner.ExpiringWithin(ctx, r.config.RenewalThresholdDays)
	if err != nil {
		return err
	}

	if len(expiring) == 0 {
		r.logger.Debug("No certificates approaching expiry")
		return nil
	}

	r.logger.WithField("count", len(expiring)).Info("Renewing expiring certificates")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.MaxConcurrentRenewals)

	for _, record := range expiring {
		record := record
		g.Go(func() error {
			r.renewOne(gctx, record)
			return nil
		})
	}

	return g.Wait()
}

// renewOne renews a single record and publishes the outcome. Failures
// are absorbed here so one bad record cannot abort the sweep.
func (r *Renewer) renewOne(ctx context.Context, record *models.CertificateRecord) {
	newCert, err := r.issuer.Renew(ctx, record.ID, 0)
	if err != nil {
		r.logger.WithError(err).WithField("certificate_id", record.ID).Error("Automatic renewal failed")
		r.publish(ctx, store.EventRenewalFailed, record.ID+":"+err.Error())
		return
	}

	r.logger.WithFields(map[string]interface{}{
		"old_certificate_id": record.ID,
		"new_certificate_id": newCert.ID,
		"common_name":        record.CommonName,
	}).Info("Automatically renewed certificate")
	r.publish(ctx, store.EventAutoRenewed, newCert.ID)
}

// CheckHealth publishes a snapshot of record counts by status
func (r *Renewer) CheckHealth(ctx context.Context) error {
	records, err := r.store.List(ctx, "")
	if err != nil {
		return err
	}

	var active, expired, revoked int
	for _, record := range records {
		switch record.Status {
		case models.CertificateStatusActive:
			active++
		case models.CertificateStatusExpired:
			expired++
		case models.CertificateStatusRevoked:
			revoked++
		}
	}

	data := fmt.Sprintf("active:%d,expired:%d,revoked:%d", active, expired, revoked)
	r.publish(ctx, store.EventHealthCheck, data)

	r.logger.WithFields(map[string]interface{}{
		"active":  active,
		"expired": expired,
		"revoked": revoked,
	}).Debug("Health check complete")
	return nil
}

// CleanupExpired deletes expired records whose expiry is more than
// daysOld days in the past. Only records marked expired are considered;
// active and revoked records stay regardless of age. Leaf files are
// left on disk for audit.
func (r *Renewer) CleanupExpired(ctx context.Context, daysOld int) error {
	records, err := r.store.List(ctx, models.CertificateStatusExpired)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-time.Duration(daysOld) * 24 * time.Hour).Unix()
	removed := 0
	for _, record := range records {
		if record.ExpiresAt >= cutoff {
			continue
		}
		if err := r.store.Delete(ctx, record.ID); err != nil {
			r.logger.WithError(err).WithField("certificate_id", record.ID).Warn("Failed to delete expired record")
			continue
		}
		removed++
	}

	if removed > 0 {
		r.publish(ctx, store.EventCleanup, fmt.Sprintf("removed:%d", removed))
		r.logger.WithField("removed", removed).Info("Cleaned up expired certificate records")
	}
	return nil
}

func (r *Renewer) publish(ctx context.Context, event, data string) {
	if err := r.store.Publish(ctx, event, data); err != nil {
		r.logger.WithError(err).Warnf("Failed to publish %s event", event)
	}
}
