package services

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsyorkd/cert-agent/internal/ca"
	"github.com/dsyorkd/cert-agent/internal/config"
	"github.com/dsyorkd/cert-agent/internal/errors"
	"github.com/dsyorkd/cert-agent/internal/logger"
	"github.com/dsyorkd/cert-agent/internal/models"
	"github.com/dsyorkd/cert-agent/internal/store"
)

type issuerFixture struct {
	issuer   *Issuer
	keystore *ca.Keystore
	store    *store.RedisStore
	config   *config.CertificateConfig
	redis    *miniredis.Miniredis
}

func setupIssuer(t *testing.T) *issuerFixture {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.CertificateConfig{
		CACertPath:           filepath.Join(dir, "ca.crt"),
		CAKeyPath:            filepath.Join(dir, "ca.key"),
		StoragePath:          filepath.Join(dir, "storage"),
		DefaultValidityDays:  365,
		RenewalThresholdDays: 30,
		KeySize:              2048,
		SignatureAlgorithm:   "sha256",
	}

	log := logger.Default()

	keystore, err := ca.Load(cfg, log)
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	st := store.NewWithClient(client, log)

	issuer, err := NewIssuer(cfg, keystore, st, log)
	require.NoError(t, err)

	return &issuerFixture{
		issuer:   issuer,
		keystore: keystore,
		store:    st,
		config:   cfg,
		redis:    mr,
	}
}

func parseCertPEM(t *testing.T, certPEM string) *x509.Certificate {
	t.Helper()
	block, _ := pem.Decode([]byte(certPEM))
	require.NotNil(t, block)
	cert, err := x509.ParseCertificate(block.Bytes)
	require.NoError(t, err)
	return cert
}

func TestIssue(t *testing.T) {
	f := setupIssuer(t)
	ctx := context.Background()

	req := &IssueRequest{
		CommonName:   "svc.internal",
		DNSNames:     []string{"svc.internal", "svc.cluster.local"},
		IPAddresses:  []string{"10.0.0.5", "127.0.0.1"},
		ValidityDays: 90,
		Organization: "Platform",
		Metadata:     map[string]string{"team": "infra"},
	}

	issued, err := f.issuer.Issue(ctx, req)
	require.NoError(t, err)

	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, models.CertificateStatusActive, issued.Status)
	assert.Equal(t, string(f.keystore.CertificatePEM()), issued.CACertificatePEM)

	cert := parseCertPEM(t, issued.CertificatePEM)
	assert.Equal(t, "svc.internal", cert.Subject.CommonName)
	assert.Equal(t, []string{"Platform"}, cert.Subject.Organization)
	assert.Equal(t, []string{"svc.internal", "svc.cluster.local"}, cert.DNSNames)
	require.Len(t, cert.IPAddresses, 2)
	assert.Equal(t, "10.0.0.5", cert.IPAddresses[0].String())
	assert.NotZero(t, cert.SerialNumber.Sign())
	assert.Equal(t, f.keystore.Certificate().Subject.CommonName, cert.Issuer.CommonName)

	// The leaf must chain to the CA
	roots := x509.NewCertPool()
	roots.AddCert(f.keystore.Certificate())
	_, err = cert.Verify(x509.VerifyOptions{Roots: roots})
	assert.NoError(t, err)

	// Roughly ninety days of validity
	assert.WithinDuration(t, time.Now().Add(90*24*time.Hour), cert.NotAfter, time.Minute)

	// PEM pair lands on disk, key not world readable
	certPath := filepath.Join(f.config.StoragePath, issued.ID+".crt")
	keyPath := filepath.Join(f.config.StoragePath, issued.ID+".key")
	assert.FileExists(t, certPath)
	assert.FileExists(t, keyPath)
	info, err := os.Stat(keyPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Record is persisted with matching fields
	record, err := f.store.Get(ctx, issued.ID)
	require.NoError(t, err)
	assert.Equal(t, "svc.internal", record.CommonName)
	assert.Equal(t, req.DNSNames, record.DNSNames)
	assert.Equal(t, req.IPAddresses, record.IPAddresses)
	assert.Equal(t, models.CertificateStatusActive, record.Status)
	assert.Equal(t, issued.ExpiresAt.Unix(), record.ExpiresAt)
	assert.Equal(t, map[string]string{"team": "infra"}, record.Metadata)
}

func TestIssuePublishesEvent(t *testing.T) {
	f := setupIssuer(t)
	ctx := context.Background()

	subClient := redis.NewClient(&redis.Options{Addr: f.redis.Addr()})
	defer subClient.Close()
	pubsub := subClient.Subscribe(ctx, store.EventChannel)
	defer pubsub.Close()
	_, err := pubsub.Receive(ctx)
	require.NoError(t, err)

	issued, err := f.issuer.Issue(ctx, &IssueRequest{CommonName: "svc.internal"})
	require.NoError(t, err)

	select {
	case msg := <-pubsub.Channel():
		assert.Equal(t, "issued:"+issued.ID, msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for issued event")
	}
}

func TestIssueValidation(t *testing.T) {
	f := setupIssuer(t)
	ctx := context.Background()

	t.Run("should reject empty common name", func(t *testing.T) {
		_, err := f.issuer.Issue(ctx, &IssueRequest{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
	})

	t.Run("should reject malformed ip address", func(t *testing.T) {
		_, err := f.issuer.Issue(ctx, &IssueRequest{
			CommonName:  "svc.internal",
			IPAddresses: []string{"not-an-ip"},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
	})

	t.Run("should fall back to default validity", func(t *testing.T) {
		issued, err := f.issuer.Issue(ctx, &IssueRequest{CommonName: "svc.internal"})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(365*24*time.Hour), issued.ExpiresAt, time.Minute)
	})
}

func TestRenew(t *testing.T) {
	f := setupIssuer(t)
	ctx := context.Background()

	original, err := f.issuer.Issue(ctx, &IssueRequest{
		CommonName:  "svc.internal",
		DNSNames:    []string{"svc.internal"},
		IPAddresses: []string{"10.0.0.5"},
		Metadata:    map[string]string{"team": "infra"},
	})
	require.NoError(t, err)

	renewed, err := f.issuer.Renew(ctx, original.ID, 30)
	require.NoError(t, err)

	assert.NotEqual(t, original.ID, renewed.ID)
	assert.Equal(t, models.CertificateStatusActive, renewed.Status)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), renewed.ExpiresAt, time.Minute)

	// Subject and metadata carry over to the replacement
	newRecord, err := f.store.Get(ctx, renewed.ID)
	require.NoError(t, err)
	assert.Equal(t, "svc.internal", newRecord.CommonName)
	assert.Equal(t, []string{"svc.internal"}, newRecord.DNSNames)
	assert.Equal(t, map[string]string{"team": "infra"}, newRecord.Metadata)

	// The original is revoked
	oldRecord, err := f.store.Get(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CertificateStatusRevoked, oldRecord.Status)
}

func TestRenewGuards(t *testing.T) {
	f := setupIssuer(t)
	ctx := context.Background()

	t.Run("should fail for unknown id", func(t *testing.T) {
		_, err := f.issuer.Renew(ctx, "missing", 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrNotFound))
	})

	t.Run("should refuse to renew a revoked certificate", func(t *testing.T) {
		issued, err := f.issuer.Issue(ctx, &IssueRequest{CommonName: "svc.internal"})
		require.NoError(t, err)
		require.NoError(t, f.issuer.Revoke(ctx, issued.ID, ""))

		_, err = f.issuer.Renew(ctx, issued.ID, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrStatusConflict))
	})
}

func TestRevoke(t *testing.T) {
	f := setupIssuer(t)
	ctx := context.Background()

	t.Run("should revoke an active certificate", func(t *testing.T) {
		issued, err := f.issuer.Issue(ctx, &IssueRequest{CommonName: "svc.internal"})
		require.NoError(t, err)

		require.NoError(t, f.issuer.Revoke(ctx, issued.ID, "compromised"))

		record, err := f.store.Get(ctx, issued.ID)
		require.NoError(t, err)
		assert.Equal(t, models.CertificateStatusRevoked, record.Status)

		// Leaf files stay on disk after revocation
		assert.FileExists(t, filepath.Join(f.config.StoragePath, issued.ID+".crt"))
	})

	t.Run("should be idempotent for unknown ids", func(t *testing.T) {
		assert.NoError(t, f.issuer.Revoke(ctx, "missing", "whatever"))
	})
}
