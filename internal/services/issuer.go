package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dsyorkd/cert-agent/internal/ca"
	"github.com/dsyorkd/cert-agent/internal/config"
	"github.com/dsyorkd/cert-agent/internal/errors"
	"github.com/dsyorkd/cert-agent/internal/logger"
	"github.com/dsyorkd/cert-agent/internal/models"
	"github.com/dsyorkd/cert-agent/internal/store"
)

// IssueRequest describes a certificate issuance request. It is never
// persisted; the resulting record carries only CN, SANs and metadata.
type IssueRequest struct {
	CommonName         string
	DNSNames           []string
	IPAddresses        []string
	ValidityDays       int
	Organization       string
	OrganizationalUnit string
	Country            string
	State              string
	Locality           string
	Metadata           map[string]string
}

// IssuedCertificate is the transient result of an issuance. The PEMs are
// handed to the caller once; they remain reconstructible from the
// filesystem pair.
type IssuedCertificate struct {
	ID               string
	CertificatePEM   string
	PrivateKeyPEM    string
	CACertificatePEM string
	ExpiresAt        time.Time
	Status           models.CertificateStatus
}

// Issuer builds, signs and persists leaf certificates. It is stateless
// after construction and safe for concurrent use.
type Issuer struct {
	config   *config.CertificateConfig
	keystore *ca.Keystore
	store    store.Interface
	logger   logger.Interface
}

// NewIssuer creates an Issuer and ensures the storage directory exists
func NewIssuer(cfg *config.CertificateConfig, keystore *ca.Keystore, st store.Interface, log logger.Interface) (*Issuer, error) {
	if err := os.MkdirAll(cfg.StoragePath, 0755); err != nil {
		return nil, errors.NewIOError(cfg.StoragePath, "mkdir", err)
	}
	return &Issuer{
		config:   cfg,
		keystore: keystore,
		store:    st,
		logger:   log.WithField("component", "issuer"),
	}, nil
}

// Issue produces a new leaf certificate, writes the PEM pair to the
// storage directory, persists the record and publishes an issued event.
func (i *Issuer) Issue(ctx context.Context, req *IssueRequest) (*IssuedCertificate, error) {
	if req.CommonName == "" {
		return nil, errors.Wrap(errors.ErrInvalidRequest, "common_name must not be empty")
	}

	validityDays := req.ValidityDays
	if validityDays <= 0 {
		validityDays = i.config.DefaultValidityDays
	}

	ipAddresses, err := parseIPAddresses(req.IPAddresses)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()

	key, err := rsa.GenerateKey(rand.Reader, i.config.KeySize)
	if err != nil {
		return nil, errors.NewCryptoError("generate leaf key", err)
	}

	serial, err := randomSerial()
	if err != nil {
		return nil, errors.NewCryptoError("generate serial", err)
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(validityDays) * 24 * time.Hour)

	template := &x509.Certificate{
		SerialNumber:       serial,
		Subject:            buildSubject(req),
		NotBefore:          now,
		NotAfter:           expiresAt,
		KeyUsage:           x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:        []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		DNSNames:           req.DNSNames,
		IPAddresses:        ipAddresses,
		SignatureAlgorithm: x509.SHA256WithRSA,
	}

	der, err := i.keystore.SignLeaf(template, &key.PublicKey)
	if err != nil {
		return nil, err
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})

	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, errors.NewCryptoError("encode leaf key", err)
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER})

	certPath := filepath.Join(i.config.StoragePath, id+".crt")
	keyPath := filepath.Join(i.config.StoragePath, id+".key")
	if err := os.WriteFile(certPath, certPEM, 0644); err != nil {
		return nil, errors.NewIOError(certPath, "write", err)
	}
	if err := os.WriteFile(keyPath, keyPEM, 0600); err != nil {
		return nil, errors.NewIOError(keyPath, "write", err)
	}

	record := &models.CertificateRecord{
		ID:          id,
		CommonName:  req.CommonName,
		DNSNames:    req.DNSNames,
		IPAddresses: req.IPAddresses,
		Status:      models.CertificateStatusActive,
		IssuedAt:    now.Unix(),
		ExpiresAt:   expiresAt.Unix(),
		Metadata:    req.Metadata,
	}

	if err := i.store.Put(ctx, record); err != nil {
		return nil, err
	}

	i.publish(ctx, store.EventIssued, id)

	i.logger.WithFields(map[string]interface{}{
		"certificate_id": id,
		"common_name":    req.CommonName,
		"expires_at":     expiresAt,
	}).Info("Issued certificate")

	return &IssuedCertificate{
		ID:               id,
		CertificatePEM:   string(certPEM),
		PrivateKeyPEM:    string(keyPEM),
		CACertificatePEM: string(i.keystore.CertificatePEM()),
		ExpiresAt:        expiresAt,
		Status:           models.CertificateStatusActive,
	}, nil
}

// Renew re-issues the certificate identified by id and revokes the
// original. Only active certificates can be renewed. Subject DN
// components are not carried over: the record persists only CN, SANs
// and metadata.
func (i *Issuer) Renew(ctx context.Context, id string, validityDays int) (*IssuedCertificate, error) {
	record, err := i.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !record.IsActive() {
		return nil, errors.Wrapf(errors.ErrStatusConflict,
			"cannot renew certificate %s with status %s", id, record.Status)
	}

	if validityDays <= 0 {
		validityDays = i.config.DefaultValidityDays
	}

	newCert, err := i.Issue(ctx, &IssueRequest{
		CommonName:   record.CommonName,
		DNSNames:     record.DNSNames,
		IPAddresses:  record.IPAddresses,
		ValidityDays: validityDays,
		Metadata:     record.Metadata,
	})
	if err != nil {
		return nil, err
	}

	if err := i.store.UpdateStatus(ctx, id, models.CertificateStatusRevoked); err != nil {
		return nil, err
	}
	i.publish(ctx, store.EventRevoked, id)
	i.publish(ctx, store.EventRenewed, newCert.ID)

	i.logger.WithFields(map[string]interface{}{
		"old_certificate_id": id,
		"new_certificate_id": newCert.ID,
	}).Info("Renewed certificate")

	return newCert, nil
}

// Revoke marks the certificate revoked and publishes a revoked event.
// Unknown ids succeed silently; leaf files are left on disk.
func (i *Issuer) Revoke(ctx context.Context, id, reason string) error {
	if err := i.store.UpdateStatus(ctx, id, models.CertificateStatusRevoked); err != nil {
		return err
	}

	data := id
	if reason != "" {
		data = id + ":" + reason
	}
	i.publish(ctx, store.EventRevoked, data)

	i.logger.WithFields(map[string]interface{}{
		"certificate_id": id,
		"reason":         reason,
	}).Info("Revoked certificate")
	return nil
}

// publish is fire-and-forget: delivery failures are logged, never propagated
func (i *Issuer) publish(ctx context.Context, event, data string) {
	if err := i.store.Publish(ctx, event, data); err != nil {
		i.logger.WithError(err).Warnf("Failed to publish %s event", event)
	}
}

func buildSubject(req *IssueRequest) pkix.Name {
	name := pkix.Name{CommonName: req.CommonName}
	if req.Organization != "" {
		name.Organization = []string{req.Organization}
	}
	if req.OrganizationalUnit != "" {
		name.OrganizationalUnit = []string{req.OrganizationalUnit}
	}
	if req.Country != "" {
		name.Country = []string{req.Country}
	}
	if req.State != "" {
		name.Province = []string{req.State}
	}
	if req.Locality != "" {
		name.Locality = []string{req.Locality}
	}
	return name
}

func parseIPAddresses(addrs []string) ([]net.IP, error) {
	ips := make([]net.IP, 0, len(addrs))
	for _, addr := range addrs {
		ip := net.ParseIP(addr)
		if ip == nil {
			return nil, errors.Wrapf(errors.ErrInvalidRequest, "invalid ip address '%s'", addr)
		}
		ips = append(ips, ip)
	}
	return ips, nil
}

// randomSerial returns a random 63-bit positive serial. Collisions
// within a process lifetime are improbable at any realistic fleet size.
func randomSerial() (*big.Int, error) {
	max := new(big.Int).Lsh(big.NewInt(1), 63)
	serial, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, err
	}
	if serial.Sign() == 0 {
		serial = big.NewInt(1)
	}
	return serial, nil
}
