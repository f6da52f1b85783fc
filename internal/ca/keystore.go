package ca

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/dsyorkd/cert-agent/internal/config"
	"github.com/dsyorkd/cert-agent/internal/errors"
	"github.com/dsyorkd/cert-agent/internal/logger"
)

const (
	caValidityDays = 3650

	certPEMType = "CERTIFICATE"
	keyPEMType  = "PRIVATE KEY"
)

// caSubject is the well-known subject of the self-signed root. The
// single-tenant assumption permits a constant here.
var caSubject = pkix.Name{
	CommonName:   "Cert Agent CA",
	Organization: []string{"Cert Agent"},
	Country:      []string{"US"},
}

// Keystore owns the CA certificate and private key for the process
// lifetime. The key never leaves the package; consumers sign leaf
// templates through SignLeaf.
type Keystore struct {
	cert    *x509.Certificate
	certPEM []byte
	key     *rsa.PrivateKey
	logger  logger.Interface
}

// Load reads the CA keypair from the configured path pair, or bootstraps
// a fresh self-signed CA when either file is missing. Parse failures on
// existing files are fatal: that is a misconfigured deployment, not a
// recoverable runtime condition.
func Load(cfg *config.CertificateConfig, log logger.Interface) (*Keystore, error) {
	ks := &Keystore{logger: log.WithField("component", "ca")}

	_, certErr := os.Stat(cfg.CACertPath)
	_, keyErr := os.Stat(cfg.CAKeyPath)

	if certErr == nil && keyErr == nil {
		if err := ks.loadFromFiles(cfg.CACertPath, cfg.CAKeyPath); err != nil {
			return nil, err
		}
		ks.logger.WithFields(map[string]interface{}{
			"subject":   ks.cert.Subject.String(),
			"not_after": ks.cert.NotAfter,
		}).Info("Loaded CA certificate")
		return ks, nil
	}

	if err := ks.bootstrap(cfg); err != nil {
		return nil, err
	}
	ks.logger.WithFields(map[string]interface{}{
		"cert_path": cfg.CACertPath,
		"key_path":  cfg.CAKeyPath,
		"not_after": ks.cert.NotAfter,
	}).Info("Generated new CA certificate")
	return ks, nil
}

func (ks *Keystore) loadFromFiles(certPath, keyPath string) error {
	certPEM, err := os.ReadFile(certPath)
	if err != nil {
		return errors.NewIOError(certPath, "read", err)
	}
	block, _ := pem.Decode(certPEM)
	if block == nil || block.Type != certPEMType {
		return errors.NewCryptoError("parse ca certificate", fmt.Errorf("no certificate PEM block in %s", certPath))
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return errors.NewCryptoError("parse ca certificate", err)
	}

	keyPEM, err := os.ReadFile(keyPath)
	if err != nil {
		return errors.NewIOError(keyPath, "read", err)
	}
	keyBlock, _ := pem.Decode(keyPEM)
	if keyBlock == nil {
		return errors.NewCryptoError("parse ca key", fmt.Errorf("no PEM block in %s", keyPath))
	}
	key, err := parsePrivateKey(keyBlock.Bytes)
	if err != nil {
		return errors.NewCryptoError("parse ca key", err)
	}

	ks.cert = cert
	ks.certPEM = certPEM
	ks.key = key
	return nil
}

// parsePrivateKey accepts PKCS#8 (what we write) and PKCS#1 (what an
// operator may drop in from other tooling).
func parsePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("ca key is not RSA")
		}
		return rsaKey, nil
	}
	return x509.ParsePKCS1PrivateKey(der)
}

func (ks *Keystore) bootstrap(cfg *config.CertificateConfig) error {
	key, err := rsa.GenerateKey(rand.Reader, cfg.KeySize)
	if err != nil {
		return errors.NewCryptoError("generate ca key", err)
	}

	now := time.Now()
	template := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               caSubject,
		NotBefore:             now,
		NotAfter:              now.AddDate(0, 0, caValidityDays),
		IsCA:                  true,
		BasicConstraintsValid: true,
		MaxPathLen:            0,
		MaxPathLenZero:        true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		SignatureAlgorithm:    x509.SHA256WithRSA,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return errors.NewCryptoError("self-sign ca certificate", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return errors.NewCryptoError("parse ca certificate", err)
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: certPEMType, Bytes: der})

	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return errors.NewCryptoError("encode ca key", err)
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: keyPEMType, Bytes: keyDER})

	if err := os.MkdirAll(filepath.Dir(cfg.CACertPath), 0755); err != nil {
		return errors.NewIOError(filepath.Dir(cfg.CACertPath), "mkdir", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.CAKeyPath), 0755); err != nil {
		return errors.NewIOError(filepath.Dir(cfg.CAKeyPath), "mkdir", err)
	}
	if err := os.WriteFile(cfg.CACertPath, certPEM, 0644); err != nil {
		return errors.NewIOError(cfg.CACertPath, "write", err)
	}
	if err := os.WriteFile(cfg.CAKeyPath, keyPEM, 0600); err != nil {
		return errors.NewIOError(cfg.CAKeyPath, "write", err)
	}

	ks.cert = cert
	ks.certPEM = certPEM
	ks.key = key
	return nil
}

// Certificate returns the CA certificate
func (ks *Keystore) Certificate() *x509.Certificate {
	return ks.cert
}

// CertificatePEM returns the PEM encoding of the CA certificate
func (ks *Keystore) CertificatePEM() []byte {
	return ks.certPEM
}

// SignLeaf signs a leaf certificate template with the CA key and returns
// the DER encoding. The template's issuer is taken from the CA subject.
func (ks *Keystore) SignLeaf(template *x509.Certificate, publicKey crypto.PublicKey) ([]byte, error) {
	der, err := x509.CreateCertificate(rand.Reader, template, ks.cert, publicKey, ks.key)
	if err != nil {
		return nil, errors.NewCryptoError("sign leaf certificate", err)
	}
	return der, nil
}
