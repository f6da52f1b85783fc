package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateRecordJSON(t *testing.T) {
	record := &CertificateRecord{
		ID:          "abc-123",
		CommonName:  "svc.internal",
		DNSNames:    []string{"svc.internal", "svc"},
		IPAddresses: []string{"10.0.0.5"},
		Status:      CertificateStatusActive,
		ExpiresAt:   1700000000,
		IssuedAt:    1690000000,
		Metadata:    map[string]string{"team": "platform"},
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	// Field names are shared with every consumer of the cert:<id> keys
	assert.Contains(t, string(data), `"certificate_id":"abc-123"`)
	assert.Contains(t, string(data), `"common_name":"svc.internal"`)
	assert.Contains(t, string(data), `"dns_names"`)
	assert.Contains(t, string(data), `"ip_addresses"`)
	assert.Contains(t, string(data), `"expires_at":1700000000`)
	assert.Contains(t, string(data), `"issued_at":1690000000`)

	var decoded CertificateRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, record, &decoded)
}

func TestExpiresWithin(t *testing.T) {
	now := time.Now()

	t.Run("inside the window", func(t *testing.T) {
		r := &CertificateRecord{ExpiresAt: now.Add(10 * 24 * time.Hour).Unix()}
		assert.True(t, r.ExpiresWithin(30, now))
	})

	t.Run("outside the window", func(t *testing.T) {
		r := &CertificateRecord{ExpiresAt: now.Add(60 * 24 * time.Hour).Unix()}
		assert.False(t, r.ExpiresWithin(30, now))
	})

	t.Run("already expired", func(t *testing.T) {
		r := &CertificateRecord{ExpiresAt: now.Add(-time.Hour).Unix()}
		assert.False(t, r.ExpiresWithin(30, now))
	})

	t.Run("exactly at the boundary", func(t *testing.T) {
		r := &CertificateRecord{ExpiresAt: now.Unix() + 30*24*60*60}
		assert.True(t, r.ExpiresWithin(30, now))
	})
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    CertificateStatus
		to      CertificateStatus
		allowed bool
	}{
		{"pending to active", CertificateStatusPending, CertificateStatusActive, true},
		{"pending to revoked", CertificateStatusPending, CertificateStatusRevoked, false},
		{"active to revoked", CertificateStatusActive, CertificateStatusRevoked, true},
		{"active to expired", CertificateStatusActive, CertificateStatusExpired, true},
		{"active to pending", CertificateStatusActive, CertificateStatusPending, false},
		{"revoked is terminal", CertificateStatusRevoked, CertificateStatusActive, false},
		{"expired is terminal", CertificateStatusExpired, CertificateStatusActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &CertificateRecord{Status: tt.from}
			assert.Equal(t, tt.allowed, r.CanTransitionTo(tt.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(CertificateStatusActive))
	assert.True(t, ValidStatus(CertificateStatusPending))
	assert.False(t, ValidStatus("frozen"))
	assert.False(t, ValidStatus(""))
}

func TestStatusPredicates(t *testing.T) {
	active := &CertificateRecord{Status: CertificateStatusActive}
	revoked := &CertificateRecord{Status: CertificateStatusRevoked}

	assert.True(t, active.IsActive())
	assert.False(t, active.IsRevoked())
	assert.True(t, revoked.IsRevoked())
	assert.False(t, revoked.IsActive())
}
