package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dsyorkd/cert-agent/internal/models"
)

// MockStore is a mock implementation of the store Interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(ctx context.Context, record *models.CertificateRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStore) Get(ctx context.Context, id string) (*models.CertificateRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CertificateRecord), args.Error(1)
}

func (m *MockStore) UpdateStatus(ctx context.Context, id string, status models.CertificateStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockStore) List(ctx context.Context, status models.CertificateStatus) ([]*models.CertificateRecord, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CertificateRecord), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) Publish(ctx context.Context, event, data string) error {
	args := m.Called(ctx, event, data)
	return args.Error(0)
}

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// mockRenewalIssuer is a mock for the renewer's issuer dependency
type mockRenewalIssuer struct {
	mock.Mock
}

func (m *mockRenewalIssuer) Renew(ctx context.Context, id string, validityDays int) (*IssuedCertificate, error) {
	args := m.Called(ctx, id, validityDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*IssuedCertificate), args.Error(1)
}

// mockExpiryScanner is a mock for the renewer's scanner dependency
type mockExpiryScanner struct {
	mock.Mock
}

func (m *mockExpiryScanner) ExpiringWithin(ctx context.Context, days int) ([]*models.CertificateRecord, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CertificateRecord), args.Error(1)
}
