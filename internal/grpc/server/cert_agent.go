package server

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dsyorkd/cert-agent/internal/config"
	"github.com/dsyorkd/cert-agent/internal/errors"
	"github.com/dsyorkd/cert-agent/internal/logger"
	"github.com/dsyorkd/cert-agent/internal/models"
	"github.com/dsyorkd/cert-agent/internal/services"
	pb "github.com/dsyorkd/cert-agent/proto"
)

// issuerService is the write side of certificate lifecycle
type issuerService interface {
	Issue(ctx context.Context, req *services.IssueRequest) (*services.IssuedCertificate, error)
	Renew(ctx context.Context, id string, validityDays int) (*services.IssuedCertificate, error)
	Revoke(ctx context.Context, id, reason string) error
}

// lifecycleService is the read side of certificate lifecycle
type lifecycleService interface {
	GetStatus(ctx context.Context, id string) (*models.CertificateRecord, error)
	List(ctx context.Context, status models.CertificateStatus) ([]*models.CertificateRecord, error)
	ExpiringWithin(ctx context.Context, days int) ([]*models.CertificateRecord, error)
}

// CertAgentService implements the gRPC CertAgent service
type CertAgentService struct {
	pb.UnimplementedCertAgentServer
	issuer    issuerService
	lifecycle lifecycleService
	watcher   *config.WatcherConfig
	logger    logger.Interface
}

// NewCertAgentService creates the gRPC service implementation
func NewCertAgentService(issuer issuerService, lifecycle lifecycleService, watcherCfg *config.WatcherConfig, log logger.Interface) *CertAgentService {
	return &CertAgentService{
		issuer:    issuer,
		lifecycle: lifecycle,
		watcher:   watcherCfg,
		logger:    log.WithField("component", "grpc"),
	}
}

// IssueCertificate issues a new leaf certificate
func (s *CertAgentService) IssueCertificate(ctx context.Context, req *pb.IssueCertificateRequest) (*pb.IssueCertificateResponse, error) {
	s.logger.WithField("common_name", req.GetCommonName()).Info("Issuing certificate")

	cert, err := s.issuer.Issue(ctx, &services.IssueRequest{
		CommonName:         req.GetCommonName(),
		DNSNames:           req.GetDnsNames(),
		IPAddresses:        req.GetIpAddresses(),
		ValidityDays:       int(req.GetValidityDays()),
		Organization:       req.GetOrganization(),
		OrganizationalUnit: req.GetOrganizationalUnit(),
		Country:            req.GetCountry(),
		State:              req.GetState(),
		Locality:           req.GetLocality(),
		Metadata:           req.GetMetadata(),
	})
	if err != nil {
		s.logger.WithError(err).Error("Failed to issue certificate")
		if errors.Is(err, errors.ErrInvalidRequest) {
			return nil, status.Errorf(codes.InvalidArgument, "%v", err)
		}
		return nil, status.Errorf(codes.Internal, "failed to issue certificate: %v", err)
	}

	return &pb.IssueCertificateResponse{
		CertificateId:    cert.ID,
		CertificatePem:   cert.CertificatePEM,
		PrivateKeyPem:    cert.PrivateKeyPEM,
		CaCertificatePem: cert.CACertificatePEM,
		ExpiresAt:        cert.ExpiresAt.Unix(),
		Status:           statusToProto(cert.Status),
	}, nil
}

// RenewCertificate issues a replacement and revokes the original
func (s *CertAgentService) RenewCertificate(ctx context.Context, req *pb.RenewCertificateRequest) (*pb.RenewCertificateResponse, error) {
	s.logger.WithField("certificate_id", req.GetCertificateId()).Info("Renewing certificate")

	cert, err := s.issuer.Renew(ctx, req.GetCertificateId(), int(req.GetValidityDays()))
	if err != nil {
		s.logger.WithError(err).Error("Failed to renew certificate")
		if errors.Is(err, errors.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "certificate not found: %s", req.GetCertificateId())
		}
		return nil, status.Errorf(codes.Internal, "failed to renew certificate: %v", err)
	}

	return &pb.RenewCertificateResponse{
		CertificateId:  cert.ID,
		CertificatePem: cert.CertificatePEM,
		PrivateKeyPem:  cert.PrivateKeyPEM,
		ExpiresAt:      cert.ExpiresAt.Unix(),
		Status:         statusToProto(cert.Status),
	}, nil
}

// RevokeCertificate marks a certificate revoked. Failures are reported in
// the response envelope rather than as RPC errors.
func (s *CertAgentService) RevokeCertificate(ctx context.Context, req *pb.RevokeCertificateRequest) (*pb.RevokeCertificateResponse, error) {
	s.logger.WithField("certificate_id", req.GetCertificateId()).Info("Revoking certificate")

	if err := s.issuer.Revoke(ctx, req.GetCertificateId(), req.GetReason()); err != nil {
		s.logger.WithError(err).Error("Failed to revoke certificate")
		return &pb.RevokeCertificateResponse{
			CertificateId: req.GetCertificateId(),
			Success:       false,
			Message:       fmt.Sprintf("Failed to revoke certificate: %v", err),
		}, nil
	}

	return &pb.RevokeCertificateResponse{
		CertificateId: req.GetCertificateId(),
		Success:       true,
		Message:       "Certificate revoked successfully",
	}, nil
}

// GetCertificateStatus returns the stored record for a certificate
func (s *CertAgentService) GetCertificateStatus(ctx context.Context, req *pb.GetCertificateStatusRequest) (*pb.GetCertificateStatusResponse, error) {
	record, err := s.lifecycle.GetStatus(ctx, req.GetCertificateId())
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "certificate not found: %s", req.GetCertificateId())
		}
		s.logger.WithError(err).Error("Failed to get certificate status")
		return nil, status.Errorf(codes.Internal, "failed to get certificate status: %v", err)
	}

	return &pb.GetCertificateStatusResponse{
		CertificateId: record.ID,
		Status:        statusToProto(record.Status),
		ExpiresAt:     record.ExpiresAt,
		IssuedAt:      record.IssuedAt,
		CommonName:    record.CommonName,
		DnsNames:      record.DNSNames,
		Metadata:      record.Metadata,
	}, nil
}

// ListCertificates returns all records, optionally filtered by status
func (s *CertAgentService) ListCertificates(ctx context.Context, req *pb.ListCertificatesRequest) (*pb.ListCertificatesResponse, error) {
	records, err := s.lifecycle.List(ctx, protoToStatus(req.GetStatus()))
	if err != nil {
		s.logger.WithError(err).Error("Failed to list certificates")
		return nil, status.Errorf(codes.Internal, "failed to list certificates: %v", err)
	}

	infos := make([]*pb.CertificateInfo, len(records))
	for i, record := range records {
		infos[i] = &pb.CertificateInfo{
			CertificateId: record.ID,
			CommonName:    record.CommonName,
			DnsNames:      record.DNSNames,
			Status:        statusToProto(record.Status),
			ExpiresAt:     record.ExpiresAt,
			IssuedAt:      record.IssuedAt,
			Metadata:      record.Metadata,
		}
	}

	return &pb.ListCertificatesResponse{
		Certificates: infos,
		// Pagination token reserved; the record count stays small enough
		// for a single response.
		NextPageToken: "",
	}, nil
}

// WatchCertificates streams expiry warnings for the requested
// certificates until the client disconnects. An empty id list watches
// everything.
func (s *CertAgentService) WatchCertificates(req *pb.WatchCertificatesRequest, stream pb.CertAgent_WatchCertificatesServer) error {
	interval := time.Duration(req.GetCheckIntervalSeconds()) * time.Second
	if interval <= 0 {
		interval = s.watcher.CheckInterval()
	}

	watched := make(map[string]struct{}, len(req.GetCertificateIds()))
	for _, id := range req.GetCertificateIds() {
		watched[id] = struct{}{}
	}

	s.logger.WithFields(map[string]interface{}{
		"watched":  len(watched),
		"interval": interval.String(),
	}).Info("Starting certificate watch")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("Certificate watch ended")
			return nil
		case <-ticker.C:
			if err := s.sendExpiryEvents(ctx, stream, watched); err != nil {
				return err
			}
		}
	}
}

// sendExpiryEvents emits one event per watched certificate inside the
// renewal threshold. Scan errors are reported on the stream as an
// unspecified event, keeping the watch alive.
func (s *CertAgentService) sendExpiryEvents(ctx context.Context, stream pb.CertAgent_WatchCertificatesServer, watched map[string]struct{}) error {
	expiring, err := s.lifecycle.ExpiringWithin(ctx, s.watcher.RenewalThresholdDays)
	if err != nil {
		s.logger.WithError(err).Error("Failed to check expiring certificates")
		return stream.Send(&pb.CertificateEvent{
			EventType: pb.CertificateEventType_CERTIFICATE_EVENT_TYPE_UNSPECIFIED,
			Message:   fmt.Sprintf("Error checking certificates: %v", err),
			Timestamp: time.Now().Unix(),
		})
	}

	now := time.Now().Unix()
	for _, record := range expiring {
		if len(watched) > 0 {
			if _, ok := watched[record.ID]; !ok {
				continue
			}
		}

		event := &pb.CertificateEvent{
			CertificateId: record.ID,
			EventType:     pb.CertificateEventType_CERTIFICATE_EVENT_TYPE_EXPIRING,
			Message:       fmt.Sprintf("Certificate expires in %d days", (record.ExpiresAt-now)/(24*60*60)),
			Timestamp:     now,
		}
		if err := stream.Send(event); err != nil {
			return err
		}
	}
	return nil
}

func statusToProto(status models.CertificateStatus) pb.CertificateStatus {
	switch status {
	case models.CertificateStatusActive:
		return pb.CertificateStatus_CERTIFICATE_STATUS_ACTIVE
	case models.CertificateStatusExpired:
		return pb.CertificateStatus_CERTIFICATE_STATUS_EXPIRED
	case models.CertificateStatusRevoked:
		return pb.CertificateStatus_CERTIFICATE_STATUS_REVOKED
	case models.CertificateStatusPending:
		return pb.CertificateStatus_CERTIFICATE_STATUS_PENDING
	default:
		return pb.CertificateStatus_CERTIFICATE_STATUS_UNSPECIFIED
	}
}

// protoToStatus maps the unspecified enum value to the empty status,
// which the store treats as "no filter".
func protoToStatus(status pb.CertificateStatus) models.CertificateStatus {
	switch status {
	case pb.CertificateStatus_CERTIFICATE_STATUS_ACTIVE:
		return models.CertificateStatusActive
	case pb.CertificateStatus_CERTIFICATE_STATUS_EXPIRED:
		return models.CertificateStatusExpired
	case pb.CertificateStatus_CERTIFICATE_STATUS_REVOKED:
		return models.CertificateStatusRevoked
	case pb.CertificateStatus_CERTIFICATE_STATUS_PENDING:
		return models.CertificateStatusPending
	default:
		return ""
	}
}
