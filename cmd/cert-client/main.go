package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/dsyorkd/cert-agent/proto"
)

var (
	address    string
	commonName string
	timeout    time.Duration
)

var log = logrus.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cert-client",
	Short: "Smoke-test client for the cert-agent gRPC service",
	Long: `cert-client exercises the full certificate lifecycle against a running
cert-agent: issue, status lookup, listing, revocation, and not-found
handling.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&address, "address", "a", "localhost:50051", "cert-agent gRPC address")
	rootCmd.Flags().StringVar(&commonName, "common-name", "test.example.com", "common name for the issued certificate")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "per-RPC timeout")

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func run(cmd *cobra.Command, args []string) error {
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	client := pb.NewCertAgentClient(conn)
	log.WithField("address", address).Info("Connected to cert-agent")

	cert, err := issueCertificate(client)
	if err != nil {
		return err
	}

	checkStatus(client, cert.CertificateId)
	listCertificates(client)
	revokeCertificate(client, cert.CertificateId)
	checkNotFound(client)

	log.Info("All checks completed")
	return nil
}

func issueCertificate(client pb.CertAgentClient) (*pb.IssueCertificateResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.IssueCertificate(ctx, &pb.IssueCertificateRequest{
		CommonName:         commonName,
		DnsNames:           []string{commonName, "*." + commonName},
		IpAddresses:        []string{"127.0.0.1"},
		ValidityDays:       365,
		Organization:       "Test Organization",
		OrganizationalUnit: "IT Department",
		Country:            "US",
		State:              "California",
		Locality:           "San Francisco",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue certificate: %w", err)
	}

	log.WithFields(logrus.Fields{
		"certificate_id": resp.CertificateId,
		"status":         resp.Status.String(),
		"expires_at":     time.Unix(resp.ExpiresAt, 0).UTC().Format(time.RFC3339),
	}).Info("Certificate issued")
	return resp, nil
}

func checkStatus(client pb.CertAgentClient, id string) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetCertificateStatus(ctx, &pb.GetCertificateStatusRequest{CertificateId: id})
	if err != nil {
		log.WithError(err).Error("Failed to get certificate status")
		return
	}

	log.WithFields(logrus.Fields{
		"common_name": resp.CommonName,
		"dns_names":   resp.DnsNames,
		"status":      resp.Status.String(),
	}).Info("Certificate status retrieved")
}

func listCertificates(client pb.CertAgentClient) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListCertificates(ctx, &pb.ListCertificatesRequest{
		Status:   pb.CertificateStatus_CERTIFICATE_STATUS_UNSPECIFIED,
		PageSize: 10,
	})
	if err != nil {
		log.WithError(err).Error("Failed to list certificates")
		return
	}

	log.WithField("count", len(resp.Certificates)).Info("Listed certificates")
	for _, info := range resp.Certificates {
		log.WithFields(logrus.Fields{
			"certificate_id": info.CertificateId,
			"common_name":    info.CommonName,
			"status":         info.Status.String(),
		}).Info("Certificate")
	}
}

func revokeCertificate(client pb.CertAgentClient, id string) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RevokeCertificate(ctx, &pb.RevokeCertificateRequest{
		CertificateId: id,
		Reason:        "Test revocation",
	})
	if err != nil {
		log.WithError(err).Error("Failed to revoke certificate")
		return
	}

	if resp.Success {
		log.WithField("certificate_id", id).Info("Certificate revoked")
	} else {
		log.WithField("message", resp.Message).Error("Revocation rejected")
	}
}

// checkNotFound confirms that an unknown id maps to codes.NotFound
func checkNotFound(client pb.CertAgentClient) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, err := client.GetCertificateStatus(ctx, &pb.GetCertificateStatusRequest{
		CertificateId: "non-existent-id",
	})
	if err == nil {
		log.Warn("Unexpectedly found a non-existent certificate")
		return
	}

	if status.Code(err) == codes.NotFound {
		log.Info("Not-found error handled correctly")
	} else {
		log.WithError(err).Error("Unexpected error for unknown certificate")
	}
}
