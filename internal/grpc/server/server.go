package server

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/dsyorkd/cert-agent/internal/config"
	"github.com/dsyorkd/cert-agent/internal/logger"
	pb "github.com/dsyorkd/cert-agent/proto"
)

// Server wraps the gRPC listener and the CertAgent service registration
type Server struct {
	config *config.GRPCConfig
	logger logger.Interface
	server *grpc.Server
}

// New creates a new gRPC server instance
func New(cfg *config.GRPCConfig, log logger.Interface, svc *CertAgentService) (*Server, error) {
	var opts []grpc.ServerOption

	// Add TLS credentials if configured
	if cfg.IsTLSEnabled() {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCertFile, cfg.TLSKeyFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, grpc.Creds(creds))
	}

	opts = append(opts,
		grpc.MaxRecvMsgSize(cfg.MaxMessageSize),
		grpc.MaxSendMsgSize(cfg.MaxMessageSize),
		grpc.UnaryInterceptor(loggingInterceptor(log)),
		grpc.StreamInterceptor(streamLoggingInterceptor(log)),
	)

	grpcServer := grpc.NewServer(opts...)
	pb.RegisterCertAgentServer(grpcServer, svc)

	return &Server{
		config: cfg,
		logger: log,
		server: grpcServer,
	}, nil
}

// Start starts the gRPC server
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.config.BindAddress)
	if err != nil {
		return err
	}

	s.logger.WithField("address", s.config.BindAddress).Info("Starting gRPC server")
	return s.server.Serve(listener)
}

// Stop gracefully stops the gRPC server
func (s *Server) Stop() {
	s.logger.Info("Shutting down gRPC server")
	s.server.GracefulStop()
}

// loggingInterceptor provides request logging for unary RPCs
func loggingInterceptor(log logger.Interface) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()

		resp, err := handler(ctx, req)

		fields := map[string]interface{}{
			"method":   info.FullMethod,
			"duration": time.Since(start).String(),
		}
		if err != nil {
			log.WithFields(fields).WithError(err).Warn("gRPC request failed")
		} else {
			log.WithFields(fields).Debug("gRPC request completed")
		}

		return resp, err
	}
}

// streamLoggingInterceptor provides request logging for streaming RPCs
func streamLoggingInterceptor(log logger.Interface) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		log.WithField("method", info.FullMethod).Debug("gRPC stream started")

		err := handler(srv, ss)

		fields := map[string]interface{}{
			"method":   info.FullMethod,
			"duration": time.Since(start).String(),
		}
		if err != nil {
			log.WithFields(fields).WithError(err).Warn("gRPC stream closed with error")
		} else {
			log.WithFields(fields).Debug("gRPC stream completed")
		}

		return err
	}
}
