package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dsyorkd/cert-agent/internal/api"
	"github.com/dsyorkd/cert-agent/internal/ca"
	"github.com/dsyorkd/cert-agent/internal/config"
	"github.com/dsyorkd/cert-agent/internal/errors"
	grpcserver "github.com/dsyorkd/cert-agent/internal/grpc/server"
	"github.com/dsyorkd/cert-agent/internal/logger"
	"github.com/dsyorkd/cert-agent/internal/services"
	"github.com/dsyorkd/cert-agent/internal/store"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cert-agent",
	Short: "Cert Agent - private CA and certificate lifecycle service",
	Long: `Cert Agent issues short-lived TLS certificates from a private CA over gRPC,
tracks their lifecycle in Redis, and renews expiring certificates
automatically. An admin HTTP API exposes health probes and a read-only
view of the certificate inventory.`,
	RunE: runServer,
}

var (
	configFile string
	logLevel   string
	logFormat  string
)

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "json", "log format (json, text)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Cert Agent %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
	},
}

func runServer(cmd *cobra.Command, args []string) error {
	log, err := logger.New(logger.Config{
		Level:  logLevel,
		Format: logFormat,
		Output: "stdout",
	})
	if err != nil {
		return errors.Wrapf(err, "failed to setup logger")
	}

	log.WithFields(map[string]interface{}{
		"version": version,
		"commit":  commit,
		"date":    date,
	}).Info("Starting Cert Agent")

	cfg, err := config.Load(configFile)
	if err != nil {
		return errors.Wrapf(err, "failed to load config")
	}

	// Initialize the Redis store
	st, err := store.New(&cfg.Redis, log)
	if err != nil {
		return errors.Wrapf(err, "failed to connect to redis")
	}
	defer st.Close()

	log.Info("Redis store initialized successfully")

	// Load or bootstrap the CA
	keystore, err := ca.Load(&cfg.Certificate, log)
	if err != nil {
		return errors.Wrapf(err, "failed to initialize CA")
	}

	// Build the service layer
	issuer, err := services.NewIssuer(&cfg.Certificate, keystore, st, log)
	if err != nil {
		return errors.Wrapf(err, "failed to initialize issuer")
	}
	lifecycle := services.NewLifecycle(st, log)
	renewer := services.NewRenewer(&cfg.Watcher, issuer, lifecycle, st, log)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	renewerCtx, renewerCancel := context.WithCancel(context.Background())
	defer renewerCancel()

	var wg sync.WaitGroup
	serverErrors := make(chan error, 3)

	// Start renewal watcher
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := renewer.Run(renewerCtx); err != nil && err != context.Canceled {
			serverErrors <- errors.Wrapf(err, "renewal watcher error")
		}
	}()

	// Start gRPC server
	grpcService := grpcserver.NewCertAgentService(issuer, lifecycle, &cfg.Watcher, log)
	grpcServer, err := grpcserver.New(&cfg.GRPC, log, grpcService)
	if err != nil {
		return errors.Wrapf(err, "failed to create gRPC server")
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := grpcServer.Start(); err != nil {
			serverErrors <- errors.Wrapf(err, "gRPC server error")
		}
	}()

	// Start admin API server
	apiServer := api.New(&cfg.API, log, st, keystore, lifecycle)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- errors.Wrapf(err, "API server error")
		}
	}()

	log.Info("All servers started successfully")

	// Wait for shutdown signal or server error
	select {
	case sig := <-sigChan:
		log.WithField("signal", sig.String()).Info("Received shutdown signal")
	case err := <-serverErrors:
		log.WithError(err).Error("Server error occurred")
	}

	// Graceful shutdown
	log.Info("Initiating graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	renewerCancel()

	go func() {
		if err := apiServer.Stop(shutdownCtx); err != nil {
			log.WithError(err).Error("Error stopping API server")
		}
	}()

	go func() {
		grpcServer.Stop()
	}()

	// Wait for all servers to stop or timeout
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("All servers stopped gracefully")
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	}

	log.Info("Cert Agent shutdown complete")
	return nil
}
