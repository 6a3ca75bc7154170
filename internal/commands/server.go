package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"portside/internal/api"
	"portside/internal/config"
	"portside/internal/ops"
	"portside/internal/storage"
	"portside/internal/storage/memstore"
	"portside/internal/storage/seed"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long:  `Start the HTTP API server with Echo framework`,
	RunE:  runServer,
}

func runServer(cmd *cobra.Command, args []string) error {
	stores, cleanup, err := buildStores(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer cleanup()

	// Create API server
	server := api.New(cfg, stores)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	// Start server in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		fmt.Println("\n⚠️  Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			cfg.Server.ShutdownTimeout,
		)
		defer cancel()

		// Graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		return nil

	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}

// buildStores wires the store backend selected by storage.backend and
// seeds it with the demo dataset. The returned cleanup releases any
// backend resources and is safe to call after shutdown.
func buildStores(cfg *config.Config) (ops.Stores, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		store := memstore.New()
		for _, c := range seed.Containers() {
			store.PutContainer(c)
		}
		for _, v := range seed.Vessels() {
			store.PutVessel(v)
		}
		fmt.Printf("✓ Seeded %d containers and %d vessels (memory backend)\n",
			len(seed.Containers()), len(seed.Vessels()))
		return ops.Stores{
			Containers: store,
			Vessels:    store,
			Gatepasses: store,
			SSRs:       store,
		}, func() {}, nil

	default:
		store, err := storage.New(cfg)
		if err != nil {
			return ops.Stores{}, nil, err
		}
		if err := store.Seed(); err != nil {
			store.Close()
			return ops.Stores{}, nil, fmt.Errorf("failed to seed database: %w", err)
		}
		return ops.Stores{
			Containers: store,
			Vessels:    store,
			Gatepasses: store,
			SSRs:       store,
		}, func() { store.Close() }, nil
	}
}
