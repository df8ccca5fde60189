package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hometrack/hometrack-api/internal/auth"
	"github.com/hometrack/hometrack-api/internal/handlers"
	"github.com/hometrack/hometrack-api/internal/middleware"
	"github.com/hometrack/hometrack-api/internal/services"
	"github.com/hometrack/hometrack-api/pkg/logging"
	"github.com/spf13/cobra"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	AutoMigrate     bool
	ShutdownTimeout time.Duration
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.AutoMigrate, "auto-migrate", true, "migrate the database before serving")
	cmd.Flags().DurationVar(&opts.ShutdownTimeout, "shutdown-timeout", 10*time.Second, "grace period for in-flight requests")

	return cmd
}

func runServe(ctx context.Context, opts *ServeOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.Setup(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	store, closeStore, err := openStore(ctx, cfg, opts.AutoMigrate)
	if err != nil {
		return err
	}
	defer closeStore()

	router := handlers.NewRouter(handlers.RouterConfig{
		Store:  store,
		Tokens: auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		Recipes: services.NewRecipeService(services.RecipeConfig{
			APIKey:  cfg.SpoonacularAPIKey,
			BaseURL: cfg.SpoonacularBaseURL,
			Cuisine: cfg.RecipeCuisine,
			Timeout: cfg.HTTPClientTimeout,
			Logger:  logger,
		}),
		AI:                 services.NewAIService(services.AIConfig{APIKey: cfg.OpenAIAPIKey}),
		Metrics:            middleware.NewMetrics(),
		Logger:             logger,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.HTTPClientTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", srv.Addr, "driver", cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}
