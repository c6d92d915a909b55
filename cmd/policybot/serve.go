package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/davidbz/policybot/internal/config"
	"github.com/davidbz/policybot/internal/domain"
	"github.com/davidbz/policybot/internal/http"
	"github.com/davidbz/policybot/internal/observability"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the chatbot HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			container, err := buildContainer()
			if err != nil {
				return err
			}

			return container.Invoke(func(
				server *http.Server,
				chatbot *config.ChatbotConfig,
				pricing *domain.PricingTable,
				c *closers,
			) error {
				defer func() {
					if err := c.Close(); err != nil {
						observability.FromContext(context.Background()).Error("failed to release resources",
							observability.Error(err))
					}
				}()

				ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
				defer stop()

				if err := config.WatchPricing(ctx, chatbot.PricingFile, pricing); err != nil {
					return err
				}

				return serve(ctx, server)
			})
		},
	}
}

// serve runs the server until it fails or ctx is cancelled, then drains it.
func serve(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
