package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/atrium-hq/atrium/pkg/cli/config"
	httpctrl "github.com/atrium-hq/atrium/pkg/controller/http"
	"github.com/atrium-hq/atrium/pkg/service/ai"
	"github.com/atrium-hq/atrium/pkg/service/notify"
	"github.com/atrium-hq/atrium/pkg/usecase"
	"github.com/atrium-hq/atrium/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var appCfg config.App
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var slackCfg config.Slack
	var archiveCfg config.Archive

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("ATRIUM_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, archiveCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			cfg, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load application configuration")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Error("failed to close repository", "error", err.Error())
				}
			}()

			// Gemini-backed summaries when configured, canned mock otherwise
			var aiSvc ai.Service
			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			if llmClient != nil {
				svc, err := ai.NewLLM(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize AI service")
				}
				aiSvc = svc
				logger.LogAttrs(ctx, slog.LevelInfo, "Gemini summarization enabled", geminiCfg.LogAttrs()...)
			} else {
				aiSvc = ai.NewMock()
				logger.Info("Gemini not configured, using mock AI service")
			}

			var notifyOpts []notify.Option
			slackSink, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure Slack sink")
			}
			if slackSink != nil {
				notifyOpts = append(notifyOpts, notify.WithSink(slackSink))
				logger.Info("Slack notifications enabled", "slack", slackCfg)
			}
			notifier := notify.New(notifyOpts...)

			archiver, err := archiveCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure minutes archive")
			}
			if archiver != nil {
				defer func() {
					if err := archiver.Close(); err != nil {
						logger.Error("failed to close archive service", "error", err.Error())
					}
				}()
				logger.Info("Minutes archiving enabled")
			}

			initialDelay, interval := cfg.Summary.Schedule()
			ucOpts := []usecase.Option{
				usecase.WithAIService(aiSvc),
				usecase.WithNotifier(notifier),
				usecase.WithLocation(cfg.Meeting.Location()),
				usecase.WithLifecycleOptions(usecase.WithRefreshSchedule(initialDelay, interval)),
			}
			if archiver != nil {
				ucOpts = append(ucOpts, usecase.WithArchiver(archiver))
			}

			uc := usecase.New(repo, ucOpts...)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logger.Info("Starting HTTP server", "addr", addr,
					"refresh_initial_delay", initialDelay,
					"refresh_interval", interval,
				)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("Received shutdown signal", "signal", sig)

				// End the running meeting so its summary worker stops and
				// the minutes are persisted before the process exits
				if _, err := uc.Lifecycle.End(ctx); err != nil {
					logger.Error("failed to finalize active meeting on shutdown", "error", err.Error())
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logger.Info("Server shutdown completed")
				return nil
			}
		},
	}
}
