package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	cli "github.com/urfave/cli/v3"

	"github.com/leadflowhq/leadflow/pkg/cmd"
	"github.com/leadflowhq/leadflow/pkg/intake"
	"github.com/leadflowhq/leadflow/pkg/log"
	"github.com/leadflowhq/leadflow/pkg/otelhelper"
)

func NewIntakeCommand() *cli.Command {
	return &cli.Command{
		Name:    "intake",
		Aliases: []string{"i"},
		Usage:   "Start the lead intake worker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "worker-id",
				Aliases: []string{"id"},
				Usage:   "Custom worker ID (auto-generated if not provided)",
				Value:   "",
				Sources: cli.EnvVars("WORKER_ID"),
			},
			&cli.StringFlag{
				Name:     "database-url",
				Usage:    "Database connection URL for persistence",
				Required: true,
				Sources:  cli.EnvVars("DATABASE_URL"),
			},
			&cli.StringFlag{
				Name:    "event-bus",
				Usage:   "Event bus provider (kafka, gochannel)",
				Value:   "gochannel",
				Sources: cli.EnvVars("EVENT_BUS_TYPE"),
			},
			&cli.StringFlag{
				Name:    "queue",
				Usage:   "Redis list the intake consumer pops from",
				Value:   "",
				Sources: cli.EnvVars("INTAKE_QUEUE"),
			},
			&cli.StringFlag{
				Name:    "redis-addr",
				Usage:   "Redis address (host:port)",
				Value:   "localhost:6379",
				Sources: cli.EnvVars("REDIS_ADDR"),
			},
			&cli.StringFlag{
				Name:    "redis-password",
				Usage:   "Redis password",
				Value:   "",
				Sources: cli.EnvVars("REDIS_PASSWORD"),
			},
			&cli.StringFlag{
				Name:    "redis-db",
				Usage:   "Redis database number",
				Value:   "0",
				Sources: cli.EnvVars("REDIS_DB"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "tracing",
				Usage:   "Enable OpenTelemetry tracing export",
				Value:   false,
				Sources: cli.EnvVars("OTEL_ENABLED"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			workerID := command.String("worker-id")
			if workerID == "" {
				workerID = fmt.Sprintf("intake-%s", uuid.New().String()[:8])
			}

			logger := log.WithModule("leadflow-intake").With("worker_id", workerID)
			logger.InfoContext(ctx, "Initializing lead intake worker")

			if command.Bool("tracing") {
				if _, err := otelhelper.NewTracer(ctx, "leadflow-intake"); err != nil {
					return fmt.Errorf("failed to initialize tracer: %w", err)
				}
			}

			persistence := cmd.NewPersistence(ctx, logger, command.String("database-url"))
			defer func() {
				if err := persistence.Close(ctx); err != nil {
					logger.ErrorContext(ctx, "Failed to close persistence", "error", err)
				}
			}()

			eventBus := cmd.NewEventBus(command.String("event-bus"), logger)
			defer func() {
				if err := eventBus.Close(); err != nil {
					logger.ErrorContext(ctx, "Failed to close event bus", "error", err)
				}
			}()

			consumer := intake.NewConsumer(
				command.String("queue"),
				map[string]string{
					"addr":     command.String("redis-addr"),
					"password": command.String("redis-password"),
					"db":       command.String("redis-db"),
				},
				persistence,
				eventBus,
				logger,
			)

			if err := consumer.Start(ctx); err != nil {
				return fmt.Errorf("failed to start intake consumer: %w", err)
			}

			waitForShutdown(ctx, logger)

			return consumer.Stop(ctx)
		},
	}
}

func waitForShutdown(ctx context.Context, logger *slog.Logger) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-signals:
		logger.InfoContext(ctx, "Received shutdown signal", "signal", sig.String())
	case <-ctx.Done():
		logger.InfoContext(ctx, "Context cancelled")
	}
}
