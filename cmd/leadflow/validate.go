package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/leadflowhq/leadflow/pkg/cmd"
	"github.com/leadflowhq/leadflow/pkg/engine"
	"github.com/leadflowhq/leadflow/pkg/models"
)

var (
	ErrInvalidWorkflows = errors.New("invalid workflows found")
	ErrNoInput          = errors.New("either --file or --database-url is required")
)

func NewValidateCommand() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate workflows with the rule engine their kind selects",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to a workflow JSON file to validate",
			},
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "Database connection URL; validates every stored workflow",
				Sources: cli.EnvVars("DATABASE_URL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			logger := slog.With(
				"module", "leadflow",
				"action", "validate",
			)

			workflows, err := loadWorkflows(ctx, logger, command)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(os.Stdout, "Workflow Validation Results:")
			_, _ = fmt.Fprintln(os.Stdout, "============================")

			invalid := 0

			for _, workflow := range workflows {
				_, _ = fmt.Fprintf(os.Stdout, "\nWorkflow: %s (%s, kind=%s)\n", workflow.Name, workflow.ID, workflow.Kind)

				result := engine.ValidateWorkflow(workflow)

				for _, message := range result.Errors {
					_, _ = fmt.Fprintf(os.Stdout, "  error: %s\n", message)
				}

				for _, message := range result.Warnings {
					_, _ = fmt.Fprintf(os.Stdout, "  warning: %s\n", message)
				}

				if result.Valid {
					_, _ = fmt.Fprintln(os.Stdout, "  VALID")
				} else {
					_, _ = fmt.Fprintln(os.Stdout, "  INVALID")
					invalid++
				}
			}

			_, _ = fmt.Fprintf(os.Stdout, "\nValidation Summary:\n")
			_, _ = fmt.Fprintf(os.Stdout, "  Total workflows: %d\n", len(workflows))
			_, _ = fmt.Fprintf(os.Stdout, "  Invalid workflows: %d\n", invalid)

			if invalid > 0 {
				return fmt.Errorf("%w: %d", ErrInvalidWorkflows, invalid)
			}

			return nil
		},
	}
}

func loadWorkflows(ctx context.Context, logger *slog.Logger, command *cli.Command) ([]*models.Workflow, error) {
	if path := command.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read workflow file: %w", err)
		}

		var workflow models.Workflow
		if err := json.Unmarshal(data, &workflow); err != nil {
			return nil, fmt.Errorf("failed to parse workflow file: %w", err)
		}

		return []*models.Workflow{&workflow}, nil
	}

	databaseURL := command.String("database-url")
	if databaseURL == "" {
		return nil, ErrNoInput
	}

	persistence := cmd.NewPersistence(ctx, logger, databaseURL)

	defer func() {
		if err := persistence.Close(ctx); err != nil {
			logger.ErrorContext(ctx, "Failed to close persistence", "error", err)
		}
	}()

	workflows, err := persistence.Workflows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workflows: %w", err)
	}

	return workflows, nil
}
