// Package persistence provides the data storage abstraction for workflows
// and leads.
package persistence

import (
	"context"

	"github.com/leadflowhq/leadflow/pkg/models"
)

type Persistence interface {
	Workflows(ctx context.Context) ([]*models.Workflow, error)
	SaveWorkflow(ctx context.Context, workflow *models.Workflow) error
	WorkflowByID(ctx context.Context, id string) (*models.Workflow, error)
	DeleteWorkflow(ctx context.Context, id string) error

	Leads(ctx context.Context) ([]*models.Lead, error)
	SaveLead(ctx context.Context, lead *models.Lead) error
	LeadByID(ctx context.Context, id string) (*models.Lead, error)

	HealthCheck(ctx context.Context) error

	Close(ctx context.Context) error
}
