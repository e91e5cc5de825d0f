// Package file provides file-based persistence for workflows and leads.
// Intended for local development and tests; each record is a JSON document
// under the configured root.
package file

import (
	"context"
	"os"
	"strings"

	"github.com/leadflowhq/leadflow/pkg/models"
	"github.com/leadflowhq/leadflow/pkg/persistence"
)

// Persistence implements the persistence.Persistence interface using the file system.
type Persistence struct {
	root         string
	workflowRepo *WorkflowRepository
	leadRepo     *LeadRepository
}

// NewPersistence creates a new instance of Persistence with the specified root directory.
func NewPersistence(root string) persistence.Persistence {
	cleanRoot := strings.Replace(root, "file://", "", 1)

	return &Persistence{
		root:         cleanRoot,
		workflowRepo: NewWorkflowRepository(cleanRoot),
		leadRepo:     NewLeadRepository(cleanRoot),
	}
}

// Close performs any necessary cleanup. For file-based persistence, there is nothing to clean up.
func (fp *Persistence) Close(_ context.Context) error {
	return nil
}

// HealthCheck checks if the file persistence layer is healthy by verifying the root directory exists.
func (fp *Persistence) HealthCheck(_ context.Context) error {
	if _, err := os.Stat(fp.root); os.IsNotExist(err) {
		return os.ErrNotExist
	}

	return nil
}

// Workflows returns all workflows stored under the root.
func (fp *Persistence) Workflows(ctx context.Context) ([]*models.Workflow, error) {
	return fp.workflowRepo.GetAll(ctx)
}

// WorkflowByID returns a workflow by its ID, nil when it does not exist.
func (fp *Persistence) WorkflowByID(ctx context.Context, id string) (*models.Workflow, error) {
	return fp.workflowRepo.GetByID(ctx, id)
}

// SaveWorkflow writes a workflow to disk, creating or replacing its file.
func (fp *Persistence) SaveWorkflow(ctx context.Context, workflow *models.Workflow) error {
	return fp.workflowRepo.Save(ctx, workflow)
}

// DeleteWorkflow removes a workflow file. Deleting a missing workflow is not an error.
func (fp *Persistence) DeleteWorkflow(ctx context.Context, id string) error {
	return fp.workflowRepo.Delete(ctx, id)
}

// Leads returns all leads stored under the root.
func (fp *Persistence) Leads(ctx context.Context) ([]*models.Lead, error) {
	return fp.leadRepo.GetAll(ctx)
}

// LeadByID returns a lead by its ID, nil when it does not exist.
func (fp *Persistence) LeadByID(ctx context.Context, id string) (*models.Lead, error) {
	return fp.leadRepo.GetByID(ctx, id)
}

// SaveLead writes a lead to disk, creating or replacing its file.
func (fp *Persistence) SaveLead(ctx context.Context, lead *models.Lead) error {
	return fp.leadRepo.Save(ctx, lead)
}
