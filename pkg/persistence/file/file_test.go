package file_test

import (
	"context"
	"testing"
	"time"

	"github.com/leadflowhq/leadflow/pkg/models"
	"github.com/leadflowhq/leadflow/pkg/persistence/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorkflow(id, name string) *models.Workflow {
	return &models.Workflow{
		ID:   id,
		Name: name,
		Kind: models.WorkflowKindFlow,
		Nodes: []*models.Node{
			{ID: "src", Kind: models.NodeKindWhatsApp, Data: models.NodeConfig{"label": "WhatsApp", "isEditing": false}},
			{ID: "end", Kind: models.NodeKindSuccessEnd, Data: models.NodeConfig{"label": "Success", "isEditing": false}},
		},
		Edges: []*models.Edge{
			{ID: "e1", Source: "src", Target: "end"},
		},
	}
}

func TestPersistence_WorkflowLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	persistence := file.NewPersistence(t.TempDir())

	workflow := testWorkflow("wf-1", "intake")
	require.NoError(t, persistence.SaveWorkflow(ctx, workflow))
	assert.False(t, workflow.CreatedAt.IsZero())
	assert.False(t, workflow.UpdatedAt.IsZero())

	loaded, err := persistence.WorkflowByID(ctx, "wf-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "intake", loaded.Name)
	assert.Equal(t, models.WorkflowKindFlow, loaded.Kind)
	require.Len(t, loaded.Nodes, 2)
	require.Len(t, loaded.Edges, 1)
	assert.Equal(t, models.NodeKindWhatsApp, loaded.Nodes[0].Kind)

	require.NoError(t, persistence.DeleteWorkflow(ctx, "wf-1"))

	loaded, err = persistence.WorkflowByID(ctx, "wf-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestPersistence_WorkflowsNewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	persistence := file.NewPersistence(t.TempDir())

	older := testWorkflow("wf-old", "older")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	require.NoError(t, persistence.SaveWorkflow(ctx, older))

	newer := testWorkflow("wf-new", "newer")
	require.NoError(t, persistence.SaveWorkflow(ctx, newer))

	workflows, err := persistence.Workflows(ctx)
	require.NoError(t, err)
	require.Len(t, workflows, 2)
	assert.Equal(t, "wf-new", workflows[0].ID)
	assert.Equal(t, "wf-old", workflows[1].ID)
}

func TestPersistence_DeleteMissingWorkflowIsNotAnError(t *testing.T) {
	t.Parallel()

	persistence := file.NewPersistence(t.TempDir())

	assert.NoError(t, persistence.DeleteWorkflow(context.Background(), "ghost"))
}

func TestPersistence_LeadLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	persistence := file.NewPersistence(t.TempDir())

	lead := &models.Lead{
		ID:     "lead-1",
		Source: models.LeadSourceWhatsApp,
		Status: models.LeadStatusNew,
		Contact: models.Contact{
			Name:  "Ada",
			Phone: "+5511999990000",
		},
		Metadata: map[string]any{"message_id": "m1"},
		Tags:     []string{"whatsapp"},
	}

	require.NoError(t, persistence.SaveLead(ctx, lead))

	loaded, err := persistence.LeadByID(ctx, "lead-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, models.LeadSourceWhatsApp, loaded.Source)
	assert.Equal(t, "Ada", loaded.Contact.Name)
	assert.Equal(t, "m1", loaded.Metadata["message_id"])

	leads, err := persistence.Leads(ctx)
	require.NoError(t, err)
	assert.Len(t, leads, 1)
}

func TestPersistence_LeadByIDMissing(t *testing.T) {
	t.Parallel()

	persistence := file.NewPersistence(t.TempDir())

	lead, err := persistence.LeadByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, lead)
}

func TestPersistence_HealthCheck(t *testing.T) {
	t.Parallel()

	persistence := file.NewPersistence(t.TempDir())
	assert.NoError(t, persistence.HealthCheck(context.Background()))

	missing := file.NewPersistence("/nonexistent/leadflow-data")
	assert.Error(t, missing.HealthCheck(context.Background()))
}
