package models

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflow_Validation(t *testing.T) {
	t.Parallel()

	validate := validator.New(validator.WithRequiredStructEnabled())

	tests := []struct {
		name     string
		workflow *Workflow
		wantErr  bool
	}{
		{
			name:     "valid flow workflow",
			workflow: &Workflow{Name: "Inbound routing", Kind: WorkflowKindFlow},
		},
		{
			name:     "valid funnel workflow",
			workflow: &Workflow{Name: "Sales funnel", Kind: WorkflowKindFunnel},
		},
		{
			name:     "name too short",
			workflow: &Workflow{Name: "ab", Kind: WorkflowKindFlow},
			wantErr:  true,
		},
		{
			name:     "missing kind",
			workflow: &Workflow{Name: "Inbound routing"},
			wantErr:  true,
		},
		{
			name:     "unknown kind",
			workflow: &Workflow{Name: "Inbound routing", Kind: "pipeline"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validate.Struct(tt.workflow)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWorkflow_NodeByID(t *testing.T) {
	t.Parallel()

	workflow := &Workflow{
		Nodes: []*Node{
			{ID: "a", Kind: NodeKindWhatsApp},
			{ID: "b", Kind: NodeKindSuccessEnd},
		},
	}

	require.NotNil(t, workflow.NodeByID("a"))
	assert.Equal(t, NodeKindWhatsApp, workflow.NodeByID("a").Kind)
	assert.Nil(t, workflow.NodeByID("missing"))
}

func TestWorkflow_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	original := &Workflow{
		ID:   "wf-1",
		Name: "Inbound routing",
		Kind: WorkflowKindFlow,
		Nodes: []*Node{
			{
				ID:        "src",
				Kind:      NodeKindLandingPage,
				PositionX: 40,
				PositionY: 80,
				Data:      NodeConfig{"label": "Landing Page", "isEditing": false},
			},
		},
		Edges: []*Edge{
			{
				ID:         "e1",
				Source:     "src",
				Target:     "end",
				SourcePort: PortTrue,
				Data:       EdgeData{Label: "qualified", Condition: "score > 50"},
			},
		},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Workflow

	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.Kind, decoded.Kind)
	require.Len(t, decoded.Nodes, 1)
	assert.Equal(t, "Landing Page", decoded.Nodes[0].Data.Label())
	assert.False(t, decoded.Nodes[0].Data.IsEditing())
	require.Len(t, decoded.Edges, 1)
	assert.True(t, decoded.Edges[0].IsPositiveBranch())
}

func TestKnownLeadSource(t *testing.T) {
	t.Parallel()

	assert.True(t, KnownLeadSource(LeadSourceWhatsApp))
	assert.True(t, KnownLeadSource(LeadSourceManualEntry))
	assert.False(t, KnownLeadSource("carrier_pigeon"))
	assert.False(t, KnownLeadSource(""))
}

func TestKnownLeadStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, KnownLeadStatus(LeadStatusNew))
	assert.True(t, KnownLeadStatus(LeadStatusSpam))
	assert.False(t, KnownLeadStatus("archived"))
}
