// Package engine selects the rule set applied to a workflow graph based on
// its kind.
package engine

import (
	"github.com/leadflowhq/leadflow/pkg/flow"
	"github.com/leadflowhq/leadflow/pkg/funnel"
	"github.com/leadflowhq/leadflow/pkg/models"
)

// Engine is the strategy applied to a workflow graph. Both implementations
// are stateless and safe for concurrent use.
type Engine interface {
	CanConnect(source, target *models.Node) bool
	Validate(nodes []*models.Node, edges []*models.Edge) models.ValidationResult
}

type flowEngine struct{}

func (flowEngine) CanConnect(source, target *models.Node) bool {
	return flow.CanConnect(source, target)
}

func (flowEngine) Validate(nodes []*models.Node, edges []*models.Edge) models.ValidationResult {
	return flow.Validate(nodes, edges)
}

type funnelEngine struct{}

func (funnelEngine) CanConnect(source, target *models.Node) bool {
	return funnel.CanConnect(source, target)
}

func (funnelEngine) Validate(nodes []*models.Node, edges []*models.Edge) models.ValidationResult {
	return funnel.Diagnose(nodes, edges)
}

// ForKind returns the engine for a workflow kind. Unknown kinds fall back to
// the open-graph rules, matching the default applied when workflows are
// created without an explicit kind.
func ForKind(kind models.WorkflowKind) Engine {
	if kind == models.WorkflowKindFunnel {
		return funnelEngine{}
	}

	return flowEngine{}
}

// ValidateWorkflow validates a workflow with the engine its kind selects.
func ValidateWorkflow(workflow *models.Workflow) models.ValidationResult {
	return ForKind(workflow.Kind).Validate(workflow.Nodes, workflow.Edges)
}
