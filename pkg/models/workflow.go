package models

import "time"

// WorkflowKind selects the rule engine that governs a workflow's graph. The
// two kinds are not reconcilable: the open graph has no stage order, the
// funnel enforces one.
type WorkflowKind string

const (
	WorkflowKindFlow   WorkflowKind = "flow"   // Open graph, category-based connection rules
	WorkflowKindFunnel WorkflowKind = "funnel" // Fixed sales-stage progression
)

// Workflow is the aggregate owning its nodes and edges; neither is shared
// between workflows. The engine never persists a workflow itself, it only
// validates whatever it is given.
type Workflow struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"                 validate:"required,min=3"`
	Description string         `json:"description"`
	Kind        WorkflowKind   `json:"kind"                 validate:"required,oneof=flow funnel"`
	Nodes       []*Node        `json:"nodes"`
	Edges       []*Edge        `json:"edges"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Owner       string         `json:"owner"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   *time.Time     `json:"deleted_at,omitempty"`
}

// NodeByID returns the node with the given ID, or nil when absent.
func (w *Workflow) NodeByID(id string) *Node {
	for _, node := range w.Nodes {
		if node.ID == id {
			return node
		}
	}

	return nil
}
