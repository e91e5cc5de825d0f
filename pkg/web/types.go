// Package web provides HTTP request and response types for the workflow API.
package web

import "github.com/leadflowhq/leadflow/pkg/models"

// CreateWorkflowRequest represents the request body for creating a workflow.
type CreateWorkflowRequest struct {
	Name        string         `json:"name"        validate:"required,min=3"`
	Description string         `json:"description"`
	Kind        string         `json:"kind"        validate:"omitempty,oneof=flow funnel"`
	Nodes       []*models.Node `json:"nodes"`
	Edges       []*models.Edge `json:"edges"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Owner       string         `json:"owner"       validate:"required"`
}

// UpdateWorkflowRequest represents the request body for updating an existing
// workflow. Pointer fields distinguish "not sent" from "set to zero"; nodes
// and edges replace the whole graph when present.
type UpdateWorkflowRequest struct {
	Name        *string        `json:"name,omitempty"        validate:"omitempty,min=3"`
	Description *string        `json:"description,omitempty"`
	Kind        *string        `json:"kind,omitempty"        validate:"omitempty,oneof=flow funnel"`
	Nodes       []*models.Node `json:"nodes,omitempty"`
	Edges       []*models.Edge `json:"edges,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Owner       *string        `json:"owner,omitempty"`
}

// CheckConnectionRequest asks whether an edge between two existing nodes of a
// workflow would be legal under the workflow's rule engine.
type CheckConnectionRequest struct {
	SourceID string `json:"source_id" validate:"required"`
	TargetID string `json:"target_id" validate:"required"`
}

// IngestLeadRequest represents a raw lead submission. The payload is
// source-specific and normalized server-side.
type IngestLeadRequest struct {
	Source  string         `json:"source"  validate:"required"`
	Payload map[string]any `json:"payload"`
	Tags    []string       `json:"tags,omitempty"`
}

// NodeKindInfo describes one node kind of the palette: taxonomy placement,
// display label, initial configuration and the configuration panel it opens,
// if any.
type NodeKindInfo struct {
	Kind        models.NodeKind   `json:"kind"`
	Category    models.Category   `json:"category"`
	Label       string            `json:"label"`
	DefaultData models.NodeConfig `json:"default_data"`
	HasConfig   bool              `json:"has_config"`
	ConfigKey   string            `json:"config_key,omitempty"`
}
