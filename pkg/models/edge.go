package models

// Decision output port names. A decision node distinguishes its outgoing
// branches by SourcePort; all other kinds leave it empty.
const (
	PortTrue  = "true"
	PortYes   = "yes"
	PortFalse = "false"
	PortNo    = "no"
)

// EdgeData carries the optional presentation and branching metadata of an
// edge.
type EdgeData struct {
	Label      string `json:"label,omitempty"`
	Condition  string `json:"condition,omitempty"`
	IsNegation bool   `json:"is_negation,omitempty"`
}

// Edge connects two nodes within the same workflow. Source and Target must
// reference node IDs present in the owning workflow; a dangling reference is
// a hard validation error.
type Edge struct {
	ID         string   `json:"id"                    validate:"required"`
	Source     string   `json:"source"                validate:"required"`
	Target     string   `json:"target"                validate:"required"`
	SourcePort string   `json:"source_port,omitempty"`
	Data       EdgeData `json:"data"`
}

// IsPositiveBranch reports whether the edge leaves a decision node through
// its affirmative port.
func (e *Edge) IsPositiveBranch() bool {
	return e.SourcePort == PortTrue || e.SourcePort == PortYes
}
