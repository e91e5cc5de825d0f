// Package models defines the core domain models for lead-routing workflows.
package models

// NodeKind identifies the operational type of a workflow node.
type NodeKind string

// Source kinds: channels a lead can arrive from. Every source kind doubles
// as a LeadSource value for the payload factory.
const (
	NodeKindWhatsApp      NodeKind = "whatsapp"
	NodeKindLandingPage   NodeKind = "landing_page"
	NodeKindFacebook      NodeKind = "facebook"
	NodeKindInstagram     NodeKind = "instagram"
	NodeKindTikTok        NodeKind = "tiktok"
	NodeKindEmailCampaign NodeKind = "email_campaign"
	NodeKindManualEntry   NodeKind = "manual_entry"
)

// Processing kinds: enrichment and classification steps.
const (
	NodeKindLeadClassifier      NodeKind = "lead_classifier"
	NodeKindLeadEnricher        NodeKind = "lead_enricher"
	NodeKindSpamDetector        NodeKind = "spam_detector"
	NodeKindLeadScoreCalculator NodeKind = "lead_score_calculator"
)

// Decision kinds: branching nodes with named output ports.
const (
	NodeKindIf         NodeKind = "if"
	NodeKindSwitch     NodeKind = "switch"
	NodeKindRuleEngine NodeKind = "rule_engine"
)

// Action kinds: outbound effects on a lead.
const (
	NodeKindSendMessage  NodeKind = "send_message"
	NodeKindSendEmail    NodeKind = "send_email"
	NodeKindCreateTask   NodeKind = "create_task"
	NodeKindAssignToUser NodeKind = "assign_to_user"
	NodeKindPushToCRM    NodeKind = "push_to_crm"
)

// Delay kinds.
const (
	NodeKindWaitMs       NodeKind = "wait_ms"
	NodeKindWaitUntil    NodeKind = "wait_until"
	NodeKindWaitForEvent NodeKind = "wait_for_event"
)

// End kinds: terminal nodes.
const (
	NodeKindSuccessEnd NodeKind = "success_end"
	NodeKindErrorEnd   NodeKind = "error_end"
)

// Funnel stage kinds used by fixed-funnel workflows. They form a linear
// progression and are disjoint from the open-graph taxonomy above.
const (
	NodeKindOrigin        NodeKind = "origin"
	NodeKindLead          NodeKind = "lead"
	NodeKindQualification NodeKind = "qualification"
	NodeKindFollowUp      NodeKind = "followup"
	NodeKindOffer         NodeKind = "offer"
	NodeKindDecision      NodeKind = "decision"
	NodeKindSale          NodeKind = "sale"
	NodeKindLoss          NodeKind = "loss"
)

// NodeConfig holds the kind-dependent configuration of a node. The "label"
// entry is always present after normalization through the default-data
// factory.
type NodeConfig map[string]any

// Label returns the node's display label, or "" when unset.
func (c NodeConfig) Label() string {
	label, _ := c["label"].(string)

	return label
}

// IsEditing reports whether the node is currently flagged as being edited
// by the (external) graph editor.
func (c NodeConfig) IsEditing() bool {
	editing, _ := c["isEditing"].(bool)

	return editing
}

// Node represents a node instance in a workflow graph.
type Node struct {
	ID        string     `json:"id"         validate:"required"`
	Kind      NodeKind   `json:"kind"       validate:"required"`
	PositionX int        `json:"position_x"`
	PositionY int        `json:"position_y"`
	Data      NodeConfig `json:"data"`
}

// Category returns the structural category of the node, with ok=false for
// kinds outside the open-graph taxonomy (funnel stages included).
func (n *Node) Category() (Category, bool) {
	return CategoryOf(n.Kind)
}

// IsCategory reports whether the node belongs to the given category.
func (n *Node) IsCategory(category Category) bool {
	c, ok := CategoryOf(n.Kind)

	return ok && c == category
}
