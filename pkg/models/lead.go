package models

// LeadSource identifies the channel a lead arrived from. Values mirror the
// source node kinds of the taxonomy.
type LeadSource string

const (
	LeadSourceWhatsApp      LeadSource = "whatsapp"
	LeadSourceLandingPage   LeadSource = "landing_page"
	LeadSourceFacebook      LeadSource = "facebook"
	LeadSourceInstagram     LeadSource = "instagram"
	LeadSourceTikTok        LeadSource = "tiktok"
	LeadSourceEmailCampaign LeadSource = "email_campaign"
	LeadSourceManualEntry   LeadSource = "manual_entry"
)

// KnownLeadSource reports whether the source is one of the recognized
// channels. Unknown sources are normalized to manual entry.
func KnownLeadSource(source LeadSource) bool {
	switch source {
	case LeadSourceWhatsApp,
		LeadSourceLandingPage,
		LeadSourceFacebook,
		LeadSourceInstagram,
		LeadSourceTikTok,
		LeadSourceEmailCampaign,
		LeadSourceManualEntry:
		return true
	default:
		return false
	}
}

// LeadStatus is the lifecycle state of a lead record.
type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "new"
	LeadStatusProcessing   LeadStatus = "processing"
	LeadStatusQualified    LeadStatus = "qualified"
	LeadStatusDisqualified LeadStatus = "disqualified"
	LeadStatusSpam         LeadStatus = "spam"
	LeadStatusCompleted    LeadStatus = "completed"
)

// KnownLeadStatus reports whether the status is one of the recognized
// lifecycle states.
func KnownLeadStatus(status LeadStatus) bool {
	switch status {
	case LeadStatusNew,
		LeadStatusProcessing,
		LeadStatusQualified,
		LeadStatusDisqualified,
		LeadStatusSpam,
		LeadStatusCompleted:
		return true
	default:
		return false
	}
}

// Contact holds whatever contact fields the raw input carried. Missing
// fields stay empty rather than being defaulted.
type Contact struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

// Lead is the canonical prospective-customer record produced by the payload
// factory. Instances are independent and carry no back-reference to any
// workflow.
type Lead struct {
	ID       string         `json:"id"              validate:"required"`
	Source   LeadSource     `json:"source"          validate:"required"`
	Contact  Contact        `json:"contact"`
	Metadata map[string]any `json:"metadata"`
	Tags     []string       `json:"tags"`
	Score    *float64       `json:"score,omitempty"`
	Status   LeadStatus     `json:"status"          validate:"required"`
}

// MetadataTimestamp returns the normalization timestamp recorded in the
// lead's metadata, or "" when absent.
func (l *Lead) MetadataTimestamp() string {
	if l.Metadata == nil {
		return ""
	}

	timestamp, _ := l.Metadata["timestamp"].(string)

	return timestamp
}
