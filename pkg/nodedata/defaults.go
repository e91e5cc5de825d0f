// Package nodedata produces the canonical initial configuration for freshly
// created workflow nodes.
package nodedata

import (
	"strings"

	"github.com/leadflowhq/leadflow/pkg/models"
)

var displayNames = map[models.NodeKind]string{
	models.NodeKindWhatsApp:            "WhatsApp",
	models.NodeKindLandingPage:         "Landing Page",
	models.NodeKindFacebook:            "Facebook",
	models.NodeKindInstagram:           "Instagram",
	models.NodeKindTikTok:              "TikTok",
	models.NodeKindEmailCampaign:       "Email Campaign",
	models.NodeKindManualEntry:         "Manual Entry",
	models.NodeKindLeadClassifier:      "Lead Classifier",
	models.NodeKindLeadEnricher:        "Lead Enricher",
	models.NodeKindSpamDetector:        "Spam Detector",
	models.NodeKindLeadScoreCalculator: "Lead Score",
	models.NodeKindIf:                  "If",
	models.NodeKindSwitch:              "Switch",
	models.NodeKindRuleEngine:          "Rule Engine",
	models.NodeKindSendMessage:         "Send Message",
	models.NodeKindSendEmail:           "Send Email",
	models.NodeKindCreateTask:          "Create Task",
	models.NodeKindAssignToUser:        "Assign to User",
	models.NodeKindPushToCRM:           "Push to CRM",
	models.NodeKindWaitMs:              "Wait",
	models.NodeKindWaitUntil:           "Wait Until",
	models.NodeKindWaitForEvent:        "Wait for Event",
	models.NodeKindSuccessEnd:          "Success",
	models.NodeKindErrorEnd:            "Error",
	models.NodeKindOrigin:              "Origin",
	models.NodeKindLead:                "Lead",
	models.NodeKindQualification:       "Qualification",
	models.NodeKindFollowUp:            "Follow-up",
	models.NodeKindOffer:               "Offer",
	models.NodeKindDecision:            "Decision",
	models.NodeKindSale:                "Sale",
	models.NodeKindLoss:                "Loss",
}

// DisplayName returns the user-facing label for a node kind. Kinds without a
// registered name get a humanized form of the kind itself, so the result is
// never empty for a non-empty kind.
func DisplayName(kind models.NodeKind) string {
	if name, ok := displayNames[kind]; ok {
		return name
	}

	if kind == "" {
		return "Node"
	}

	words := strings.Split(string(kind), "_")
	for i, word := range words {
		if word == "" {
			continue
		}

		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}

// DefaultData returns the canonical initial configuration for a node of the
// given kind. Total over all kinds: anything without bespoke defaults gets
// the base shape.
func DefaultData(kind models.NodeKind) models.NodeConfig {
	config := models.NodeConfig{
		"label":     DisplayName(kind),
		"isEditing": false,
	}

	category, ok := models.CategoryOf(kind)
	if !ok && kind != models.NodeKindOrigin {
		return config
	}

	switch {
	case category == models.CategorySource || kind == models.NodeKindOrigin:
		config["capture_mode"] = "all"
		config["auto_qualify"] = false
	case category == models.CategoryDecision:
		config["condition"] = ""
	}

	return config
}
