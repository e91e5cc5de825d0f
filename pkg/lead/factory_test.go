package lead_test

import (
	"testing"

	"github.com/leadflowhq/leadflow/pkg/lead"
	"github.com/leadflowhq/leadflow/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_WhatsAppMessage(t *testing.T) {
	t.Parallel()

	result := lead.Normalize(models.LeadSourceWhatsApp, map[string]any{
		"phone":     "+551199999999",
		"messageId": "m1",
		"chatId":    "c1",
		"message":   "hi, I want a quote",
	})

	assert.Equal(t, "+551199999999", result.Contact.Phone)
	assert.Equal(t, "+551199999999", result.Contact.WhatsApp, "whatsapp falls back to phone")
	assert.Equal(t, "m1", result.Metadata["message_id"])
	assert.Equal(t, "c1", result.Metadata["chat_id"])
	assert.Equal(t, "hi, I want a quote", result.Metadata["message"])
	assert.Contains(t, result.Tags, "whatsapp")
	assert.Equal(t, models.LeadStatusNew, result.Status)
	assert.NotEmpty(t, result.ID)
	assert.NotEmpty(t, result.Metadata["timestamp"])
}

func TestNormalize_LandingPageUTM(t *testing.T) {
	t.Parallel()

	result := lead.Normalize(models.LeadSourceLandingPage, map[string]any{
		"fullName":     "Maria Souza",
		"email":        "maria@example.com",
		"page_url":     "https://example.com/promo",
		"utm_source":   "google",
		"utm_medium":   "cpc",
		"utm_campaign": "spring",
		"ip":           "10.0.0.1",
		"user_agent":   "Mozilla/5.0",
	})

	assert.Equal(t, "Maria Souza", result.Contact.Name)
	assert.Equal(t, "maria@example.com", result.Contact.Email)
	assert.Equal(t, "https://example.com/promo", result.Metadata["page_url"])
	assert.Equal(t, "google", result.Metadata["utm_source"])
	assert.Equal(t, "cpc", result.Metadata["utm_medium"])
	assert.Equal(t, "spring", result.Metadata["utm_campaign"])
	assert.Equal(t, "10.0.0.1", result.Metadata["ip"])
	assert.Equal(t, "Mozilla/5.0", result.Metadata["user_agent"])
	assert.Contains(t, result.Tags, "campaign:spring")
	_, hasTerm := result.Metadata["utm_term"]
	assert.False(t, hasTerm, "absent UTM parameters stay absent")
}

func TestNormalize_TagDeduplication(t *testing.T) {
	t.Parallel()

	result := lead.Normalize(models.LeadSourceLandingPage, map[string]any{
		"tags":         []any{"vip", "vip"},
		"utm_campaign": "x",
	})

	counts := map[string]int{}
	for _, tag := range result.Tags {
		counts[tag]++
	}

	assert.Equal(t, 1, counts["landing_page"])
	assert.Equal(t, 1, counts["vip"])
	assert.Equal(t, 1, counts["campaign:x"])
}

func TestNormalize_TagOrderStable(t *testing.T) {
	t.Parallel()

	raw := map[string]any{"tags": []string{"vip", "inbound"}, "priority": "high"}

	first := lead.Normalize(models.LeadSourceFacebook, raw)
	second := lead.Normalize(models.LeadSourceFacebook, raw)

	assert.Equal(t, first.Tags, second.Tags)
	assert.Contains(t, first.Tags, "priority:high")
}

func TestNormalize_UnknownSourceBecomesManualEntry(t *testing.T) {
	t.Parallel()

	result := lead.Normalize("smoke_signal", map[string]any{"name": "Jo"})

	assert.Equal(t, models.LeadSourceManualEntry, result.Source)
	assert.Contains(t, result.Tags, "manual_entry")
}

func TestNormalize_ContactSynonymPriority(t *testing.T) {
	t.Parallel()

	result := lead.Normalize(models.LeadSourceManualEntry, map[string]any{
		"name":     "Primary",
		"fullName": "Secondary",
		"mobile":   "+5511988887777",
	})

	assert.Equal(t, "Primary", result.Contact.Name, "first synonym wins")
	assert.Equal(t, "+5511988887777", result.Contact.Phone)
}

func TestNormalize_MissingContactStaysEmpty(t *testing.T) {
	t.Parallel()

	result := lead.Normalize(models.LeadSourceManualEntry, map[string]any{})

	assert.Empty(t, result.Contact.Name)
	assert.Empty(t, result.Contact.Email)
	assert.Empty(t, result.Contact.Phone)
}

func TestNormalize_Score(t *testing.T) {
	t.Parallel()

	result := lead.Normalize(models.LeadSourceManualEntry, map[string]any{"score": 72.5})

	require.NotNil(t, result.Score)
	assert.InDelta(t, 72.5, *result.Score, 0.001)
}

func TestRestore_Idempotent(t *testing.T) {
	t.Parallel()

	normalized := lead.Normalize(models.LeadSourceWhatsApp, map[string]any{
		"phone":   "+551199999999",
		"chatId":  "c1",
		"tags":    []string{"vip"},
		"score":   10.0,
		"message": "hello",
	})

	restored := lead.Restore(normalized)

	assert.Equal(t, normalized.ID, restored.ID)
	assert.Equal(t, normalized.Metadata["timestamp"], restored.Metadata["timestamp"])
	assert.Equal(t, normalized.Tags, restored.Tags)
	assert.Equal(t, normalized.Contact, restored.Contact)
	assert.Equal(t, normalized.Status, restored.Status)
	assert.Equal(t, normalized.Metadata, restored.Metadata)
}

func TestRestore_FillsDefaults(t *testing.T) {
	t.Parallel()

	restored := lead.Restore(&models.Lead{Contact: models.Contact{Name: "Jo"}})

	assert.NotEmpty(t, restored.ID)
	assert.Equal(t, models.LeadSourceManualEntry, restored.Source)
	assert.Equal(t, models.LeadStatusNew, restored.Status)
	assert.NotEmpty(t, restored.Metadata["timestamp"])
	assert.Contains(t, restored.Tags, "manual_entry")
	assert.Equal(t, "Jo", restored.Contact.Name)
}

func TestRestore_PreservesExistingIdentity(t *testing.T) {
	t.Parallel()

	restored := lead.Restore(&models.Lead{
		ID:       "lead-abc",
		Source:   models.LeadSourceInstagram,
		Status:   models.LeadStatusQualified,
		Metadata: map[string]any{"timestamp": "2026-01-02T10:00:00Z"},
	})

	assert.Equal(t, "lead-abc", restored.ID)
	assert.Equal(t, "2026-01-02T10:00:00Z", restored.Metadata["timestamp"])
	assert.Equal(t, models.LeadStatusQualified, restored.Status)
}

func TestNewLeadID_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})

	for range 1000 {
		id := lead.NewLeadID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
