// Package lead normalizes heterogeneous inbound payloads into canonical
// lead records. The factory is a pure transform: it never stores anything
// and produces a complete, well-typed lead for any input.
package lead

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leadflowhq/leadflow/pkg/models"
)

// Field synonym chains, first match wins. Camel and snake variants cover the
// payload shapes the channels actually send.
var (
	nameKeys     = []string{"name", "full_name", "fullName", "contact_name", "contactName"}
	phoneKeys    = []string{"phone", "phone_number", "phoneNumber", "mobile"}
	emailKeys    = []string{"email", "email_address", "emailAddress"}
	whatsappKeys = []string{"whatsapp", "whatsapp_number", "whatsappNumber"}

	ipKeys        = []string{"ip", "ip_address", "ipAddress"}
	userAgentKeys = []string{"user_agent", "userAgent"}
	referrerKeys  = []string{"referrer", "referer"}
)

// Normalize converts a raw, source-specific payload into a canonical lead.
// Absent optional fields are never errors: safe defaults are substituted
// instead. Unknown sources are coerced to manual entry.
func Normalize(source models.LeadSource, raw map[string]any) *models.Lead {
	if raw == nil {
		raw = map[string]any{}
	}

	if !models.KnownLeadSource(source) {
		source = models.LeadSourceManualEntry
	}

	lead := &models.Lead{
		ID:       NewLeadID(),
		Source:   source,
		Contact:  extractContact(raw),
		Metadata: extractMetadata(source, raw),
		Status:   models.LeadStatusNew,
	}

	if status, ok := stringValue(raw, "status"); ok && models.KnownLeadStatus(models.LeadStatus(status)) {
		lead.Status = models.LeadStatus(status)
	}

	if score, ok := numberValue(raw, "score"); ok {
		lead.Score = &score
	}

	lead.Tags = extractTags(source, raw)

	return lead
}

// Restore fills in defaults for any fields missing from a partially
// specified lead, typically one reloaded from persistence. ID and metadata
// timestamp are never regenerated when already present, so restoring an
// already-normalized lead is a no-op.
func Restore(partial *models.Lead) *models.Lead {
	if partial == nil {
		partial = &models.Lead{}
	}

	restored := *partial

	if restored.ID == "" {
		restored.ID = NewLeadID()
	}

	if !models.KnownLeadSource(restored.Source) {
		restored.Source = models.LeadSourceManualEntry
	}

	if !models.KnownLeadStatus(restored.Status) {
		restored.Status = models.LeadStatusNew
	}

	if restored.Metadata == nil {
		restored.Metadata = map[string]any{}
	} else {
		metadata := make(map[string]any, len(restored.Metadata))
		for key, value := range restored.Metadata {
			metadata[key] = value
		}

		restored.Metadata = metadata
	}

	if _, ok := restored.Metadata["timestamp"].(string); !ok {
		restored.Metadata["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	}

	restored.Tags = dedupeTags(append([]string{string(restored.Source)}, partial.Tags...))

	return &restored
}

// NewLeadID builds a collision-resistant identifier from wall-clock time
// and randomness. The format is not load-bearing, only uniqueness within a
// session is.
func NewLeadID() string {
	return fmt.Sprintf("lead-%s-%s",
		strconv.FormatInt(time.Now().UTC().UnixMilli(), 36),
		strings.Split(uuid.NewString(), "-")[0],
	)
}

func extractContact(raw map[string]any) models.Contact {
	contact := models.Contact{}

	if name, ok := firstString(raw, nameKeys); ok {
		contact.Name = name
	}

	if phone, ok := firstString(raw, phoneKeys); ok {
		contact.Phone = phone
	}

	if email, ok := firstString(raw, emailKeys); ok {
		contact.Email = email
	}

	if whatsapp, ok := firstString(raw, whatsappKeys); ok {
		contact.WhatsApp = whatsapp
	} else {
		// WhatsApp identity falls back to the phone number.
		contact.WhatsApp = contact.Phone
	}

	return contact
}

func extractMetadata(source models.LeadSource, raw map[string]any) map[string]any {
	metadata := map[string]any{}

	if ip, ok := firstString(raw, ipKeys); ok {
		metadata["ip"] = ip
	}

	if userAgent, ok := firstString(raw, userAgentKeys); ok {
		metadata["user_agent"] = userAgent
	}

	if referrer, ok := firstString(raw, referrerKeys); ok {
		metadata["referrer"] = referrer
	}

	if timestamp, ok := stringValue(raw, "timestamp"); ok {
		metadata["timestamp"] = timestamp
	} else {
		metadata["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	}

	switch source {
	case models.LeadSourceLandingPage:
		copyField(metadata, raw, "form", "form_data", "formData")
		copyField(metadata, raw, "page_url", "page_url", "pageUrl", "url")
		copyField(metadata, raw, "utm_source", "utm_source")
		copyField(metadata, raw, "utm_medium", "utm_medium")
		copyField(metadata, raw, "utm_campaign", "utm_campaign")
		copyField(metadata, raw, "utm_term", "utm_term")
		copyField(metadata, raw, "utm_content", "utm_content")
	case models.LeadSourceWhatsApp:
		copyField(metadata, raw, "message_id", "message_id", "messageId")
		copyField(metadata, raw, "chat_id", "chat_id", "chatId")
		copyField(metadata, raw, "message", "message", "text")
	case models.LeadSourceEmailCampaign:
		copyField(metadata, raw, "campaign_id", "campaign_id", "campaignId")
		copyField(metadata, raw, "email_id", "email_id", "emailId")
		copyField(metadata, raw, "clicked_link", "clicked_link", "clickedLink")
	case models.LeadSourceFacebook, models.LeadSourceInstagram, models.LeadSourceTikTok:
		copyField(metadata, raw, "post_id", "post_id", "postId")
		copyField(metadata, raw, "comment_id", "comment_id", "commentId")
		copyField(metadata, raw, "ad_id", "ad_id", "adId")
	case models.LeadSourceManualEntry:
		copyField(metadata, raw, "entered_by", "entered_by", "enteredBy", "user")
		copyField(metadata, raw, "reason", "reason", "entry_reason")
	}

	return metadata
}

func extractTags(source models.LeadSource, raw map[string]any) []string {
	tags := []string{string(source)}

	switch supplied := raw["tags"].(type) {
	case []string:
		tags = append(tags, supplied...)
	case []any:
		for _, value := range supplied {
			if tag, ok := value.(string); ok {
				tags = append(tags, tag)
			}
		}
	}

	if campaign, ok := stringValue(raw, "utm_campaign"); ok {
		tags = append(tags, "campaign:"+campaign)
	}

	if priority, ok := stringValue(raw, "priority"); ok {
		tags = append(tags, "priority:"+priority)
	}

	return dedupeTags(tags)
}

// MergeTags appends extra tags to a normalized tag list, deduplicating while
// keeping first-seen order.
func MergeTags(tags []string, extra []string) []string {
	return dedupeTags(append(append([]string{}, tags...), extra...))
}

// dedupeTags removes duplicates while keeping first-seen order, so equal
// input always yields the same tag list.
func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))

	for _, tag := range tags {
		if tag == "" {
			continue
		}

		if _, exists := seen[tag]; exists {
			continue
		}

		seen[tag] = struct{}{}
		result = append(result, tag)
	}

	return result
}

func firstString(raw map[string]any, keys []string) (string, bool) {
	for _, key := range keys {
		if value, ok := stringValue(raw, key); ok {
			return value, true
		}
	}

	return "", false
}

func stringValue(raw map[string]any, key string) (string, bool) {
	value, ok := raw[key].(string)
	if !ok || value == "" {
		return "", false
	}

	return value, true
}

func numberValue(raw map[string]any, key string) (float64, bool) {
	switch value := raw[key].(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	default:
		return 0, false
	}
}

func copyField(metadata, raw map[string]any, target string, sources ...string) {
	for _, source := range sources {
		if value, exists := raw[source]; exists && value != nil {
			metadata[target] = value

			return
		}
	}
}
