// Package configregistry maps node kinds to the configuration panel each one
// opens in the dashboard and validates submitted configuration against the
// panel's contract.
package configregistry

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/xeipuuv/gojsonschema"

	"github.com/leadflowhq/leadflow/pkg/models"
)

// Key identifies a configuration panel. Several kinds can share one panel.
type Key string

const (
	KeyCaptureSettings  Key = "capture_settings"
	KeyAssignment       Key = "assignment"
	KeyMessageComposer  Key = "message_composer"
	KeyConditionBuilder Key = "condition_builder"
	KeyFilterRules      Key = "filter_rules"
	KeyActionSettings   Key = "action_settings"
	KeyDelaySettings    Key = "delay_settings"
)

var keyByKind = func() map[models.NodeKind]Key {
	keys := make(map[models.NodeKind]Key)

	for _, kind := range models.KindsByCategory(models.CategorySource) {
		keys[kind] = KeyCaptureSettings
	}

	for _, kind := range models.KindsByCategory(models.CategoryDecision) {
		keys[kind] = KeyConditionBuilder
	}

	for _, kind := range models.KindsByCategory(models.CategoryDelay) {
		keys[kind] = KeyDelaySettings
	}

	keys[models.NodeKindSpamDetector] = KeyFilterRules
	keys[models.NodeKindLeadClassifier] = KeyFilterRules
	keys[models.NodeKindAssignToUser] = KeyAssignment
	keys[models.NodeKindSendMessage] = KeyMessageComposer
	keys[models.NodeKindSendEmail] = KeyMessageComposer
	keys[models.NodeKindCreateTask] = KeyActionSettings
	keys[models.NodeKindPushToCRM] = KeyActionSettings

	return keys
}()

// schemas holds the JSON Schema contract per panel. The base node fields
// (label, isEditing) are always allowed on top of each contract.
var schemas = map[Key]map[string]any{
	KeyCaptureSettings: {
		"type": "object",
		"properties": map[string]any{
			"capture_mode": map[string]any{
				"type": "string",
				"enum": []any{"all", "filtered", "manual"},
			},
			"auto_qualify": map[string]any{"type": "boolean"},
		},
	},
	KeyAssignment: {
		"type": "object",
		"properties": map[string]any{
			"user_id":  map[string]any{"type": "string", "minLength": 1},
			"strategy": map[string]any{
				"type": "string",
				"enum": []any{"direct", "round_robin", "least_loaded"},
			},
		},
		"required": []any{"user_id"},
	},
	KeyMessageComposer: {
		"type": "object",
		"properties": map[string]any{
			"subject":  map[string]any{"type": "string"},
			"template": map[string]any{"type": "string", "minLength": 1},
			"channel": map[string]any{
				"type": "string",
				"enum": []any{"whatsapp", "email", "sms"},
			},
		},
		"required": []any{"template"},
	},
	KeyConditionBuilder: {
		"type": "object",
		"properties": map[string]any{
			"condition": map[string]any{"type": "string"},
			"cases": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
	},
	KeyFilterRules: {
		"type": "object",
		"properties": map[string]any{
			"rules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"field":    map[string]any{"type": "string", "minLength": 1},
						"operator": map[string]any{
							"type": "string",
							"enum": []any{"equals", "contains", "gt", "lt", "matches"},
						},
						"value": map[string]any{},
					},
					"required": []any{"field", "operator"},
				},
			},
			"threshold": map[string]any{"type": "number"},
		},
	},
	KeyActionSettings: {
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string"},
			"destination": map[string]any{"type": "string"},
			"payload":     map[string]any{"type": "object"},
		},
	},
	KeyDelaySettings: {
		"type": "object",
		"properties": map[string]any{
			"duration_ms": map[string]any{"type": "integer", "minimum": float64(0)},
			"until":       map[string]any{"type": "string"},
			"event":       map[string]any{"type": "string"},
			"schedule":    map[string]any{"type": "string"},
		},
	},
}

// HasConfig reports whether a node kind opens a configuration panel.
func HasConfig(kind models.NodeKind) bool {
	_, ok := keyByKind[kind]

	return ok
}

// KeyOf returns the configuration panel for a node kind, ok=false for kinds
// without one.
func KeyOf(kind models.NodeKind) (Key, bool) {
	key, ok := keyByKind[kind]

	return key, ok
}

// ValidateConfig checks a node's configuration against the contract of its
// kind's panel. Kinds without a panel accept any configuration. The base
// fields label and isEditing are stripped before matching so every panel
// contract stays focused on its own settings.
func ValidateConfig(kind models.NodeKind, config models.NodeConfig) error {
	key, ok := keyByKind[kind]
	if !ok {
		return nil
	}

	settings := make(map[string]any, len(config))
	for field, value := range config {
		if field == "label" || field == "isEditing" {
			continue
		}

		settings[field] = value
	}

	schemaLoader := gojsonschema.NewGoLoader(schemas[key])
	dataLoader := gojsonschema.NewGoLoader(settings)

	result, err := gojsonschema.Validate(schemaLoader, dataLoader)
	if err != nil {
		return fmt.Errorf("failed to validate %s config: %w", key, err)
	}

	if !result.Valid() {
		var descriptions []string
		for _, desc := range result.Errors() {
			descriptions = append(descriptions, desc.String())
		}

		return fmt.Errorf("invalid %s config: %s", key, strings.Join(descriptions, "; "))
	}

	if key == KeyDelaySettings {
		return validateSchedule(settings)
	}

	return nil
}

// validateSchedule checks the optional cron expression of delay settings.
// Standard 5-field format.
func validateSchedule(settings map[string]any) error {
	expression, ok := settings["schedule"].(string)
	if !ok || expression == "" {
		return nil
	}

	if _, err := cron.ParseStandard(expression); err != nil {
		return fmt.Errorf("invalid delay schedule %q: %w", expression, err)
	}

	return nil
}
