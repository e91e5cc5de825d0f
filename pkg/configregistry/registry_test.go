package configregistry_test

import (
	"testing"

	"github.com/leadflowhq/leadflow/pkg/configregistry"
	"github.com/leadflowhq/leadflow/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind models.NodeKind
		key  configregistry.Key
	}{
		{models.NodeKindWhatsApp, configregistry.KeyCaptureSettings},
		{models.NodeKindLandingPage, configregistry.KeyCaptureSettings},
		{models.NodeKindIf, configregistry.KeyConditionBuilder},
		{models.NodeKindSwitch, configregistry.KeyConditionBuilder},
		{models.NodeKindSpamDetector, configregistry.KeyFilterRules},
		{models.NodeKindLeadClassifier, configregistry.KeyFilterRules},
		{models.NodeKindAssignToUser, configregistry.KeyAssignment},
		{models.NodeKindSendEmail, configregistry.KeyMessageComposer},
		{models.NodeKindCreateTask, configregistry.KeyActionSettings},
		{models.NodeKindWaitMs, configregistry.KeyDelaySettings},
	}

	for _, tt := range tests {
		key, ok := configregistry.KeyOf(tt.kind)
		require.True(t, ok, "kind %s must have a config panel", tt.kind)
		assert.Equal(t, tt.key, key)
	}
}

func TestHasConfig_KindsWithoutPanel(t *testing.T) {
	t.Parallel()

	assert.False(t, configregistry.HasConfig(models.NodeKindSuccessEnd))
	assert.False(t, configregistry.HasConfig(models.NodeKindLeadEnricher))
	assert.False(t, configregistry.HasConfig("quantum_router"))
}

func TestValidateConfig_Capture(t *testing.T) {
	t.Parallel()

	err := configregistry.ValidateConfig(models.NodeKindLandingPage, models.NodeConfig{
		"label":        "Landing Page",
		"isEditing":    false,
		"capture_mode": "filtered",
		"auto_qualify": true,
	})
	require.NoError(t, err)

	err = configregistry.ValidateConfig(models.NodeKindLandingPage, models.NodeConfig{
		"capture_mode": "everything",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capture_settings")
}

func TestValidateConfig_AssignmentRequiresUser(t *testing.T) {
	t.Parallel()

	err := configregistry.ValidateConfig(models.NodeKindAssignToUser, models.NodeConfig{
		"user_id":  "u-42",
		"strategy": "round_robin",
	})
	require.NoError(t, err)

	err = configregistry.ValidateConfig(models.NodeKindAssignToUser, models.NodeConfig{
		"strategy": "round_robin",
	})
	assert.Error(t, err)
}

func TestValidateConfig_FilterRules(t *testing.T) {
	t.Parallel()

	err := configregistry.ValidateConfig(models.NodeKindSpamDetector, models.NodeConfig{
		"rules": []any{
			map[string]any{"field": "email", "operator": "matches", "value": ".*@spam.example"},
		},
		"threshold": 0.8,
	})
	require.NoError(t, err)

	err = configregistry.ValidateConfig(models.NodeKindSpamDetector, models.NodeConfig{
		"rules": []any{
			map[string]any{"field": "email", "operator": "resembles"},
		},
	})
	assert.Error(t, err)
}

func TestValidateConfig_DelaySchedule(t *testing.T) {
	t.Parallel()

	err := configregistry.ValidateConfig(models.NodeKindWaitUntil, models.NodeConfig{
		"schedule": "0 9 * * 1",
	})
	require.NoError(t, err)

	err = configregistry.ValidateConfig(models.NodeKindWaitUntil, models.NodeConfig{
		"schedule": "every monday at nine",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule")
}

func TestValidateConfig_KindWithoutPanelAcceptsAnything(t *testing.T) {
	t.Parallel()

	err := configregistry.ValidateConfig(models.NodeKindSuccessEnd, models.NodeConfig{
		"anything": 42,
	})
	assert.NoError(t, err)
}
