package nodedata_test

import (
	"testing"

	"github.com/leadflowhq/leadflow/pkg/models"
	"github.com/leadflowhq/leadflow/pkg/nodedata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultData_BaseShapeForAllKinds(t *testing.T) {
	t.Parallel()

	for _, kind := range models.AllKinds() {
		config := nodedata.DefaultData(kind)

		assert.NotEmpty(t, config.Label(), "kind %s must have a label", kind)
		editing, present := config["isEditing"].(bool)
		require.True(t, present, "kind %s must carry isEditing", kind)
		assert.False(t, editing, "kind %s starts out not editing", kind)
	}
}

func TestDefaultData_SourceDefaults(t *testing.T) {
	t.Parallel()

	config := nodedata.DefaultData(models.NodeKindLandingPage)

	assert.Equal(t, "all", config["capture_mode"])
	assert.Equal(t, false, config["auto_qualify"])
}

func TestDefaultData_DecisionDefaults(t *testing.T) {
	t.Parallel()

	config := nodedata.DefaultData(models.NodeKindIf)

	condition, present := config["condition"].(string)
	require.True(t, present)
	assert.Empty(t, condition)
}

func TestDefaultData_ActionHasOnlyBaseShape(t *testing.T) {
	t.Parallel()

	config := nodedata.DefaultData(models.NodeKindSendEmail)

	assert.Len(t, config, 2)
	assert.Equal(t, "Send Email", config.Label())
}

func TestDefaultData_UnknownKindFallsBack(t *testing.T) {
	t.Parallel()

	config := nodedata.DefaultData("quantum_router")

	assert.Equal(t, "Quantum Router", config.Label())
	assert.Equal(t, false, config["isEditing"])
	assert.Len(t, config, 2)
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "WhatsApp", nodedata.DisplayName(models.NodeKindWhatsApp))
	assert.Equal(t, "Follow-up", nodedata.DisplayName(models.NodeKindFollowUp))
	assert.Equal(t, "Cold Call", nodedata.DisplayName("cold_call"))
	assert.Equal(t, "Node", nodedata.DisplayName(""))
}
