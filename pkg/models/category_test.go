package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOf_AllKindsClassified(t *testing.T) {
	t.Parallel()

	expected := map[NodeKind]Category{
		NodeKindWhatsApp:            CategorySource,
		NodeKindLandingPage:         CategorySource,
		NodeKindFacebook:            CategorySource,
		NodeKindInstagram:           CategorySource,
		NodeKindTikTok:              CategorySource,
		NodeKindEmailCampaign:       CategorySource,
		NodeKindManualEntry:         CategorySource,
		NodeKindLeadClassifier:      CategoryProcessing,
		NodeKindLeadEnricher:        CategoryProcessing,
		NodeKindSpamDetector:        CategoryProcessing,
		NodeKindLeadScoreCalculator: CategoryProcessing,
		NodeKindIf:                  CategoryDecision,
		NodeKindSwitch:              CategoryDecision,
		NodeKindRuleEngine:          CategoryDecision,
		NodeKindSendMessage:         CategoryAction,
		NodeKindSendEmail:           CategoryAction,
		NodeKindCreateTask:          CategoryAction,
		NodeKindAssignToUser:        CategoryAction,
		NodeKindPushToCRM:           CategoryAction,
		NodeKindWaitMs:              CategoryDelay,
		NodeKindWaitUntil:           CategoryDelay,
		NodeKindWaitForEvent:        CategoryDelay,
		NodeKindSuccessEnd:          CategoryEnd,
		NodeKindErrorEnd:            CategoryEnd,
	}

	for kind, want := range expected {
		category, ok := CategoryOf(kind)
		require.True(t, ok, "kind %s should be classified", kind)
		assert.Equal(t, want, category, "kind %s", kind)
	}

	assert.Len(t, AllKinds(), len(expected))
}

func TestCategoryOf_UnknownKinds(t *testing.T) {
	t.Parallel()

	for _, kind := range []NodeKind{"", "teleport", "origin", "sale", "decision"} {
		_, ok := CategoryOf(kind)
		assert.False(t, ok, "kind %q must not be classified", kind)
	}
}

func TestKindsByCategory_ReturnsCopy(t *testing.T) {
	t.Parallel()

	kinds := KindsByCategory(CategoryEnd)
	require.Len(t, kinds, 2)

	kinds[0] = "mutated"

	fresh := KindsByCategory(CategoryEnd)
	assert.Equal(t, NodeKindSuccessEnd, fresh[0])
}

func TestNode_IsCategory(t *testing.T) {
	t.Parallel()

	node := &Node{ID: "n1", Kind: NodeKindIf}
	assert.True(t, node.IsCategory(CategoryDecision))
	assert.False(t, node.IsCategory(CategoryAction))

	stage := &Node{ID: "n2", Kind: NodeKindOrigin}
	assert.False(t, stage.IsCategory(CategorySource), "funnel stages are outside the open taxonomy")
}
