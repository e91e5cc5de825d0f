package flow_test

import (
	"testing"

	"github.com/leadflowhq/leadflow/pkg/flow"
	"github.com/leadflowhq/leadflow/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(id string, kind models.NodeKind) *models.Node {
	return &models.Node{ID: id, Kind: kind}
}

func edge(id, source, target string) *models.Edge {
	return &models.Edge{ID: id, Source: source, Target: target}
}

func TestCanConnect_EndNodesNeverOriginate(t *testing.T) {
	t.Parallel()

	for _, endKind := range models.KindsByCategory(models.CategoryEnd) {
		for _, targetKind := range models.AllKinds() {
			assert.False(t, flow.CanConnect(node("a", endKind), node("b", targetKind)),
				"%s -> %s must be illegal", endKind, targetKind)
		}
	}
}

func TestCanConnect_SourceNodesNeverTerminate(t *testing.T) {
	t.Parallel()

	for _, sourceKind := range models.AllKinds() {
		for _, targetKind := range models.KindsByCategory(models.CategorySource) {
			assert.False(t, flow.CanConnect(node("a", sourceKind), node("b", targetKind)),
				"%s -> %s must be illegal", sourceKind, targetKind)
		}
	}
}

func TestCanConnect_DecisionsConnectAnywhere(t *testing.T) {
	t.Parallel()

	for _, decisionKind := range models.KindsByCategory(models.CategoryDecision) {
		for _, targetKind := range models.AllKinds() {
			targetCategory, _ := models.CategoryOf(targetKind)
			if targetCategory == models.CategorySource {
				continue
			}

			assert.True(t, flow.CanConnect(node("a", decisionKind), node("b", targetKind)),
				"%s -> %s must be legal", decisionKind, targetKind)
		}
	}
}

func TestCanConnect_DecisionToEndIsLegal(t *testing.T) {
	t.Parallel()

	assert.True(t, flow.CanConnect(node("a", models.NodeKindIf), node("b", models.NodeKindSuccessEnd)))
}

func TestCanConnect_SourceToEndShortcutIsIllegal(t *testing.T) {
	t.Parallel()

	assert.False(t, flow.CanConnect(node("a", models.NodeKindWhatsApp), node("b", models.NodeKindSuccessEnd)))
}

func TestCanConnect_DefaultAllow(t *testing.T) {
	t.Parallel()

	assert.True(t, flow.CanConnect(node("a", models.NodeKindLeadEnricher), node("b", models.NodeKindSendEmail)))
	assert.True(t, flow.CanConnect(node("a", models.NodeKindWhatsApp), node("b", models.NodeKindSpamDetector)))
	assert.True(t, flow.CanConnect(node("a", models.NodeKindWaitMs), node("b", models.NodeKindErrorEnd)))
}

func TestCanConnect_NilNodes(t *testing.T) {
	t.Parallel()

	assert.False(t, flow.CanConnect(nil, node("b", models.NodeKindSendEmail)))
	assert.False(t, flow.CanConnect(node("a", models.NodeKindWhatsApp), nil))
}

func TestValidate_EmptyGraph(t *testing.T) {
	t.Parallel()

	result := flow.Validate(nil, nil)

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "no source")
	assert.Contains(t, result.Errors[1], "no end")
	assert.Empty(t, result.Warnings)
}

func TestValidate_MinimalRunnableGraph(t *testing.T) {
	t.Parallel()

	result := flow.Validate(
		[]*models.Node{node("a", models.NodeKindWhatsApp), node("b", models.NodeKindSuccessEnd)},
		[]*models.Edge{edge("e1", "a", "b")},
	)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_DanglingEdgeIsError(t *testing.T) {
	t.Parallel()

	result := flow.Validate(
		[]*models.Node{node("a", models.NodeKindWhatsApp), node("b", models.NodeKindSuccessEnd)},
		[]*models.Edge{edge("e1", "a", "b"), edge("e2", "a", "ghost")},
	)

	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "ghost")
}

func TestValidate_Warnings(t *testing.T) {
	t.Parallel()

	nodes := []*models.Node{
		node("src", models.NodeKindLandingPage),
		node("dec", models.NodeKindIf),
		node("end", models.NodeKindSuccessEnd),
	}
	edges := []*models.Edge{edge("e1", "dec", "end")}

	result := flow.Validate(nodes, edges)

	assert.True(t, result.Valid, "warnings never affect validity")
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "source node src")
	assert.Contains(t, result.Warnings[1], "decision node dec")
}

func TestValidate_UnreachedEndWarning(t *testing.T) {
	t.Parallel()

	nodes := []*models.Node{
		node("src", models.NodeKindWhatsApp),
		node("proc", models.NodeKindLeadClassifier),
		node("end", models.NodeKindSuccessEnd),
	}
	edges := []*models.Edge{edge("e1", "src", "proc")}

	result := flow.Validate(nodes, edges)

	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "end node end")
}

func TestValidate_UnknownKindsAreIgnored(t *testing.T) {
	t.Parallel()

	nodes := []*models.Node{
		node("src", models.NodeKindWhatsApp),
		node("odd", "quantum_router"),
		node("end", models.NodeKindSuccessEnd),
	}
	edges := []*models.Edge{edge("e1", "src", "odd"), edge("e2", "odd", "end")}

	result := flow.Validate(nodes, edges)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)
}
