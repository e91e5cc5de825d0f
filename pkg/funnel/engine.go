// Package funnel implements the fixed sales-stage rule set: a linear
// progression from origin to a dual sale/loss outcome, with branching
// allowed only at the decision stage.
package funnel

import (
	"fmt"

	"github.com/leadflowhq/leadflow/pkg/models"
)

// stageOrder is the fixed progression. Sale and loss share the terminal
// position conceptually but keep distinct indices for adjacency checks.
var stageOrder = []models.NodeKind{
	models.NodeKindOrigin,
	models.NodeKindLead,
	models.NodeKindQualification,
	models.NodeKindFollowUp,
	models.NodeKindOffer,
	models.NodeKindDecision,
	models.NodeKindSale,
	models.NodeKindLoss,
}

var stageIndex = func() map[models.NodeKind]int {
	index := make(map[models.NodeKind]int, len(stageOrder))
	for i, stage := range stageOrder {
		index[stage] = i
	}

	return index
}()

// Stages returns the funnel progression in order.
func Stages() []models.NodeKind {
	stages := make([]models.NodeKind, len(stageOrder))
	copy(stages, stageOrder)

	return stages
}

// StageIndex returns the position of a stage in the funnel, ok=false for
// kinds that are not funnel stages.
func StageIndex(kind models.NodeKind) (int, bool) {
	index, ok := stageIndex[kind]

	return index, ok
}

// NextStage returns the stage after the given one, ok=false at the end of
// the funnel.
func NextStage(kind models.NodeKind) (models.NodeKind, bool) {
	index, ok := stageIndex[kind]
	if !ok || index+1 >= len(stageOrder) {
		return "", false
	}

	return stageOrder[index+1], true
}

// PreviousStage returns the stage before the given one, ok=false at the
// start of the funnel.
func PreviousStage(kind models.NodeKind) (models.NodeKind, bool) {
	index, ok := stageIndex[kind]
	if !ok || index == 0 {
		return "", false
	}

	return stageOrder[index-1], true
}

// CanConnect decides edge legality under the funnel rules: adjacent forward
// progression only, except around the decision stage, which may branch to
// sale, loss, or back to follow-up, and which accepts edges only from
// offer. Sale and loss accept edges only from decision.
func CanConnect(source, target *models.Node) bool {
	if source == nil || target == nil {
		return false
	}

	sourceIndex, sourceOK := stageIndex[source.Kind]
	_, targetOK := stageIndex[target.Kind]

	if !sourceOK || !targetOK {
		return false
	}

	if source.Kind == models.NodeKindDecision {
		return target.Kind == models.NodeKindSale ||
			target.Kind == models.NodeKindLoss ||
			target.Kind == models.NodeKindFollowUp
	}

	if target.Kind == models.NodeKindDecision {
		return source.Kind == models.NodeKindOffer
	}

	if target.Kind == models.NodeKindSale || target.Kind == models.NodeKindLoss {
		return false
	}

	targetIndex := stageIndex[target.Kind]

	return targetIndex == sourceIndex+1
}

// Validate checks whether the graph is a complete funnel: at least one
// origin, at least one resolved outcome, and every decision node able to
// reach both a sale and a loss. A decision with only one resolved outcome
// invalidates the whole workflow.
func Validate(nodes []*models.Node, edges []*models.Edge) bool {
	return len(diagnose(nodes, edges)) == 0
}

// Diagnose is the enriched variant of Validate, itemizing why a funnel is
// incomplete. Validate remains the compatibility contract; Diagnose feeds
// richer API responses.
func Diagnose(nodes []*models.Node, edges []*models.Edge) models.ValidationResult {
	return models.NewValidationResult(diagnose(nodes, edges), nil)
}

func diagnose(nodes []*models.Node, edges []*models.Edge) []string {
	var errors []string

	kindByID := make(map[string]models.NodeKind, len(nodes))
	hasOrigin := false
	hasOutcome := false

	for _, node := range nodes {
		kindByID[node.ID] = node.Kind

		switch node.Kind {
		case models.NodeKindOrigin:
			hasOrigin = true
		case models.NodeKindSale, models.NodeKindLoss:
			hasOutcome = true
		}
	}

	if !hasOrigin {
		errors = append(errors, "funnel has no origin stage")
	}

	if !hasOutcome {
		errors = append(errors, "funnel has no sale or loss stage")
	}

	targetsBySource := make(map[string][]string, len(nodes))
	for _, e := range edges {
		targetsBySource[e.Source] = append(targetsBySource[e.Source], e.Target)
	}

	for _, node := range nodes {
		if node.Kind != models.NodeKindDecision {
			continue
		}

		if !reaches(node.ID, models.NodeKindSale, kindByID, targetsBySource) {
			errors = append(errors, fmt.Sprintf("decision node %s has no path to a sale stage", node.ID))
		}

		if !reaches(node.ID, models.NodeKindLoss, kindByID, targetsBySource) {
			errors = append(errors, fmt.Sprintf("decision node %s has no path to a loss stage", node.ID))
		}
	}

	return errors
}

// reaches walks outgoing edges from start looking for a node of the wanted
// kind. Follow-up loops back through the funnel, so a visited set guards
// against cycles.
func reaches(start string, want models.NodeKind, kindByID map[string]models.NodeKind, targetsBySource map[string][]string) bool {
	visited := map[string]bool{start: true}
	queue := append([]string(nil), targetsBySource[start]...)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}

		visited[current] = true

		if kindByID[current] == want {
			return true
		}

		queue = append(queue, targetsBySource[current]...)
	}

	return false
}
