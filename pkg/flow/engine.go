// Package flow implements connection legality and structural validation for
// open-graph workflows, where any category-to-category connection is legal
// unless a rule below forbids it.
package flow

import (
	"fmt"

	"github.com/leadflowhq/leadflow/pkg/models"
)

// CanConnect decides whether an edge from source to target is legal. The
// rules are ordered: the decision carve-out must be evaluated before the
// end-target restriction so that decision→end stays legal.
func CanConnect(source, target *models.Node) bool {
	if source == nil || target == nil {
		return false
	}

	sourceCategory, _ := models.CategoryOf(source.Kind)
	targetCategory, _ := models.CategoryOf(target.Kind)

	// End nodes are terminal: nothing originates there.
	if sourceCategory == models.CategoryEnd {
		return false
	}

	// Source nodes are roots: nothing terminates there.
	if targetCategory == models.CategorySource {
		return false
	}

	// Decisions may connect to anything; branches are resolved by port.
	if sourceCategory == models.CategoryDecision {
		return true
	}

	// No trivial source→end shortcut.
	if targetCategory == models.CategoryEnd {
		return sourceCategory != models.CategorySource
	}

	return true
}

// Validate performs a pure structural scan of the whole graph. Errors make
// the workflow non-runnable; warnings flag shapes that are legal but likely
// incomplete. Runs in O(nodes + edges) so callers can re-run it after every
// edit.
func Validate(nodes []*models.Node, edges []*models.Edge) models.ValidationResult {
	var errors, warnings []string

	nodeByID := make(map[string]*models.Node, len(nodes))
	for _, node := range nodes {
		nodeByID[node.ID] = node
	}

	outgoing := make(map[string]int, len(nodes))
	incoming := make(map[string]int, len(nodes))

	for _, edge := range edges {
		if _, ok := nodeByID[edge.Source]; !ok {
			errors = append(errors, fmt.Sprintf("edge %s references missing source node %s", edge.ID, edge.Source))
		}

		if _, ok := nodeByID[edge.Target]; !ok {
			errors = append(errors, fmt.Sprintf("edge %s references missing target node %s", edge.ID, edge.Target))
		}

		outgoing[edge.Source]++
		incoming[edge.Target]++
	}

	sourceCount := 0
	endCount := 0

	for _, node := range nodes {
		category, ok := models.CategoryOf(node.Kind)
		if !ok {
			continue
		}

		switch category {
		case models.CategorySource:
			sourceCount++

			if outgoing[node.ID] == 0 {
				warnings = append(warnings, fmt.Sprintf("source node %s has no outgoing connections", node.ID))
			}
		case models.CategoryDecision:
			if outgoing[node.ID] < 2 {
				warnings = append(warnings, fmt.Sprintf("decision node %s has fewer than two outgoing connections", node.ID))
			}
		case models.CategoryEnd:
			endCount++

			if incoming[node.ID] == 0 {
				warnings = append(warnings, fmt.Sprintf("end node %s has no incoming connections", node.ID))
			}
		}
	}

	if sourceCount == 0 {
		errors = append(errors, "workflow has no source node")
	}

	if endCount == 0 {
		errors = append(errors, "workflow has no end node")
	}

	return models.NewValidationResult(errors, warnings)
}
