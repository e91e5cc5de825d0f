// Package web provides HTTP handlers and REST API endpoints for workflow
// management and lead capture.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/leadflowhq/leadflow/pkg/configregistry"
	"github.com/leadflowhq/leadflow/pkg/engine"
	"github.com/leadflowhq/leadflow/pkg/eventbus"
	"github.com/leadflowhq/leadflow/pkg/events"
	"github.com/leadflowhq/leadflow/pkg/lead"
	"github.com/leadflowhq/leadflow/pkg/models"
	"github.com/leadflowhq/leadflow/pkg/nodedata"
	"github.com/leadflowhq/leadflow/pkg/persistence"
	"github.com/leadflowhq/leadflow/pkg/workflow"
)

type APIHandlers struct {
	repository  *workflow.Repository
	persistence persistence.Persistence
	publisher   eventbus.EventPublisher
	validator   *validator.Validate
	logger      *slog.Logger
}

func NewAPIHandlers(
	repository *workflow.Repository,
	store persistence.Persistence,
	publisher eventbus.EventPublisher,
	validator *validator.Validate,
	logger *slog.Logger,
) *APIHandlers {
	return &APIHandlers{
		repository:  repository,
		persistence: store,
		publisher:   publisher,
		validator:   validator,
		logger:      logger.With("module", "web"),
	}
}

func (h *APIHandlers) GetWorkflows(c fiber.Ctx) error {
	workflows, err := h.repository.FetchAll(c.Context())
	if err != nil {
		return handleRepositoryError(c, err)
	}

	if kind := c.Query("kind"); kind != "" {
		workflows = filterByKind(workflows, models.WorkflowKind(kind))
	}

	if owner := c.Query("owner"); owner != "" {
		workflows = filterByOwner(workflows, owner)
	}

	return c.JSON(fiber.Map{
		"workflows": workflows,
		"count":     len(workflows),
	})
}

func (h *APIHandlers) GetWorkflow(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	wf, err := h.repository.FetchByID(c.Context(), id)
	if err != nil {
		return handleRepositoryError(c, err)
	}

	return c.JSON(wf)
}

func (h *APIHandlers) CreateWorkflow(c fiber.Ctx) error {
	var req CreateWorkflowRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	wf := &models.Workflow{
		Name:        req.Name,
		Description: req.Description,
		Kind:        models.WorkflowKind(req.Kind),
		Nodes:       req.Nodes,
		Edges:       req.Edges,
		Metadata:    req.Metadata,
		Owner:       req.Owner,
	}

	if wf.Nodes == nil {
		wf.Nodes = []*models.Node{}
	}

	if wf.Edges == nil {
		wf.Edges = []*models.Edge{}
	}

	if err := prepareNodes(wf.Nodes); err != nil {
		return badRequest(c, err.Error())
	}

	created, err := h.repository.Create(c.Context(), wf)
	if err != nil {
		return handleRepositoryError(c, err)
	}

	h.publish(c.Context(), created.ID, events.WorkflowCreated{
		BaseEvent:  events.NewBaseEvent(events.WorkflowCreatedEvent),
		WorkflowID: created.ID,
		Name:       created.Name,
		Kind:       created.Kind,
	})

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *APIHandlers) UpdateWorkflow(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	var req UpdateWorkflowRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	existing, err := h.repository.FetchByID(c.Context(), id)
	if err != nil {
		return handleRepositoryError(c, err)
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}

	if req.Description != nil {
		existing.Description = *req.Description
	}

	if req.Kind != nil {
		existing.Kind = models.WorkflowKind(*req.Kind)
	}

	if req.Nodes != nil {
		if err := prepareNodes(req.Nodes); err != nil {
			return badRequest(c, err.Error())
		}

		existing.Nodes = req.Nodes
	}

	if req.Edges != nil {
		existing.Edges = req.Edges
	}

	if req.Metadata != nil {
		existing.Metadata = req.Metadata
	}

	if req.Owner != nil {
		existing.Owner = *req.Owner
	}

	updated, err := h.repository.Update(c.Context(), id, existing)
	if err != nil {
		return handleRepositoryError(c, err)
	}

	h.publish(c.Context(), updated.ID, events.WorkflowUpdated{
		BaseEvent:  events.NewBaseEvent(events.WorkflowUpdatedEvent),
		WorkflowID: updated.ID,
		Name:       updated.Name,
		Kind:       updated.Kind,
	})

	return c.JSON(updated)
}

func (h *APIHandlers) DeleteWorkflow(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	err := h.repository.Delete(c.Context(), id)
	if err != nil {
		return handleRepositoryError(c, err)
	}

	h.publish(c.Context(), id, events.WorkflowDeleted{
		BaseEvent:  events.NewBaseEvent(events.WorkflowDeletedEvent),
		WorkflowID: id,
	})

	return c.SendStatus(fiber.StatusNoContent)
}

// ValidateWorkflow runs the structural scan matching the workflow's kind and
// returns the full result, warnings included.
func (h *APIHandlers) ValidateWorkflow(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	wf, err := h.repository.FetchByID(c.Context(), id)
	if err != nil {
		return handleRepositoryError(c, err)
	}

	result := engine.ValidateWorkflow(wf)

	h.publish(c.Context(), wf.ID, events.WorkflowValidated{
		BaseEvent:  events.NewBaseEvent(events.WorkflowValidatedEvent),
		WorkflowID: wf.ID,
		Valid:      result.Valid,
		Errors:     result.Errors,
		Warnings:   result.Warnings,
	})

	return c.JSON(result)
}

// CheckConnection answers whether an edge between two nodes of a stored
// workflow would be accepted by its rule engine.
func (h *APIHandlers) CheckConnection(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Workflow ID is required")
	}

	var req CheckConnectionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	wf, err := h.repository.FetchByID(c.Context(), id)
	if err != nil {
		return handleRepositoryError(c, err)
	}

	source := wf.NodeByID(req.SourceID)
	if source == nil {
		return notFound(c, "Source node not found")
	}

	target := wf.NodeByID(req.TargetID)
	if target == nil {
		return notFound(c, "Target node not found")
	}

	allowed := engine.ForKind(wf.Kind).CanConnect(source, target)

	return c.JSON(fiber.Map{
		"allowed":     allowed,
		"source_kind": source.Kind,
		"target_kind": target.Kind,
	})
}

// GetNodeKinds returns the palette: every node kind of the open-graph
// taxonomy with its category, label, default data and configuration panel.
func (h *APIHandlers) GetNodeKinds(c fiber.Ctx) error {
	kinds := models.AllKinds()
	infos := make([]NodeKindInfo, 0, len(kinds))

	for _, kind := range kinds {
		category, _ := models.CategoryOf(kind)

		info := NodeKindInfo{
			Kind:        kind,
			Category:    category,
			Label:       nodedata.DisplayName(kind),
			DefaultData: nodedata.DefaultData(kind),
			HasConfig:   configregistry.HasConfig(kind),
		}

		if key, ok := configregistry.KeyOf(kind); ok {
			info.ConfigKey = string(key)
		}

		infos = append(infos, info)
	}

	return c.JSON(fiber.Map{
		"kinds": infos,
		"count": len(infos),
	})
}

// IngestLead accepts a raw lead submission over HTTP, sharing the
// normalization path with the queue consumer.
func (h *APIHandlers) IngestLead(c fiber.Ctx) error {
	var req IngestLeadRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}

	normalized := lead.Normalize(models.LeadSource(req.Source), req.Payload)
	if len(req.Tags) > 0 {
		normalized.Tags = lead.MergeTags(normalized.Tags, req.Tags)
	}

	if err := h.persistence.SaveLead(c.Context(), normalized); err != nil {
		return handleRepositoryError(c, err)
	}

	h.publish(c.Context(), normalized.ID, events.LeadReceived{
		BaseEvent: events.NewBaseEvent(events.LeadReceivedEvent),
		LeadID:    normalized.ID,
		Source:    normalized.Source,
		Tags:      normalized.Tags,
	})

	return c.Status(fiber.StatusCreated).JSON(normalized)
}

func (h *APIHandlers) GetLeads(c fiber.Ctx) error {
	leads, err := h.persistence.Leads(c.Context())
	if err != nil {
		return handleRepositoryError(c, err)
	}

	return c.JSON(fiber.Map{
		"leads": leads,
		"count": len(leads),
	})
}

func (h *APIHandlers) GetLead(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Lead ID is required")
	}

	found, err := h.persistence.LeadByID(c.Context(), id)
	if err != nil {
		return handleRepositoryError(c, err)
	}

	if found == nil {
		return notFound(c, "Lead not found")
	}

	return c.JSON(found)
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	repositoryCheck, repOk := h.repository.HealthCheck(c.Context())

	status := "unhealthy"
	message := "LeadFlow API is unhealthy"
	httpStatus := http.StatusInternalServerError

	if repOk {
		status = "healthy"
		message = "LeadFlow API is healthy"
		httpStatus = http.StatusOK
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"checkers": fiber.Map{
			"repository": repositoryCheck,
		},
		"timestamp": time.Now().UTC(),
	})
}

// publish fires an event without failing the request; delivery is best
// effort and failures only get logged.
func (h *APIHandlers) publish(ctx context.Context, key string, event eventbus.Event) {
	if h.publisher == nil {
		return
	}

	if err := h.publisher.Publish(ctx, key, event); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish event",
			"error", err,
			"event_type", event.GetType(),
			"key", key,
		)
	}
}

// prepareNodes fills missing node data with the kind's defaults and checks
// each configuration against its panel contract.
func prepareNodes(nodes []*models.Node) error {
	for _, node := range nodes {
		if node.Data == nil {
			node.Data = nodedata.DefaultData(node.Kind)
		}

		if err := configregistry.ValidateConfig(node.Kind, node.Data); err != nil {
			return err
		}
	}

	return nil
}

func filterByKind(workflows []*models.Workflow, kind models.WorkflowKind) []*models.Workflow {
	filtered := make([]*models.Workflow, 0, len(workflows))

	for _, wf := range workflows {
		if wf.Kind == kind {
			filtered = append(filtered, wf)
		}
	}

	return filtered
}

func filterByOwner(workflows []*models.Workflow, owner string) []*models.Workflow {
	filtered := make([]*models.Workflow, 0, len(workflows))

	for _, wf := range workflows {
		if wf.Owner == owner {
			filtered = append(filtered, wf)
		}
	}

	return filtered
}
