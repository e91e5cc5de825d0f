// Package events defines event types and structures for lead capture and
// workflow lifecycle notifications.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/leadflowhq/leadflow/pkg/models"
)

type EventType string

// Topic carries every leadflow event; consumers filter by event type.
const Topic = "leadflow.events"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	// Lead capture events.
	LeadReceivedEvent      EventType = "lead.received"
	LeadStatusChangedEvent EventType = "lead.status.changed"

	// Workflow lifecycle events.
	WorkflowCreatedEvent   EventType = "workflow.created"
	WorkflowUpdatedEvent   EventType = "workflow.updated"
	WorkflowDeletedEvent   EventType = "workflow.deleted"
	WorkflowValidatedEvent EventType = "workflow.validated"
)

type BaseEvent struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// LeadReceived is emitted when a lead has been normalized and stored.
type LeadReceived struct {
	BaseEvent

	LeadID string            `json:"lead_id"`
	Source models.LeadSource `json:"source"`
	Tags   []string          `json:"tags,omitempty"`
}

func (l LeadReceived) GetType() EventType {
	return LeadReceivedEvent
}

// LeadStatusChanged is emitted when a lead moves through the pipeline.
type LeadStatusChanged struct {
	BaseEvent

	LeadID         string            `json:"lead_id"`
	PreviousStatus models.LeadStatus `json:"previous_status"`
	Status         models.LeadStatus `json:"status"`
}

func (l LeadStatusChanged) GetType() EventType {
	return LeadStatusChangedEvent
}

type WorkflowCreated struct {
	BaseEvent

	WorkflowID string              `json:"workflow_id"`
	Name       string              `json:"name"`
	Kind       models.WorkflowKind `json:"kind"`
}

func (w WorkflowCreated) GetType() EventType {
	return WorkflowCreatedEvent
}

type WorkflowUpdated struct {
	BaseEvent

	WorkflowID string              `json:"workflow_id"`
	Name       string              `json:"name"`
	Kind       models.WorkflowKind `json:"kind"`
}

func (w WorkflowUpdated) GetType() EventType {
	return WorkflowUpdatedEvent
}

type WorkflowDeleted struct {
	BaseEvent

	WorkflowID string `json:"workflow_id"`
}

func (w WorkflowDeleted) GetType() EventType {
	return WorkflowDeletedEvent
}

// WorkflowValidated carries the outcome of a validation run.
type WorkflowValidated struct {
	BaseEvent

	WorkflowID string   `json:"workflow_id"`
	Valid      bool     `json:"valid"`
	Errors     []string `json:"errors"`
	Warnings   []string `json:"warnings"`
}

func (w WorkflowValidated) GetType() EventType {
	return WorkflowValidatedEvent
}

func NewBaseEvent(eventType EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Metadata:  make(map[string]any),
	}
}
