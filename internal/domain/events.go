package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_ARTIFACT_CREATED represents the event when a stego artifact is stored.
	EventType_ARTIFACT_CREATED EventType = "ARTIFACT.CREATED"
)

// ArtifactEvent represents a domain event about a stego artifact.
// It never carries the hidden phrase.
type ArtifactEvent struct {
	Type       EventType   `json:"type"`
	ArtifactID uuid.UUID   `json:"artifact_id"`
	Strategy   Strategy    `json:"strategy"`
	Format     ImageFormat `json:"format"`
	CreatedAt  time.Time   `json:"created_at"`
}

// EventPublisher publishes outbox events to the message broker.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
