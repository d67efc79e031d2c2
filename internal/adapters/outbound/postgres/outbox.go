package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/stegophrase/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const outboxTable = "outbox_events"

var (
	outboxEventFields = []string{
		"id",
		"entity_type",
		"entity_id",
		"topic",
		"event_type",
		"payload",
		"status",
		"retry_count",
		"max_retries",
		"last_error",
		"created_at",
	}
)

// OutboxRepository is a PostgreSQL implementation of domain.OutboxRepository.
type OutboxRepository struct {
	sb    squirrel.StatementBuilderType
	topic string
}

// NewOutboxRepository creates an OutboxRepository running on br. Artifact events are
// recorded for delivery to topic.
func NewOutboxRepository(br squirrel.BaseRunner, topic string) OutboxRepository {
	return OutboxRepository{
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
		topic: topic,
	}
}

// RecordArtifactEvent stores event as a pending outbox row.
func (op OutboxRepository) RecordArtifactEvent(ctx context.Context, event domain.ArtifactEvent) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("artifact_id", event.ArtifactID.String()),
		attribute.String("event_type", string(event.Type)),
	))
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal artifact event: %w", err)
	}

	_, err = op.sb.Insert(outboxTable).
		Columns(
			outboxEventFields...,
		).
		Values(
			uuid.New(),
			string(domain.OutboxEntityType_StegoArtifact),
			event.ArtifactID,
			op.topic,
			string(event.Type),
			payload,
			string(domain.OutboxStatus_Pending),
			0,
			domain.DefaultOutboxMaxRetries,
			nil,
			event.CreatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}

	return nil
}

// FetchPendingEvents retrieves a batch of pending outbox events, oldest first. Rows are
// locked for the running transaction and rows locked by other relays are skipped.
func (op OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	rows, err := op.sb.
		Select(
			outboxEventFields...,
		).
		From(outboxTable).
		Where(squirrel.Eq{"status": string(domain.OutboxStatus_Pending)}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to fetch pending outbox events: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		var (
			oe         domain.OutboxEvent
			entityType string
			eventType  string
			status     string
		)
		err := rows.Scan(
			&oe.ID,
			&entityType,
			&oe.EntityID,
			&oe.Topic,
			&eventType,
			&oe.Payload,
			&status,
			&oe.RetryCount,
			&oe.MaxRetries,
			&oe.LastError,
			&oe.CreatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, fmt.Errorf("failed to scan outbox event: %w", err)
		}
		oe.EntityType = domain.OutboxEntityType(entityType)
		oe.EventType = domain.EventType(eventType)
		oe.Status = domain.OutboxStatus(status)

		events = append(events, oe)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to iterate outbox events: %w", err)
	}

	return events, nil
}

// UpdateEvent updates the status, retry count, and last error of an outbox event.
func (op OutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	_, err := op.sb.
		Update(outboxTable).
		Set("status", string(status)).
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update outbox event: %w", err)
	}

	return nil
}

// DeleteEvent deletes an outbox event from the database.
func (op OutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	_, err := op.sb.
		Delete(outboxTable).
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete outbox event: %w", err)
	}

	return nil
}
