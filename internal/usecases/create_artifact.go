package usecases

import (
	"context"

	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/stegophrase/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// CreateArtifact defines the interface for the CreateArtifact use case.
type CreateArtifact interface {
	Execute(ctx context.Context, params EncodeParams) (domain.StegoArtifact, error)
}

// CreateArtifactImpl is the implementation of the CreateArtifact use case.
type CreateArtifactImpl struct {
	encoder      EncodePhrase
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewCreateArtifactImpl creates a new instance of CreateArtifactImpl.
func NewCreateArtifactImpl(
	encoder EncodePhrase,
	uow domain.UnitOfWork,
	timeProvider domain.CurrentTimeProvider,
) CreateArtifactImpl {
	return CreateArtifactImpl{
		encoder:      encoder,
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute hides the phrase and stores the resulting stego image together with its
// ARTIFACT.CREATED outbox event. The returned artifact never carries the phrase.
func (cai CreateArtifactImpl) Execute(ctx context.Context, params EncodeParams) (domain.StegoArtifact, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	result, err := cai.encoder.Execute(spanCtx, params)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.StegoArtifact{}, err
	}

	artifact := domain.StegoArtifact{
		ID:        cai.createUUID(),
		Format:    result.Format,
		Width:     result.Width,
		Height:    result.Height,
		Strategy:  result.Strategy,
		PSNR:      result.PSNR,
		Image:     result.Image,
		CreatedAt: cai.timeProvider.Now(),
	}
	span.SetAttributes(attribute.String("stego.artifact_id", artifact.ID.String()))

	err = cai.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Artifact().StoreArtifact(spanCtx, artifact); err != nil {
			return err
		}
		return uow.Outbox().RecordArtifactEvent(spanCtx, domain.ArtifactEvent{
			Type:       domain.EventType_ARTIFACT_CREATED,
			ArtifactID: artifact.ID,
			Strategy:   artifact.Strategy,
			Format:     artifact.Format,
			CreatedAt:  artifact.CreatedAt,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.StegoArtifact{}, err
	}

	return artifact, nil
}

// InitCreateArtifact initializes the CreateArtifact use case and registers it in the dependency container.
type InitCreateArtifact struct {
	Encoder      EncodePhrase               `resolve:""`
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the CreateArtifact use case in the dependency container.
func (ica InitCreateArtifact) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateArtifact](NewCreateArtifactImpl(ica.Encoder, ica.Uow, ica.TimeProvider))
	return ctx, nil
}
