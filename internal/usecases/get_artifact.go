package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/stegophrase/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// GetArtifact defines the interface for the GetArtifact use case.
type GetArtifact interface {
	Execute(ctx context.Context, id uuid.UUID) (domain.StegoArtifact, error)
}

// GetArtifactImpl is the implementation of the GetArtifact use case.
type GetArtifactImpl struct {
	repo domain.ArtifactRepository
}

// NewGetArtifactImpl creates a new instance of GetArtifactImpl.
func NewGetArtifactImpl(repo domain.ArtifactRepository) GetArtifactImpl {
	return GetArtifactImpl{
		repo: repo,
	}
}

// Execute retrieves a stored artifact by its ID.
func (gai GetArtifactImpl) Execute(ctx context.Context, id uuid.UUID) (domain.StegoArtifact, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	artifact, found, err := gai.repo.GetArtifact(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.StegoArtifact{}, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("artifact with ID %s not found", id))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.StegoArtifact{}, err
	}
	return artifact, nil
}

// InitGetArtifact initializes the GetArtifact use case and registers it in the dependency container.
type InitGetArtifact struct {
	Repo domain.ArtifactRepository `resolve:""`
}

// Initialize registers the GetArtifact use case in the dependency container.
func (iga InitGetArtifact) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetArtifact](NewGetArtifactImpl(iga.Repo))
	return ctx, nil
}
