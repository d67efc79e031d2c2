package usecases

import (
	"context"

	"github.com/cleitonmarx/stegophrase/internal/codec"
	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/stegophrase/internal/stego"
	"github.com/cleitonmarx/symbiont/depend"
)

// Capabilities describes what the service can currently do.
type Capabilities struct {
	PerceptualAvailable bool
	BitsPerSample       int
	PhraseWords         int
	EmbeddingSize       int
	OutputFormats       []domain.ImageFormat
}

// GetCapabilities defines the interface for the GetCapabilities use case.
type GetCapabilities interface {
	Execute(ctx context.Context) Capabilities
}

// GetCapabilitiesImpl is the implementation of the GetCapabilities use case.
type GetCapabilitiesImpl struct {
	orchestrator stego.HybridOrchestrator
}

// NewGetCapabilitiesImpl creates a new instance of GetCapabilitiesImpl.
func NewGetCapabilitiesImpl(orchestrator stego.HybridOrchestrator) GetCapabilitiesImpl {
	return GetCapabilitiesImpl{
		orchestrator: orchestrator,
	}
}

// Execute reports the current capabilities.
func (gci GetCapabilitiesImpl) Execute(_ context.Context) Capabilities {
	return Capabilities{
		PerceptualAvailable: gci.orchestrator.PerceptualAvailable(),
		BitsPerSample:       codec.BitsPerSample,
		PhraseWords:         codec.PhraseWords,
		EmbeddingSize:       codec.EmbeddingSize,
		OutputFormats: []domain.ImageFormat{
			domain.ImageFormat_PNG,
			domain.ImageFormat_BMP,
			domain.ImageFormat_TIFF,
		},
	}
}

// InitGetCapabilities initializes the GetCapabilities use case and registers it in the dependency container.
type InitGetCapabilities struct {
	Orchestrator stego.HybridOrchestrator `resolve:""`
}

// Initialize registers the GetCapabilities use case in the dependency container.
func (igc InitGetCapabilities) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetCapabilities](NewGetCapabilitiesImpl(igc.Orchestrator))
	return ctx, nil
}
