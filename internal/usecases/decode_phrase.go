package usecases

import (
	"context"

	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/stegophrase/internal/stego"
	"github.com/cleitonmarx/stegophrase/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// DecodeResult is the outcome of recovering a phrase.
type DecodeResult struct {
	Phrase   string
	Strategy domain.Strategy
}

// DecodePhrase defines the interface for the DecodePhrase use case.
type DecodePhrase interface {
	Execute(ctx context.Context, image []byte) (DecodeResult, error)
}

// DecodePhraseImpl is the implementation of the DecodePhrase use case.
type DecodePhraseImpl struct {
	raster       domain.RasterCodec
	orchestrator stego.HybridOrchestrator
}

// NewDecodePhraseImpl creates a new instance of DecodePhraseImpl.
func NewDecodePhraseImpl(raster domain.RasterCodec, orchestrator stego.HybridOrchestrator) DecodePhraseImpl {
	return DecodePhraseImpl{
		raster:       raster,
		orchestrator: orchestrator,
	}
}

// Execute recovers the phrase hidden in image. Only an unreadable file is an error;
// images without a payload yield an empty or meaningless phrase.
func (dpi DecodePhraseImpl) Execute(ctx context.Context, image []byte) (DecodeResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if len(image) == 0 {
		err := domain.NewValidationErr("image is required")
		telemetry.RecordErrorAndStatus(span, err)
		return DecodeResult{}, err
	}

	img, format, err := dpi.raster.Decode(image)
	if telemetry.RecordErrorAndStatus(span, err) {
		return DecodeResult{}, err
	}

	phrase, strategy := dpi.orchestrator.Decode(spanCtx, img)
	RecordStegoOperation(spanCtx, "decode", strategy, dpi.orchestrator.PerceptualAvailable())

	span.SetAttributes(
		attribute.String("stego.strategy", string(strategy)),
		attribute.String("stego.format", string(format)),
	)

	return DecodeResult{
		Phrase:   phrase,
		Strategy: strategy,
	}, nil
}

// InitDecodePhrase initializes the DecodePhrase use case and registers it in the dependency container.
type InitDecodePhrase struct {
	Raster       domain.RasterCodec       `resolve:""`
	Orchestrator stego.HybridOrchestrator `resolve:""`
}

// Initialize registers the DecodePhrase use case in the dependency container.
func (idp InitDecodePhrase) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DecodePhrase](NewDecodePhraseImpl(idp.Raster, idp.Orchestrator))
	return ctx, nil
}
