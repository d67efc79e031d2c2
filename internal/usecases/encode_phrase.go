package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/stegophrase/internal/codec"
	"github.com/cleitonmarx/stegophrase/internal/common"
	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/stegophrase/internal/stego"
	"github.com/cleitonmarx/stegophrase/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// DefaultPhrase is hidden when the caller does not provide one.
const DefaultPhrase = "my secret text"

// EncodeParams holds the input of an encode request.
type EncodeParams struct {
	// Image is the encoded cover image file.
	Image []byte
	// Phrase defaults to DefaultPhrase when blank.
	Phrase string
	// Format of the output file; defaults to PNG.
	Format domain.ImageFormat
}

// EncodeResult is the outcome of hiding a phrase.
type EncodeResult struct {
	Image    []byte
	Format   domain.ImageFormat
	Phrase   string
	Strategy domain.Strategy
	Width    int
	Height   int
	// PSNR is +Inf when the stego image is identical to the cover.
	PSNR float64
}

// EncodePhrase defines the interface for the EncodePhrase use case.
type EncodePhrase interface {
	Execute(ctx context.Context, params EncodeParams) (EncodeResult, error)
}

// EncodePhraseImpl is the implementation of the EncodePhrase use case.
type EncodePhraseImpl struct {
	raster       domain.RasterCodec
	orchestrator stego.HybridOrchestrator
}

// NewEncodePhraseImpl creates a new instance of EncodePhraseImpl.
func NewEncodePhraseImpl(raster domain.RasterCodec, orchestrator stego.HybridOrchestrator) EncodePhraseImpl {
	return EncodePhraseImpl{
		raster:       raster,
		orchestrator: orchestrator,
	}
}

// Execute decodes the cover image, hides the phrase in it and writes the stego image
// in the requested lossless format.
func (epi EncodePhraseImpl) Execute(ctx context.Context, params EncodeParams) (EncodeResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	phrase, format, err := validateEncodeParams(params)
	if telemetry.RecordErrorAndStatus(span, err) {
		return EncodeResult{}, err
	}

	cover, _, err := epi.raster.Decode(params.Image)
	if telemetry.RecordErrorAndStatus(span, err) {
		return EncodeResult{}, err
	}

	stegoImg, strategy, err := epi.orchestrator.Encode(spanCtx, cover, phrase)
	if telemetry.RecordErrorAndStatus(span, err) {
		return EncodeResult{}, err
	}
	RecordStegoOperation(spanCtx, "encode", strategy, epi.orchestrator.PerceptualAvailable())
	if strategy == domain.Strategy_LSB {
		RecordPayloadBits(spanCtx, codec.BitLength([]byte(codec.CanonicalPhrase(phrase))))
	}

	out, err := epi.raster.Encode(stegoImg, format)
	if telemetry.RecordErrorAndStatus(span, err) {
		return EncodeResult{}, err
	}

	// sample buffers always match, the orchestrator rejects shape changes
	psnr, _ := common.PSNR(cover.Pix, stegoImg.Pix)
	RecordPSNR(spanCtx, psnr, strategy)

	span.SetAttributes(
		attribute.String("stego.strategy", string(strategy)),
		attribute.String("stego.format", string(format)),
		attribute.Int("stego.width", cover.Width),
		attribute.Int("stego.height", cover.Height),
	)

	return EncodeResult{
		Image:    out,
		Format:   format,
		Phrase:   phrase,
		Strategy: strategy,
		Width:    cover.Width,
		Height:   cover.Height,
		PSNR:     psnr,
	}, nil
}

func validateEncodeParams(params EncodeParams) (string, domain.ImageFormat, error) {
	if len(params.Image) == 0 {
		return "", "", domain.NewValidationErr("image is required")
	}

	phrase := params.Phrase
	if strings.TrimSpace(phrase) == "" {
		phrase = DefaultPhrase
	}

	format := params.Format
	if format == "" {
		format = domain.ImageFormat_PNG
	}
	if !format.IsLossless() {
		return "", "", domain.NewValidationErr(fmt.Sprintf("unsupported output format %q: lossy formats cannot carry LSB payloads", format))
	}
	return phrase, format, nil
}

// InitEncodePhrase initializes the EncodePhrase use case and registers it in the dependency container.
type InitEncodePhrase struct {
	Raster       domain.RasterCodec       `resolve:""`
	Orchestrator stego.HybridOrchestrator `resolve:""`
}

// Initialize registers the EncodePhrase use case in the dependency container.
func (iep InitEncodePhrase) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[EncodePhrase](NewEncodePhraseImpl(iep.Raster, iep.Orchestrator))
	return ctx, nil
}
