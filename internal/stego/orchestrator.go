// Package stego combines the perceptual transform with the LSB codec.
package stego

import (
	"context"
	"log"
	"strings"

	"github.com/cleitonmarx/stegophrase/internal/codec"
	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/stegophrase/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// HybridOrchestrator hides phrases in cover images. The perceptual transform is
// always attempted first when it is available; any failure on that path falls back
// to the 2-bit LSB codec, which is a pure function of the input image.
type HybridOrchestrator struct {
	transform domain.PerceptualTransform
	logger    *log.Logger
}

// NewHybridOrchestrator creates a new HybridOrchestrator. A nil transform behaves
// like domain.NoPerceptualTransform.
func NewHybridOrchestrator(transform domain.PerceptualTransform, logger *log.Logger) HybridOrchestrator {
	if transform == nil {
		transform = domain.NoPerceptualTransform{}
	}
	return HybridOrchestrator{
		transform: transform,
		logger:    logger,
	}
}

// PerceptualAvailable reports whether the perceptual path will be attempted.
func (h HybridOrchestrator) PerceptualAvailable() bool {
	return h.transform.Available()
}

// Encode returns a stego image carrying phrase and the strategy that produced it.
// The only error it can return is a *domain.CapacityExceededErr from the LSB path.
func (h HybridOrchestrator) Encode(ctx context.Context, img domain.CoverImage, phrase string) (domain.CoverImage, domain.Strategy, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if h.transform.Available() {
		stego, err := h.encodePerceptual(spanCtx, img, phrase)
		if err == nil {
			span.SetAttributes(attribute.String("stego.strategy", string(domain.Strategy_PERCEPTUAL)))
			return stego, domain.Strategy_PERCEPTUAL, nil
		}
		h.fallback(span, "encode", err)
	}

	stego, err := codec.EncodeBits(img, []byte(codec.CanonicalPhrase(phrase)))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CoverImage{}, "", err
	}
	span.SetAttributes(attribute.String("stego.strategy", string(domain.Strategy_LSB)))
	return stego, domain.Strategy_LSB, nil
}

func (h HybridOrchestrator) encodePerceptual(ctx context.Context, img domain.CoverImage, phrase string) (domain.CoverImage, error) {
	stego, err := h.transform.Encode(ctx, img, codec.EncodePhrase(phrase))
	if err != nil {
		return domain.CoverImage{}, err
	}
	if !stego.SameShape(img) || len(stego.Pix) != len(img.Pix) {
		return domain.CoverImage{}, domain.NewCapabilityUnavailableErr("perceptual transform changed image dimensions", nil)
	}
	return stego, nil
}

// Decode recovers a phrase from img and reports which strategy produced it. It never
// fails: images without a payload yield an empty or meaningless string.
func (h HybridOrchestrator) Decode(ctx context.Context, img domain.CoverImage) (string, domain.Strategy) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if h.transform.Available() {
		vector, err := h.transform.Decode(spanCtx, img)
		if err == nil {
			if phrase := strings.TrimSpace(codec.DecodePhrase(vector)); phrase != "" {
				span.SetAttributes(attribute.String("stego.strategy", string(domain.Strategy_PERCEPTUAL)))
				return phrase, domain.Strategy_PERCEPTUAL
			}
			err = domain.NewCapabilityUnavailableErr("perceptual transform recovered an empty phrase", nil)
		}
		h.fallback(span, "decode", err)
	}

	span.SetAttributes(attribute.String("stego.strategy", string(domain.Strategy_LSB)))
	return codec.DecodeBits(img), domain.Strategy_LSB
}

func (h HybridOrchestrator) fallback(span trace.Span, operation string, err error) {
	span.AddEvent("perceptual_fallback", trace.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("reason", err.Error()),
	))
	if h.logger != nil {
		h.logger.Printf("HybridOrchestrator: perceptual %s failed, falling back to LSB: %v", operation, err)
	}
}

// InitHybridOrchestrator initializes the HybridOrchestrator and registers it in the dependency container.
type InitHybridOrchestrator struct {
	Transform domain.PerceptualTransform `resolve:""`
	Logger    *log.Logger                `resolve:""`
}

// Initialize registers the HybridOrchestrator in the dependency container.
func (i InitHybridOrchestrator) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewHybridOrchestrator(i.Transform, i.Logger))
	return ctx, nil
}
