package usecases

import (
	"context"
	"math"

	"github.com/cleitonmarx/stegophrase/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter               = otel.Meter("usecases")
	StegoOperations     metric.Int64Counter
	PerceptualFallbacks metric.Int64Counter
	StegoPayloadBits    metric.Int64Histogram
	StegoPSNR           metric.Float64Histogram
)

func init() {
	var err error
	// Encode and decode operations by the strategy that served them
	StegoOperations, err = meter.Int64Counter(
		"stego_operations_total",
		metric.WithDescription("Total steganography operations"),
	)
	if err != nil {
		panic(err)
	}

	PerceptualFallbacks, err = meter.Int64Counter(
		"stego_perceptual_fallbacks_total",
		metric.WithDescription("Total operations that fell back from the perceptual transform to LSB"),
	)
	if err != nil {
		panic(err)
	}

	StegoPayloadBits, err = meter.Int64Histogram(
		"stego_payload_bits",
		metric.WithDescription("Framed LSB payload size in bits"),
		metric.WithUnit("bit"),
	)
	if err != nil {
		panic(err)
	}

	StegoPSNR, err = meter.Float64Histogram(
		"stego_psnr_db",
		metric.WithDescription("Peak signal-to-noise ratio between cover and stego image"),
		metric.WithUnit("dB"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordStegoOperation records an encode or decode served by strategy. When the
// perceptual transform was available but did not serve it, a fallback is recorded too.
func RecordStegoOperation(ctx context.Context, operation string, strategy domain.Strategy, perceptualAvailable bool) {
	StegoOperations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("strategy", string(strategy)),
	))
	if perceptualAvailable && strategy != domain.Strategy_PERCEPTUAL {
		PerceptualFallbacks.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", operation),
		))
	}
}

// RecordPayloadBits records the framed size of an LSB payload.
func RecordPayloadBits(ctx context.Context, bits int) {
	StegoPayloadBits.Record(ctx, int64(bits))
}

// RecordPSNR records the quality of a stego image. Identical images are skipped.
func RecordPSNR(ctx context.Context, psnr float64, strategy domain.Strategy) {
	if math.IsInf(psnr, 0) || math.IsNaN(psnr) {
		return
	}
	StegoPSNR.Record(ctx, psnr, metric.WithAttributes(
		attribute.String("strategy", string(strategy)),
	))
}
