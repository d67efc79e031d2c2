package domain

import "context"

// EmbeddingVector is the fixed-length numeric form of a phrase consumed by the
// perceptual transform. Every element lies in [-1, 1].
type EmbeddingVector []float64

// Strategy identifies which path produced or recovered a payload.
type Strategy string

const (
	// Strategy_PERCEPTUAL is the model-driven transform.
	Strategy_PERCEPTUAL Strategy = "perceptual"
	// Strategy_LSB is the deterministic least-significant-bit codec.
	Strategy_LSB Strategy = "lsb"
)

// PerceptualTransform hides a vector in an image and recovers it. Implementations
// must keep image dimensions unchanged and be safe for concurrent use.
type PerceptualTransform interface {
	// Available reports whether calls can be expected to succeed.
	Available() bool
	// Encode returns a new image carrying vector.
	Encode(ctx context.Context, img CoverImage, vector EmbeddingVector) (CoverImage, error)
	// Decode extracts the vector carried by img.
	Decode(ctx context.Context, img CoverImage) (EmbeddingVector, error)
}

// NoPerceptualTransform is the absent variant of PerceptualTransform.
type NoPerceptualTransform struct{}

// Available always returns false.
func (NoPerceptualTransform) Available() bool {
	return false
}

// Encode always fails with CapabilityUnavailableErr.
func (NoPerceptualTransform) Encode(context.Context, CoverImage, EmbeddingVector) (CoverImage, error) {
	return CoverImage{}, NewCapabilityUnavailableErr("perceptual transform not configured", nil)
}

// Decode always fails with CapabilityUnavailableErr.
func (NoPerceptualTransform) Decode(context.Context, CoverImage) (EmbeddingVector, error) {
	return nil, NewCapabilityUnavailableErr("perceptual transform not configured", nil)
}

var _ PerceptualTransform = NoPerceptualTransform{}
