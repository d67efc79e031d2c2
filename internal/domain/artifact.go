package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// StegoArtifact is a stego image kept for later retrieval.
type StegoArtifact struct {
	ID       uuid.UUID
	Format   ImageFormat
	Width    int
	Height   int
	Strategy Strategy
	// PSNR between cover and stego image in dB; +Inf when they are identical.
	PSNR      float64
	Image     []byte
	CreatedAt time.Time
}

// ArtifactRepository persists stego artifacts.
type ArtifactRepository interface {
	StoreArtifact(ctx context.Context, artifact StegoArtifact) error
	// GetArtifact returns the artifact and whether it was found.
	GetArtifact(ctx context.Context, id uuid.UUID) (StegoArtifact, bool, error)
}
