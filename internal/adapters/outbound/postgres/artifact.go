package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/stegophrase/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const artifactTable = "stego_artifacts"

var (
	artifactFields = []string{
		"id",
		"format",
		"width",
		"height",
		"strategy",
		"psnr",
		"image",
		"created_at",
	}
)

// ArtifactRepository is a PostgreSQL implementation of domain.ArtifactRepository.
type ArtifactRepository struct {
	pqsql squirrel.StatementBuilderType
}

// NewArtifactRepository creates a new instance of ArtifactRepository running on br,
// which is either the pool or an open transaction.
func NewArtifactRepository(br squirrel.BaseRunner) ArtifactRepository {
	return ArtifactRepository{
		pqsql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// StoreArtifact inserts a new stego artifact.
func (ar ArtifactRepository) StoreArtifact(ctx context.Context, artifact domain.StegoArtifact) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("artifact_id", artifact.ID.String()),
		attribute.Int("image_bytes", len(artifact.Image)),
	))
	defer span.End()

	_, err := ar.pqsql.
		Insert(artifactTable).
		Columns(artifactFields...).
		Values(
			artifact.ID,
			string(artifact.Format),
			artifact.Width,
			artifact.Height,
			string(artifact.Strategy),
			artifact.PSNR,
			artifact.Image,
			artifact.CreatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to store artifact: %w", err)
	}

	return nil
}

// GetArtifact retrieves an artifact by ID. The boolean is false when no row matches.
func (ar ArtifactRepository) GetArtifact(ctx context.Context, id uuid.UUID) (domain.StegoArtifact, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("artifact_id", id.String()),
	))
	defer span.End()

	var (
		artifact domain.StegoArtifact
		format   string
		strategy string
	)

	err := ar.pqsql.
		Select(artifactFields...).
		From(artifactTable).
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx).
		Scan(
			&artifact.ID,
			&format,
			&artifact.Width,
			&artifact.Height,
			&strategy,
			&artifact.PSNR,
			&artifact.Image,
			&artifact.CreatedAt,
		)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.StegoArtifact{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.StegoArtifact{}, false, fmt.Errorf("failed to get artifact: %w", err)
	}

	artifact.Format = domain.ImageFormat(format)
	artifact.Strategy = domain.Strategy(strategy)
	return artifact, true, nil
}

// InitArtifactRepository is a Symbiont initializer for ArtifactRepository.
type InitArtifactRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the ArtifactRepository in the dependency container.
func (iar InitArtifactRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ArtifactRepository](NewArtifactRepository(iar.DB))
	return ctx, nil
}
