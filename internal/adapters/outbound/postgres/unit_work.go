package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/stegophrase/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// UnitOfWork implements the domain.UnitOfWork interface for Postgres.
type UnitOfWork struct {
	db            *sql.DB
	tx            *sql.Tx
	artifactTopic string
}

// NewUnitOfWork creates a new instance of UnitOfWork. Artifact events recorded through
// its outbox are addressed to artifactTopic.
func NewUnitOfWork(db *sql.DB, artifactTopic string) *UnitOfWork {
	return &UnitOfWork{
		db:            db,
		artifactTopic: artifactTopic,
	}
}

// Execute runs the provided function within a database transaction.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	uow := &UnitOfWork{
		db:            u.db,
		tx:            tx,
		artifactTopic: u.artifactTopic,
	}

	err = fn(uow)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction rollback error: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

// Artifact returns the ArtifactRepository for this UnitOfWork.
func (u *UnitOfWork) Artifact() domain.ArtifactRepository {
	return NewArtifactRepository(u.getBaseRunner())
}

// Outbox returns the OutboxRepository for this UnitOfWork.
func (u *UnitOfWork) Outbox() domain.OutboxRepository {
	return NewOutboxRepository(u.getBaseRunner(), u.artifactTopic)
}

// getBaseRunner returns the appropriate BaseRunner (transaction or DB) for the UnitOfWork.
func (u *UnitOfWork) getBaseRunner() squirrel.BaseRunner {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// InitUnitOfWork is responsible for initializing the UnitOfWork dependency.
type InitUnitOfWork struct {
	DB            *sql.DB `resolve:""`
	ArtifactTopic string  `config:"ARTIFACT_EVENTS_TOPIC" default:"StegoArtifacts"`
}

// Initialize registers the UnitOfWork in the dependency container.
func (iuw InitUnitOfWork) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.UnitOfWork](NewUnitOfWork(iuw.DB, iuw.ArtifactTopic))
	return ctx, nil
}
