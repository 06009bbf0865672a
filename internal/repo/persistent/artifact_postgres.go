package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/edulens/visual-explainer/internal/entity"
	"github.com/edulens/visual-explainer/pkg/postgres"
	"github.com/edulens/visual-explainer/pkg/types/errs"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	// Table
	artifactsTable = "generated_images"

	// Columns
	idColumn          = "id"
	userIDColumn      = "user_id"
	subjectColumn     = "subject"
	topicColumn       = "topic"
	descriptionColumn = "description"
	imageURLColumn    = "image_url"
	explanationColumn = "explanation"
	providerColumn    = "provider"
	widthColumn       = "width"
	heightColumn      = "height"
	createdAtColumn   = "created_at"
)

type ArtifactMetadataRepo struct {
	*postgres.Postgres
}

func NewArtifactMetadataRepo(pg *postgres.Postgres) *ArtifactMetadataRepo {
	return &ArtifactMetadataRepo{pg}
}

func (r *ArtifactMetadataRepo) Create(ctx context.Context, artifact *entity.Artifact) error {
	sql, args, err := r.Builder.
		Insert(artifactsTable).
		Columns(
			idColumn,
			userIDColumn,
			subjectColumn,
			topicColumn,
			descriptionColumn,
			imageURLColumn,
			explanationColumn,
			providerColumn,
			widthColumn,
			heightColumn,
			createdAtColumn,
		).
		Values(
			artifact.ID,
			artifact.UserID,
			artifact.Subject,
			artifact.Topic,
			artifact.Description,
			artifact.ImageURL,
			artifact.Explanation,
			artifact.Provider,
			artifact.Width,
			artifact.Height,
			artifact.CreatedAt,
		).ToSql()
	if err != nil {
		return fmt.Errorf("ArtifactMetadataRepo - Create - r.Builder.ToSql: %w", err)
	}

	_, err = r.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("ArtifactMetadataRepo - Create - r.Pool.Exec: %w", err)
	}

	return nil
}

func (r *ArtifactMetadataRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Artifact, error) {
	sql, args, err := r.Builder.
		Select(
			idColumn,
			userIDColumn,
			subjectColumn,
			topicColumn,
			descriptionColumn,
			imageURLColumn,
			explanationColumn,
			providerColumn,
			widthColumn,
			heightColumn,
			createdAtColumn,
		).
		From(artifactsTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ArtifactMetadataRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	var artifact entity.Artifact
	err = r.Pool.QueryRow(ctx, sql, args...).Scan(
		&artifact.ID,
		&artifact.UserID,
		&artifact.Subject,
		&artifact.Topic,
		&artifact.Description,
		&artifact.ImageURL,
		&artifact.Explanation,
		&artifact.Provider,
		&artifact.Width,
		&artifact.Height,
		&artifact.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ArtifactMetadataRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("ArtifactMetadataRepo - GetByID - r.Pool.QueryRow: %w", err)
	}

	return &artifact, nil
}

func (r *ArtifactMetadataRepo) ListOlderThan(ctx context.Context, cutoff time.Time) ([]entity.ArtifactRef, error) {
	sql, args, err := r.Builder.
		Select(idColumn, imageURLColumn).
		From(artifactsTable).
		Where(squirrel.Lt{createdAtColumn: cutoff}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ArtifactMetadataRepo - ListOlderThan - r.Builder.ToSql: %w", err)
	}

	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ArtifactMetadataRepo - ListOlderThan - r.Pool.Query: %w", err)
	}
	defer rows.Close()

	var refs []entity.ArtifactRef
	for rows.Next() {
		var ref entity.ArtifactRef
		if err := rows.Scan(&ref.ID, &ref.ImageURL); err != nil {
			return nil, fmt.Errorf("ArtifactMetadataRepo - ListOlderThan - rows.Scan: %w", err)
		}
		refs = append(refs, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ArtifactMetadataRepo - ListOlderThan - rows.Err: %w", err)
	}

	return refs, nil
}

func (r *ArtifactMetadataRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	sql, args, err := r.Builder.
		Delete(artifactsTable).
		Where(squirrel.Lt{createdAtColumn: cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("ArtifactMetadataRepo - DeleteOlderThan - r.Builder.ToSql: %w", err)
	}

	tag, err := r.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("ArtifactMetadataRepo - DeleteOlderThan - r.Pool.Exec: %w", err)
	}

	return tag.RowsAffected(), nil
}
