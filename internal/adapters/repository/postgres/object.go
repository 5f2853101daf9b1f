package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"chunkstream/internal/core/domain"
	"chunkstream/internal/core/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlObjectRepository struct {
	db SQLQuerier
}

// NewSQLObjectRepository creates sqlObjectRepository that implements port.ObjectRepository
func NewSQLObjectRepository(db SQLQuerier) port.ObjectRepository {
	return &sqlObjectRepository{db: db}
}

// Create persists a finalized object. The unique index on object_key backs
// the completion idempotency guard: a second finalize for the same key
// fails with ErrAlreadyCompleted instead of silently succeeding twice.
func (s *sqlObjectRepository) Create(ctx context.Context, object domain.FinalizedObject) error {
	query := `
		INSERT INTO finalized_object (
			id, file_name, size_bytes, object_key, status, etag
		) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		object.ID,
		object.FileName,
		object.SizeBytes,
		object.ObjectKey,
		object.Status,
		object.ETag,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" {
				return fmt.Errorf("%w: %s", domain.ErrAlreadyCompleted, object.ObjectKey)
			}
		}
		return fmt.Errorf("could not insert finalized object: %w", err)
	}
	return nil
}

// FindByKey retrieves a finalized object by its object key
func (s *sqlObjectRepository) FindByKey(ctx context.Context, objectKey string) (*domain.FinalizedObject, error) {
	query := `
		SELECT id, file_name, size_bytes, object_key, status, etag, created_at
		FROM finalized_object WHERE object_key = $1`

	return s.scanObject(s.db.QueryRowContext(ctx, query, objectKey), objectKey)
}

// FindByID retrieves a finalized object by its id
func (s *sqlObjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FinalizedObject, error) {
	query := `
		SELECT id, file_name, size_bytes, object_key, status, etag, created_at
		FROM finalized_object WHERE id = $1`

	return s.scanObject(s.db.QueryRowContext(ctx, query, id), id.String())
}

func (s *sqlObjectRepository) scanObject(row *sql.Row, ref string) (*domain.FinalizedObject, error) {
	var object domain.FinalizedObject
	err := row.Scan(
		&object.ID,
		&object.FileName,
		&object.SizeBytes,
		&object.ObjectKey,
		&object.Status,
		&object.ETag,
		&object.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrObjectNotFound, ref)
		}
		return nil, err
	}
	return &object, nil
}
