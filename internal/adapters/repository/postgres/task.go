package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"chunkstream/internal/core/domain"
	"chunkstream/internal/core/port"

	"github.com/google/uuid"
)

type sqlTaskRepository struct {
	db SQLQuerier
}

// NewSQLTaskRepository creates sqlTaskRepository that implements port.TaskRepository
func NewSQLTaskRepository(db SQLQuerier) port.TaskRepository {
	return &sqlTaskRepository{db: db}
}

const taskColumns = `
	job_id, status, progress_percent, message, uploaded_parts, total_parts,
	file_name, file_size_bytes, content_type, chunk_size_bytes,
	session_id, object_key, staged_file_path, finalized_object_id,
	started_at, ended_at, created_at, updated_at`

// Create persists a new upload task
func (s *sqlTaskRepository) Create(ctx context.Context, task domain.UploadTask) error {
	query := `
		INSERT INTO upload_task (
			job_id, status, progress_percent, message, uploaded_parts, total_parts,
			file_name, file_size_bytes, content_type, chunk_size_bytes,
			session_id, object_key, staged_file_path, finalized_object_id,
			started_at, ended_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := s.db.ExecContext(
		ctx,
		query,
		task.JobID,
		task.Status,
		task.ProgressPercent,
		task.Message,
		task.UploadedParts,
		task.TotalParts,
		task.FileName,
		task.FileSizeBytes,
		task.ContentType,
		task.ChunkSizeBytes,
		task.SessionID,
		task.ObjectKey,
		task.StagedFilePath,
		nullableUUID(task.FinalizedObjectID),
		task.StartedAt,
		nullableTime(task.EndedAt),
	)
	if err != nil {
		return fmt.Errorf("could not insert upload task: %w", err)
	}
	return nil
}

// FindByJobID retrieves an upload task by its job id
func (s *sqlTaskRepository) FindByJobID(ctx context.Context, jobID uuid.UUID) (*domain.UploadTask, error) {
	query := `SELECT ` + taskColumns + ` FROM upload_task WHERE job_id = $1`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, jobID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, jobID)
		}
		return nil, err
	}
	return task, nil
}

// FindByStatus retrieves every upload task in the given status
func (s *sqlTaskRepository) FindByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.UploadTask, error) {
	query := `SELECT ` + taskColumns + ` FROM upload_task WHERE status = $1 ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.UploadTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

// Save updates the mutable fields of an existing upload task
func (s *sqlTaskRepository) Save(ctx context.Context, task domain.UploadTask) error {
	query := `
		UPDATE upload_task SET
			status = $1, progress_percent = $2, message = $3,
			uploaded_parts = $4, session_id = $5, object_key = $6,
			staged_file_path = $7, finalized_object_id = $8, ended_at = $9,
			updated_at = now()
		WHERE job_id = $10`

	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Status,
		task.ProgressPercent,
		task.Message,
		task.UploadedParts,
		task.SessionID,
		task.ObjectKey,
		task.StagedFilePath,
		nullableUUID(task.FinalizedObjectID),
		nullableTime(task.EndedAt),
		task.JobID,
	)
	if err != nil {
		return fmt.Errorf("could not update upload task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, task.JobID)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.UploadTask, error) {
	var (
		task        domain.UploadTask
		finalizedID uuid.NullUUID
		endedAt     sql.NullTime
	)

	err := row.Scan(
		&task.JobID,
		&task.Status,
		&task.ProgressPercent,
		&task.Message,
		&task.UploadedParts,
		&task.TotalParts,
		&task.FileName,
		&task.FileSizeBytes,
		&task.ContentType,
		&task.ChunkSizeBytes,
		&task.SessionID,
		&task.ObjectKey,
		&task.StagedFilePath,
		&finalizedID,
		&task.StartedAt,
		&endedAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if finalizedID.Valid {
		task.FinalizedObjectID = &finalizedID.UUID
	}
	if endedAt.Valid {
		task.EndedAt = &endedAt.Time
	}
	return &task, nil
}

func nullableUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
