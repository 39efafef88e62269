package repository

import (
	"context"
	"time"

	"rental-marketplace/internal/infra"
	sqlc "rental-marketplace/internal/infra/sqlc/generated"
	"rental-marketplace/internal/pkg/pgconv"
	"rental-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		ID:      uuid.New(),
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  shared.JobStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// UpdateJobStatus records a delivery outcome; runAt reschedules queued retries
func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error {
	params := sqlc.UpdateNotificationJobStatusParams{
		ID:     jobID,
		Status: status,
		RunAt:  pgconv.TimeToPgtype(runAt),
	}

	if lastError != nil {
		params.LastError = pgtype.Text{String: *lastError, Valid: true}
	} else {
		params.LastError = pgtype.Text{Valid: false}
	}

	err := r.queries.UpdateNotificationJobStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}

	return nil
}

// ClaimDue moves up to limit due jobs to running and returns them. Jobs stuck in
// running for too long are claimed again.
func (r *NotificationRepository) ClaimDue(ctx context.Context, limit int32) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: row.Attempts,
		})
	}
	return jobs, nil
}
