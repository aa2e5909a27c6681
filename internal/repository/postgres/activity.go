package postgres

import (
	"context"
	"database/sql"
	"time"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"
)

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Insert(ctx context.Context, a *domain.Activity) (int64, error) {
	query := `INSERT INTO activities (type, action, description, timestamp, actor_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, a.Type, a.Action, a.Description, a.Timestamp, a.ActorID).Scan(&a.ID)
	if err != nil {
		return 0, storeErr("insert activity", err)
	}
	return a.ID, nil
}

func (r *activityRepository) FindRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	query := `SELECT id, type, action, description, timestamp, actor_id FROM activities ORDER BY timestamp DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, storeErr("list recent activity", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.Action, &a.Description, &a.Timestamp, &a.ActorID); err != nil {
			return nil, storeErr("list recent activity", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list recent activity", err)
	}
	return activities, nil
}

func (r *activityRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE timestamp < $1`, cutoff)
	if err != nil {
		return 0, storeErr("purge activity", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storeErr("purge activity", err)
	}
	return n, nil
}
