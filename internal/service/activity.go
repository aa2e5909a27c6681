package service

import (
	"context"
	"time"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/logger"
	"carservice-backend/internal/repository"
)

type activityService struct {
	activityRepo repository.ActivityRepository
	recentLimit  int
}

func NewActivityService(activityRepo repository.ActivityRepository, recentLimit int) ActivityService {
	if recentLimit <= 0 {
		recentLimit = 20
	}
	return &activityService{
		activityRepo: activityRepo,
		recentLimit:  recentLimit,
	}
}

// Record appends an audit entry. A write failure is logged locally and
// swallowed so it cannot abort the business operation being audited.
func (s *activityService) Record(ctx context.Context, typ domain.ActivityType, action domain.ActivityAction, description, actor string) {
	activity := &domain.Activity{
		Type:        typ,
		Action:      action,
		Description: description,
		Timestamp:   time.Now(),
		ActorID:     actor,
	}
	if _, err := s.activityRepo.Insert(ctx, activity); err != nil {
		logger.Error("Failed to record activity",
			"type", typ, "action", action, "actor", actor, "error", err)
	}
}

func (s *activityService) Recent(ctx context.Context) ([]domain.Activity, error) {
	return s.activityRepo.FindRecent(ctx, s.recentLimit)
}

func (s *activityService) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.activityRepo.DeleteOlderThan(ctx, cutoff)
}
