package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"WorkTrail/internal/model/dto"
	"WorkTrail/internal/repository"
	"WorkTrail/storage/database"
)

// 活动流读侧。写侧在 worker（internal/queue/consumer.go），
// 消费 MQ 里的扫码事件物化成 activity_events。

type ActivityService struct{}

var (
	activityService *ActivityService
	activityOnce    sync.Once
)

func Activity() *ActivityService {
	activityOnce.Do(func() {
		activityService = &ActivityService{}
	})
	return activityService
}

// GetFeed 公司最近的打卡活动，新的在前。
func (s *ActivityService) GetFeed(ctx context.Context, companyID int64, query dto.ActivityQuery) ([]dto.ActivityEventData, error) {
	db := database.DB().WithContext(ctx)

	events, err := repository.ListActivityForCompany(db, companyID, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity events: %w", err)
	}

	result := make([]dto.ActivityEventData, 0, len(events))
	for _, event := range events {
		result = append(result, dto.ActivityEventData{
			ID:          strconv.FormatInt(event.ID, 10),
			UserID:      strconv.FormatInt(event.UserID, 10),
			TimeEntryID: strconv.FormatInt(event.TimeEntryID, 10),
			Kind:        string(event.Kind),
			OccurredAt:  event.OccurredAt,
		})
	}
	return result, nil
}
