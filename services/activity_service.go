// services/activity_service.go
package services

import (
	"littlemeals/config"
	"littlemeals/models"
)

// ActivityService keeps the family activity feed and fans entries out
// to push, when push is configured. Feed writes are best-effort: a
// failed insert never blocks the meal operation that triggered it.
type ActivityService struct {
	push *PushService
}

func NewActivityService(ps *PushService) *ActivityService {
	return &ActivityService{push: ps}
}

func (s *ActivityService) Record(familyID, typ, message string) {
	entry := &models.ActivityEntry{
		FamilyID: familyID,
		Type:     typ,
		Message:  message,
	}
	_ = config.DB.Create(entry).Error

	if s.push != nil {
		s.push.NotifyFamily(familyID, typ, message)
	}
}

func (s *ActivityService) List(familyID string, limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []models.ActivityEntry
	err := config.DB.
		Where("family_id = ?", familyID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
