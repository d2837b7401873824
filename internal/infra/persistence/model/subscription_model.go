package model

import (
	"time"

	"danyowa/internal/domain/entity"
)

// SubscriptionRecordModel is the GORM-specific struct for the 'subscription_records' table.
// One row per user; nested documents are stored as JSONB columns.
type SubscriptionRecordModel struct {
	UserID           string                  `gorm:"type:text;primaryKey"`
	Subscription     entity.PushSubscription `gorm:"type:jsonb;serializer:json;not null"`
	Children         []entity.Child          `gorm:"type:jsonb;serializer:json;not null"`
	Schedules        []entity.ScheduleEntry  `gorm:"type:jsonb;serializer:json;not null"`
	BriefingSettings entity.BriefingSettings `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionRecordModel) TableName() string {
	return "subscription_records"
}
