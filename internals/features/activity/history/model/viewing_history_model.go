package model

import (
	"time"

	contentModel "streamku_backend/internals/features/catalog/content/model"
	profileModel "streamku_backend/internals/features/users/profile/model"
)

// Posisi playback terakhir per (profile, content); upsert last-write-wins.
type ViewingHistoryModel struct {
	ProfileID     int `gorm:"column:profile_id;primaryKey;index:idx_viewing_history_profile_id" json:"profile_id"`
	ContentID     int `gorm:"column:content_id;primaryKey" json:"content_id"`
	LastTimestamp int `gorm:"column:last_timestamp;not null" json:"last_timestamp"`

	Profile *profileModel.ProfileModel `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Content *contentModel.ContentModel `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	WatchedAt time.Time `gorm:"column:watched_at;autoCreateTime" json:"-"`
}

func (ViewingHistoryModel) TableName() string {
	return "viewing_history"
}
