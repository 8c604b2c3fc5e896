package model

import (
	"time"

	contentModel "streamku_backend/internals/features/catalog/content/model"
)

type SeasonModel struct {
	SeasonID     int `gorm:"column:season_id;primaryKey;autoIncrement" json:"season_id"`
	ContentID    int `gorm:"column:content_id;not null;uniqueIndex:ux_seasons_content_number" json:"content_id"`
	SeasonNumber int `gorm:"column:season_number;not null;uniqueIndex:ux_seasons_content_number" json:"season_number"`

	Content *contentModel.ContentModel `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (SeasonModel) TableName() string {
	return "seasons"
}
