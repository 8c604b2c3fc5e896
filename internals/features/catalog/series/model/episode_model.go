package model

import (
	"time"
)

type EpisodeModel struct {
	EpisodeID     int    `gorm:"column:episode_id;primaryKey;autoIncrement" json:"episode_id"`
	SeasonID      int    `gorm:"column:season_id;not null;uniqueIndex:ux_episodes_season_number" json:"season_id"`
	Title         string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	EpisodeNumber int    `gorm:"column:episode_number;not null;uniqueIndex:ux_episodes_season_number" json:"episode_number"`

	Season *SeasonModel `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (EpisodeModel) TableName() string {
	return "episodes"
}
