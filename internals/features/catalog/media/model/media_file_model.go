package model

import (
	"time"

	contentModel "streamku_backend/internals/features/catalog/content/model"
)

// File path disimpan sebagai string opaque; tidak divalidasi sebagai path/URL.
type MediaFileModel struct {
	MediaID    int    `gorm:"column:media_id;primaryKey;autoIncrement" json:"media_id"`
	ContentID  int    `gorm:"column:content_id;not null" json:"content_id"`
	Resolution string `gorm:"column:resolution;type:varchar(20);not null" json:"resolution"`
	Language   string `gorm:"column:language;type:varchar(50);not null" json:"language"`
	FilePath   string `gorm:"column:file_path;type:varchar(500);not null" json:"file_path"`

	Content *contentModel.ContentModel `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (MediaFileModel) TableName() string {
	return "media_files"
}
