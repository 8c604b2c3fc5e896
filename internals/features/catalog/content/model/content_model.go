package model

import (
	"time"
)

// Tipe konten dibatasi dua nilai; CHECK constraint ikut dibuat saat migrate.
const (
	TypeMovie = "Movie"
	TypeShow  = "Show"
)

func ValidType(t string) bool {
	return t == TypeMovie || t == TypeShow
}

type ContentModel struct {
	ContentID   int    `gorm:"column:content_id;primaryKey;autoIncrement" json:"content_id"`
	Title       string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Type        string `gorm:"column:type;type:varchar(10);not null;index:idx_content_type;check:type IN ('Movie','Show')" json:"type"`
	Description string `gorm:"column:description;type:text" json:"description"`
	ReleaseYear int    `gorm:"column:release_year;index:idx_content_release_year" json:"release_year"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}

func (ContentModel) TableName() string {
	return "content"
}
