package model

import (
	contentModel "streamku_backend/internals/features/catalog/content/model"
)

// Junction content ↔ genre; PK komposit, cascade dua arah.
type ContentGenreModel struct {
	ContentID int `gorm:"column:content_id;primaryKey" json:"content_id"`
	GenreID   int `gorm:"column:genre_id;primaryKey" json:"genre_id"`

	Content *contentModel.ContentModel `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Genre   *GenreModel                `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (ContentGenreModel) TableName() string {
	return "content_genres"
}
