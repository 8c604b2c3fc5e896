package model

import (
	"time"

	contentModel "streamku_backend/internals/features/catalog/content/model"
	profileModel "streamku_backend/internals/features/users/profile/model"
)

// Keanggotaan murni: satu baris per (profile, content), tanpa urutan.
type WishlistModel struct {
	ProfileID int `gorm:"column:profile_id;primaryKey;index:idx_wishlist_profile_id" json:"profile_id"`
	ContentID int `gorm:"column:content_id;primaryKey" json:"content_id"`

	Profile *profileModel.ProfileModel `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Content *contentModel.ContentModel `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	AddedAt time.Time `gorm:"column:added_at;autoCreateTime" json:"-"`
}

func (WishlistModel) TableName() string {
	return "wishlist"
}
