package model

import (
	"time"

	accountModel "streamku_backend/internals/features/users/account/model"
)

type ProfileModel struct {
	ProfileID     int    `gorm:"column:profile_id;primaryKey;autoIncrement" json:"profile_id"`
	AccountID     int    `gorm:"column:account_id;not null;index:idx_profiles_account_id" json:"account_id"`
	Name          string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	AgeRatingPref string `gorm:"column:age_rating_pref;type:varchar(10);not null" json:"age_rating_pref"`

	Account *accountModel.AccountModel `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
