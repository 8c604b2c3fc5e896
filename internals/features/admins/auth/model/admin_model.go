package model

import (
	"time"
)

// Admin adalah principal terpisah dari Account; tidak ada relasi ke entitas user.
type AdminModel struct {
	AdminID      int    `gorm:"column:admin_id;primaryKey;autoIncrement" json:"admin_id"`
	Username     string `gorm:"column:username;type:varchar(100);not null;unique" json:"username"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}
