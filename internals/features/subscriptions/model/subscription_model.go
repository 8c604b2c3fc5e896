package model

import (
	"time"
)

type SubscriptionModel struct {
	SubscriptionID int     `gorm:"column:subscription_id;primaryKey;autoIncrement" json:"subscription_id"`
	Name           string  `gorm:"column:name;type:varchar(100);not null;unique" json:"name"`
	MonthlyPrice   float64 `gorm:"column:monthly_price;type:decimal(10,2);not null" json:"monthly_price"`
	MaxProfiles    int     `gorm:"column:max_profiles;not null" json:"max_profiles"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
