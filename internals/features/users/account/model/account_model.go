package model

import (
	"time"

	subscriptionModel "streamku_backend/internals/features/subscriptions/model"
)

type AccountModel struct {
	AccountID    int    `gorm:"column:account_id;primaryKey;autoIncrement" json:"account_id"`
	Email        string `gorm:"column:email;type:varchar(255);not null;unique;index:idx_accounts_email" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`

	// Nullable: akun boleh hidup tanpa paket (paket dihapus → SET NULL).
	SubscriptionID *int                                 `gorm:"column:subscription_id" json:"subscription_id"`
	Subscription   *subscriptionModel.SubscriptionModel `gorm:"constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AccountModel) TableName() string {
	return "accounts"
}
