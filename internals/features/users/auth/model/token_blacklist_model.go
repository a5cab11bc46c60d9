package model

import (
	"time"

	"gorm.io/gorm"
)

// Token yang sudah di-logout masuk sini sampai kadaluarsa.
type TokenBlacklist struct {
	TokenBlacklistID        uint           `gorm:"primaryKey;column:token_blacklist_id" json:"token_blacklist_id"`
	TokenBlacklistToken     string         `gorm:"type:text;not null;unique;column:token_blacklist_token" json:"token_blacklist_token"`
	TokenBlacklistExpiredAt time.Time      `gorm:"type:timestamptz;column:token_blacklist_expired_at" json:"token_blacklist_expired_at"`
	TokenBlacklistCreatedAt time.Time      `gorm:"type:timestamptz;autoCreateTime;column:token_blacklist_created_at" json:"token_blacklist_created_at"`
	TokenBlacklistDeletedAt gorm.DeletedAt `gorm:"column:token_blacklist_deleted_at;index" json:"token_blacklist_deleted_at,omitempty"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
