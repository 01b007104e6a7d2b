package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthTokenModel mirrors the 'auth_tokens' table. Each user holds at most one token.
type AuthTokenModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key       string    `gorm:"column:token_key;type:varchar(512);uniqueIndex:idx_auth_tokens_key;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthTokenModel) TableName() string {
	return "auth_tokens"
}
