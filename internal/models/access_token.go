package models

import "time"

// AccessToken records an issued bearer token. The ID doubles as the JWT "jti"
// claim, so removing the row invalidates the token.
type AccessToken struct {
	ID         string     `gorm:"primaryKey;type:varchar(36)"`
	UserID     string     `gorm:"type:varchar(36);index;not null"`
	Name       string     `gorm:"type:varchar(255);not null"`
	LastUsedAt *time.Time
	CreatedAt  time.Time
}
