package models

import "time"

// User represents an account that can log in and be attached to offers.
type User struct {
	ID        string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string        `json:"name" gorm:"type:varchar(255);not null"`
	DNI       string        `json:"dni" gorm:"column:dni;type:varchar(255)"`
	DNIType   string        `json:"dni_type" gorm:"column:dni_type;type:varchar(255)"`
	Email     string        `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password  string        `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash, never serialized
	Tokens    []AccessToken `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
