package models

import "time"

const (
	OfferStatusActive   = "active"
	OfferStatusInactive = "inactive"
)

// Offer is a named promotion attached to a set of users.
type Offer struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Status    string    `json:"status" gorm:"type:varchar(16);not null"`
	Users     []User    `json:"users" gorm:"many2many:offer_user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OfferUser is a row of the offer/user association table.
type OfferUser struct {
	OfferID string `gorm:"primaryKey;type:varchar(36)"`
	UserID  string `gorm:"primaryKey;type:varchar(36);index"`
}

func (OfferUser) TableName() string {
	return "offer_user"
}
