package model

import "time"

type BarterOffer struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	UserID       int       `gorm:"index" json:"user_id"`
	Offer        string    `json:"offer"`
	Want         string    `json:"want"`
	Location     string    `json:"location"`
	TeachingMode string    `gorm:"default:In-Person" json:"teaching_mode"`
	CreatedAt    time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"users,omitempty"`
}

func (b *BarterOffer) TableName() string {
	return "barter"
}

type BarterRequest struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	FromUserID int       `gorm:"index" json:"from_user_id"`
	ToUserID   int       `gorm:"index" json:"to_user_id"`
	BarterID   *int      `json:"barter_id"`
	Message    string    `gorm:"type:text" json:"message"`
	Status     string    `gorm:"default:pending" json:"status"` // pending, accepted, rejected
	CreatedAt  time.Time `json:"created_at"`

	FromUser *User `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
	ToUser   *User `gorm:"foreignKey:ToUserID" json:"to_user,omitempty"`
}

func (b *BarterRequest) TableName() string {
	return "barter_requests"
}
