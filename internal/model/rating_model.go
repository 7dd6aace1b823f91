package model

import "time"

type Rating struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	FromUserID int       `gorm:"index" json:"from_user_id"`
	ToUserID   int       `gorm:"index" json:"to_user_id"`
	Rating     int       `json:"rating"`
	Review     string    `gorm:"type:text" json:"review"`
	CreatedAt  time.Time `json:"created_at"`

	FromUser *User `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
}

func (r *Rating) TableName() string {
	return "ratings"
}
