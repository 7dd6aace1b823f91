package model

import "time"

type User struct {
	ID         int        `gorm:"primaryKey" json:"id"`
	Name       string     `json:"name"`
	Email      string     `gorm:"uniqueIndex" json:"email"`
	Password   string     `json:"-"`
	Skills     StringList `gorm:"type:jsonb" json:"skills"`
	Location   string     `json:"location"`
	Bio        string     `gorm:"type:text" json:"bio"`
	ProfileImg string     `json:"profile_img"`
	CareerGoal string     `json:"career_goal"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (u *User) TableName() string {
	return "users"
}
