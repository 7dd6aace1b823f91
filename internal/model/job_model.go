package model

import "time"

type Job struct {
	ID             int        `gorm:"primaryKey" json:"id"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	Location       string     `json:"location"`
	Salary         string     `json:"salary"`
	Mode           string     `json:"mode"`
	RequiredSkills StringList `gorm:"type:jsonb" json:"required_skills"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}
