package model

import "time"

type RoadmapEntry struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	UserID         int       `gorm:"index" json:"user_id"`
	SkillName      string    `json:"skill_name"`
	CourseName     string    `json:"course_name"`
	CourseProvider string    `json:"course_provider"`
	CourseLink     string    `json:"course_link"`
	TargetDate     string    `json:"target_date"`
	Status         string    `gorm:"default:planned" json:"status"` // planned, in_progress, completed
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}

func (r *RoadmapEntry) TableName() string {
	return "roadmap"
}
