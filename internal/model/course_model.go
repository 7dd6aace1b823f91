package model

type Course struct {
	ID       int     `gorm:"primaryKey" json:"id"`
	Name     string  `json:"name"`
	Provider string  `json:"provider"`
	Duration string  `json:"duration"`
	Link     string  `json:"link"`
	Rating   float64 `json:"rating"`
	Reviews  int     `json:"reviews"`
	Cost     string  `json:"cost"`
	Mode     string  `json:"mode"`
}

func (c *Course) TableName() string {
	return "courses"
}
