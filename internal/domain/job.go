package domain

import "time"

type JobStatus string

const (
	JobActive JobStatus = "active"
	JobClosed JobStatus = "closed"
)

type Job struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	Title          string    `gorm:"size:128" json:"title"`
	Company        string    `gorm:"size:128" json:"company"`
	Location       string    `gorm:"size:128" json:"location,omitempty"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	SkillsRequired []string  `gorm:"serializer:json" json:"skillsRequired,omitempty"`
	Eligibility    string    `gorm:"size:255" json:"eligibility"`
	LastDate       string    `gorm:"size:10" json:"lastDate"` // YYYY-MM-DD
	Status         JobStatus `gorm:"size:16;index" json:"status"`
	RecruiterID    string    `gorm:"index;size:36" json:"recruiterId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (Job) TableName() string { return "jobs" }

type JobRepository interface {
	Create(j *Job) error
	FindByID(id string) (*Job, error)
	FindByIDs(ids []string) ([]Job, error)
	// ListActive 只返回 active 职位；search 为标题子串（忽略大小写）
	ListActive(search string, offset, limit int) ([]Job, int64, error)
	Count() (int64, error)
	Update(j *Job) error
}
