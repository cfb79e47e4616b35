package domain

import "time"

type ApplicationStatus string

const (
	ApplicationApplied  ApplicationStatus = "applied"
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationApplied, ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Application 学生与职位的多对多关联，(student_id, job_id) 全局唯一。
// 唯一约束由存储层兜底，并发重复投递由此拦截。
type Application struct {
	ID        string            `gorm:"primaryKey;size:36" json:"id"`
	StudentID string            `gorm:"size:36;uniqueIndex:idx_student_job" json:"studentId"`
	JobID     string            `gorm:"size:36;uniqueIndex:idx_student_job" json:"jobId"`
	Resume    string            `gorm:"size:255" json:"resume,omitempty"` // 投递时快照
	Status    ApplicationStatus `gorm:"size:16;default:applied" json:"status"`
	AppliedAt time.Time         `json:"appliedAt"`
	CreatedAt time.Time         `json:"-"`
	UpdatedAt time.Time         `json:"-"`
}

func (Application) TableName() string { return "applications" }

type ApplicationRepository interface {
	// Create 唯一键冲突时必须返回 KindDuplicate 错误
	Create(a *Application) error
	FindByID(id string) (*Application, error)
	FindByStudentAndJob(studentID, jobID string) (*Application, error)
	// 列表按创建时间倒序（最新在前）
	ListByStudent(studentID string) ([]Application, error)
	ListByJob(jobID string) ([]Application, error)
	Update(a *Application) error
	// Delete 返回是否删到了行
	Delete(id string) (bool, error)
}
