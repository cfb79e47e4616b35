package repo

import (
	"errors"

	"gorm.io/gorm"

	"udaan/internal/domain"
)

type ApplicationRepo struct{ db *gorm.DB }

func NewApplicationRepo(db *gorm.DB) *ApplicationRepo { return &ApplicationRepo{db: db} }

// Create 依赖 (student_id, job_id) 唯一索引兜底并发重复投递，
// 冲突翻译成 KindDuplicate，和服务层预查询同一种错误
func (r *ApplicationRepo) Create(a *domain.Application) error {
	if err := r.db.Create(a).Error; err != nil {
		if isDupKey(err) {
			return domain.Duplicate("already applied for this job")
		}
		return err
	}
	return nil
}

func (r *ApplicationRepo) FindByID(id string) (*domain.Application, error) {
	var a domain.Application
	err := r.db.First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *ApplicationRepo) FindByStudentAndJob(studentID, jobID string) (*domain.Application, error) {
	var a domain.Application
	err := r.db.First(&a, "student_id = ? AND job_id = ?", studentID, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *ApplicationRepo) ListByStudent(studentID string) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepo) ListByJob(jobID string) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.Where("job_id = ?", jobID).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepo) Update(a *domain.Application) error { return r.db.Save(a).Error }

func (r *ApplicationRepo) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&domain.Application{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
