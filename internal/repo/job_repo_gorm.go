package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"udaan/internal/domain"
)

type JobRepo struct{ db *gorm.DB }

func NewJobRepo(db *gorm.DB) *JobRepo { return &JobRepo{db: db} }

func (r *JobRepo) Create(j *domain.Job) error { return r.db.Create(j).Error }

func (r *JobRepo) FindByID(id string) (*domain.Job, error) {
	var j domain.Job
	err := r.db.First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &j, err
}

func (r *JobRepo) FindByIDs(ids []string) ([]domain.Job, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var js []domain.Job
	err := r.db.Where("id IN ?", ids).Find(&js).Error
	return js, err
}

func (r *JobRepo) ListActive(search string, offset, limit int) ([]domain.Job, int64, error) {
	q := r.db.Model(&domain.Job{}).Where("status = ?", domain.JobActive)
	if s := strings.TrimSpace(search); s != "" {
		// LOWER 两侧归一，MySQL/PG 通用
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var jobs []domain.Job
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// Count 全量职位数（含 closed），仅做展示
func (r *JobRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&domain.Job{}).Count(&total).Error
	return total, err
}

func (r *JobRepo) Update(j *domain.Job) error { return r.db.Save(j).Error }
