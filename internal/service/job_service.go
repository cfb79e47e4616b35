package service

import (
	"context"
	"time"

	"udaan/internal/core/cache"
	"udaan/internal/domain"
	"udaan/pkg/utils"
)

const (
	defaultPageSize    = 20
	defaultMaxPageSize = 100

	jobCountCacheKey = "udaan:jobs:count"
	jobCountCacheTTL = 30 * time.Second
)

type JobService struct {
	jobs        domain.JobRepository
	cache       *cache.Cache // 可为 nil（未配置 redis 时直查库）
	pageSize    int
	maxPageSize int
}

func NewJobService(jobs domain.JobRepository, c *cache.Cache, pageSize, maxPageSize int) *JobService {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if maxPageSize <= 0 {
		maxPageSize = defaultMaxPageSize
	}
	return &JobService{jobs: jobs, cache: c, pageSize: pageSize, maxPageSize: maxPageSize}
}

type ListJobsQuery struct {
	Search   string
	Page     int
	PageSize int
}

type JobPage struct {
	Items    []domain.Job `json:"items"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}

// ListActive 学生端职位列表：只含 active，标题忽略大小写模糊搜，分页兜底
func (s *JobService) ListActive(ctx context.Context, q ListJobsQuery) (*JobPage, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = s.pageSize
	}
	if q.PageSize > s.maxPageSize {
		q.PageSize = s.maxPageSize
	}
	offset := (q.Page - 1) * q.PageSize
	jobs, total, err := s.jobs.ListActive(q.Search, offset, q.PageSize)
	if err != nil {
		return nil, domain.Internal("list jobs failed", err)
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return &JobPage{Items: jobs, Total: total, Page: q.Page, PageSize: q.PageSize}, nil
}

// Count 全量职位数，展示用；挂 redis 短 TTL，singleflight 合并回源
func (s *JobService) Count(ctx context.Context) (int64, error) {
	if s.cache == nil {
		n, err := s.jobs.Count()
		if err != nil {
			return 0, domain.Internal("count jobs failed", err)
		}
		return n, nil
	}
	n, err := cache.GetOrLoadJSON[int64](s.cache, ctx, jobCountCacheKey, jobCountCacheTTL, func(ctx context.Context) (*int64, error) {
		v, e := s.jobs.Count()
		if e != nil {
			return nil, e
		}
		return &v, nil
	})
	if err != nil {
		return 0, domain.Internal("count jobs failed", err)
	}
	if n == nil {
		return 0, nil
	}
	return *n, nil
}

type CreateJobInput struct {
	Title          string   `json:"title" binding:"required,max=128"`
	Company        string   `json:"company" binding:"required,max=128"`
	Location       string   `json:"location" binding:"omitempty,max=128"`
	Description    string   `json:"description"`
	SkillsRequired []string `json:"skillsRequired"`
	Eligibility    string   `json:"eligibility" binding:"omitempty,max=255"`
	LastDate       string   `json:"lastDate" binding:"omitempty,datetime=2006-01-02"`
}

// Create 发布职位，recruiter/admin 专用；recruiter 自动成为归属人
func (s *JobService) Create(ctx context.Context, ident Identity, in CreateJobInput) (*domain.Job, error) {
	if !Can(ident, ActionPostJob, Resource{}) {
		return nil, domain.Forbidden("recruiter or admin access required")
	}
	if in.Eligibility == "" {
		in.Eligibility = "Any branch"
	}
	job := &domain.Job{
		ID:             utils.NewID(),
		Title:          in.Title,
		Company:        in.Company,
		Location:       in.Location,
		Description:    in.Description,
		SkillsRequired: in.SkillsRequired,
		Eligibility:    in.Eligibility,
		LastDate:       in.LastDate,
		Status:         domain.JobActive,
	}
	if ident.Role == domain.RoleRecruiter {
		job.RecruiterID = ident.UserID
	}
	if err := s.jobs.Create(job); err != nil {
		return nil, domain.Internal("create job failed", err)
	}
	return job, nil
}

// Close 关闭职位，active→closed 单向，不支持重开
func (s *JobService) Close(ctx context.Context, ident Identity, jobID string) (*domain.Job, error) {
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		return nil, domain.Internal("load job failed", err)
	}
	if job == nil {
		return nil, domain.NotFound("job not found")
	}
	if !Can(ident, ActionCloseJob, Resource{RecruiterID: job.RecruiterID}) {
		return nil, domain.Forbidden("recruiter or admin access required")
	}
	if job.Status == domain.JobClosed {
		return nil, domain.Validation("job already closed")
	}
	job.Status = domain.JobClosed
	if err := s.jobs.Update(job); err != nil {
		return nil, domain.Internal("close job failed", err)
	}
	return job, nil
}
