package service

import (
	"context"
	"time"

	"udaan/internal/domain"
	"udaan/pkg/utils"
)

// 投递成功后写入学生收件箱的文案
const appliedNotification = "Your application has been submitted!"

type ApplicationService struct {
	apps     domain.ApplicationRepository
	jobs     domain.JobRepository
	users    domain.UserRepository
	inbox    domain.NotificationRepository
	inboxCap int
}

func NewApplicationService(
	apps domain.ApplicationRepository,
	jobs domain.JobRepository,
	users domain.UserRepository,
	inbox domain.NotificationRepository,
	inboxCap int,
) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, users: users, inbox: inbox, inboxCap: inboxCap}
}

// JobSummary / StudentSummary 列表联查出的摘要字段
type JobSummary struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Company  string           `json:"company"`
	Location string           `json:"location,omitempty"`
	Status   domain.JobStatus `json:"status"`
	LastDate string           `json:"lastDate"`
}

type StudentSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type StudentApplication struct {
	domain.Application
	Job *JobSummary `json:"job,omitempty"`
}

type JobApplication struct {
	domain.Application
	Student *StudentSummary `json:"student,omitempty"`
}

// Apply 投递职位。唯一性由两层保证：先预查询给出友好错误，
// 再靠存储层唯一索引拦截并发窗口里的第二次插入。
func (s *ApplicationService) Apply(ctx context.Context, ident Identity, jobID, resumeOverride string) (*domain.Application, error) {
	if jobID == "" {
		return nil, domain.Validation("jobId is required")
	}
	if !Can(ident, ActionApply, Resource{StudentID: ident.UserID}) {
		return nil, domain.Forbidden("only students can apply")
	}

	student, err := s.users.FindByID(ident.UserID)
	if err != nil {
		return nil, domain.Internal("load student failed", err)
	}
	if student == nil {
		return nil, domain.NotFound("student not found")
	}
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		return nil, domain.Internal("load job failed", err)
	}
	if job == nil {
		return nil, domain.NotFound("job not found")
	}
	if job.Status != domain.JobActive {
		return nil, domain.Validation("job is closed for applications")
	}

	existing, err := s.apps.FindByStudentAndJob(ident.UserID, jobID)
	if err != nil {
		return nil, domain.Internal("duplicate check failed", err)
	}
	if existing != nil {
		return nil, domain.Duplicate("already applied for this job")
	}

	// 简历取投递时快照，之后学生改档案不回写
	resume := resumeOverride
	if resume == "" {
		resume = student.Profile.Resume
	}
	app := &domain.Application{
		ID:        utils.NewID(),
		StudentID: ident.UserID,
		JobID:     jobID,
		Resume:    resume,
		Status:    domain.ApplicationApplied,
		AppliedAt: time.Now(),
	}
	if err := s.apps.Create(app); err != nil {
		if domain.Is(err, domain.KindDuplicate) {
			return nil, err
		}
		return nil, domain.Internal("create application failed", err)
	}

	n := &domain.Notification{
		ID:        utils.NewID(),
		UserID:    ident.UserID,
		Message:   appliedNotification,
		CreatedAt: time.Now(),
	}
	if err := s.inbox.Append(n, s.inboxCap); err != nil {
		return nil, domain.Internal("append notification failed", err)
	}
	return app, nil
}

// Withdraw 撤回投递。本人、职位归属招聘者或 admin 可操作。
func (s *ApplicationService) Withdraw(ctx context.Context, ident Identity, appID string) error {
	app, err := s.apps.FindByID(appID)
	if err != nil {
		return domain.Internal("load application failed", err)
	}
	if app == nil {
		return domain.NotFound("application not found")
	}
	res := Resource{StudentID: app.StudentID}
	if ident.Role == domain.RoleRecruiter {
		// 归属查失败必须报错：空 RecruiterID 会被当成无主职位放行
		job, err := s.jobs.FindByID(app.JobID)
		if err != nil {
			return domain.Internal("load job failed", err)
		}
		if job != nil {
			res.RecruiterID = job.RecruiterID
		}
	}
	if !Can(ident, ActionWithdraw, res) {
		return domain.Forbidden("not allowed to withdraw this application")
	}
	ok, err := s.apps.Delete(appID)
	if err != nil {
		return domain.Internal("withdraw failed", err)
	}
	if !ok {
		return domain.NotFound("application not found")
	}
	return nil
}

// ListByStudent 学生本人（或 admin）查看自己的投递，最新在前，带职位摘要
func (s *ApplicationService) ListByStudent(ctx context.Context, ident Identity, studentID string) ([]StudentApplication, error) {
	if !Can(ident, ActionListByStudent, Resource{StudentID: studentID}) {
		return nil, domain.Forbidden("cannot view another student's applications")
	}
	apps, err := s.apps.ListByStudent(studentID)
	if err != nil {
		return nil, domain.Internal("list applications failed", err)
	}
	jobIDs := make([]string, 0, len(apps))
	for _, a := range apps {
		jobIDs = append(jobIDs, a.JobID)
	}
	jobs, err := s.jobs.FindByIDs(jobIDs)
	if err != nil {
		return nil, domain.Internal("load jobs failed", err)
	}
	byID := make(map[string]domain.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}
	out := make([]StudentApplication, 0, len(apps))
	for _, a := range apps {
		row := StudentApplication{Application: a}
		if j, ok := byID[a.JobID]; ok {
			row.Job = &JobSummary{
				ID: j.ID, Title: j.Title, Company: j.Company,
				Location: j.Location, Status: j.Status, LastDate: j.LastDate,
			}
		}
		// 职位被删的悬挂引用容忍：Job 留空
		out = append(out, row)
	}
	return out, nil
}

// ListByJob 招聘者/管理员视角的投递列表，带学生姓名与邮箱
func (s *ApplicationService) ListByJob(ctx context.Context, ident Identity, jobID string) ([]JobApplication, error) {
	job, err := s.jobs.FindByID(jobID)
	if err != nil {
		return nil, domain.Internal("load job failed", err)
	}
	if job == nil {
		return nil, domain.NotFound("job not found")
	}
	if !Can(ident, ActionListByJob, Resource{RecruiterID: job.RecruiterID}) {
		return nil, domain.Forbidden("recruiter or admin access required")
	}
	apps, err := s.apps.ListByJob(jobID)
	if err != nil {
		return nil, domain.Internal("list applications failed", err)
	}
	ids := make([]string, 0, len(apps))
	for _, a := range apps {
		ids = append(ids, a.StudentID)
	}
	students, err := s.users.FindByIDs(ids)
	if err != nil {
		return nil, domain.Internal("load students failed", err)
	}
	byID := make(map[string]domain.User, len(students))
	for _, u := range students {
		byID[u.ID] = u
	}
	out := make([]JobApplication, 0, len(apps))
	for _, a := range apps {
		row := JobApplication{Application: a}
		if u, ok := byID[a.StudentID]; ok {
			row.Student = &StudentSummary{ID: u.ID, Name: u.Name, Email: u.Email}
		}
		out = append(out, row)
	}
	return out, nil
}

// SetStatus 审核状态变更。已知状态之间任意迁移（宽松模型），
// 未知状态直接拒绝。
func (s *ApplicationService) SetStatus(ctx context.Context, ident Identity, appID string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, domain.Validation("unknown application status")
	}
	app, err := s.apps.FindByID(appID)
	if err != nil {
		return nil, domain.Internal("load application failed", err)
	}
	if app == nil {
		return nil, domain.NotFound("application not found")
	}
	res := Resource{}
	job, err := s.jobs.FindByID(app.JobID)
	if err != nil {
		return nil, domain.Internal("load job failed", err)
	}
	if job != nil {
		res.RecruiterID = job.RecruiterID
	}
	if !Can(ident, ActionSetStatus, res) {
		return nil, domain.Forbidden("recruiter or admin access required")
	}
	app.Status = status
	if err := s.apps.Update(app); err != nil {
		return nil, domain.Internal("update status failed", err)
	}
	return app, nil
}
