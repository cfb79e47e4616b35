package service

import (
	"context"
	"strings"

	"udaan/internal/core/auth"
	"udaan/internal/domain"
	"udaan/pkg/utils"
)

type UserService struct {
	users    domain.UserRepository
	notifs   domain.NotificationRepository
	apps     domain.ApplicationRepository
	jobs     domain.JobRepository
	jwter    *auth.JWTer
	pageSize int // 首页职位栏目条数，与列表页缺省一致
}

func NewUserService(
	users domain.UserRepository,
	notifs domain.NotificationRepository,
	apps domain.ApplicationRepository,
	jobs domain.JobRepository,
	jwter *auth.JWTer,
	pageSize int,
) *UserService {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &UserService{users: users, notifs: notifs, apps: apps, jobs: jobs, jwter: jwter, pageSize: pageSize}
}

type RegisterInput struct {
	Name     string      `json:"name" binding:"required,max=64"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     domain.Role `json:"role" binding:"required"`
}

// Register 注册。邮箱唯一（大小写敏感精确匹配），角色注册即定型。
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if !domain.ValidRole(in.Role) {
		return nil, domain.Validation("role must be student, recruiter or admin")
	}
	email := strings.TrimSpace(in.Email)
	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, domain.Internal("lookup user failed", err)
	}
	if existing != nil {
		return nil, domain.Duplicate("user already exists")
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, domain.Internal("hash password failed", err)
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
	}
	if err := s.users.Create(u); err != nil {
		// 并发注册兜底：唯一索引冲突同样报已存在
		if domain.Is(err, domain.KindDuplicate) {
			return nil, domain.Duplicate("user already exists")
		}
		return nil, domain.Internal("create user failed", err)
	}
	return u, nil
}

// Login 校验密码并签发 JWT（uid + role）
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	u, err := s.users.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return "", nil, domain.Internal("lookup user failed", err)
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return "", nil, domain.Unauthorized("invalid credentials")
	}
	tok, err := s.jwter.Issue(u.ID, string(u.Role))
	if err != nil {
		return "", nil, domain.Internal("issue token failed", err)
	}
	return tok, u, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, domain.Internal("load user failed", err)
	}
	if u == nil {
		return nil, domain.NotFound("user not found")
	}
	return u, nil
}

// UpdateProfileInput 全部指针字段：nil 表示不动，零值也能显式写入
type UpdateProfileInput struct {
	Name    *string   `json:"name" binding:"omitempty,max=64"`
	Resume  *string   `json:"resume" binding:"omitempty,max=255"`
	CGPA    *float64  `json:"cgpa" binding:"omitempty,gte=0,lte=10"`
	Branch  *string   `json:"branch" binding:"omitempty,max=64"`
	Year    *int      `json:"year" binding:"omitempty,gte=1,lte=6"`
	Skills  *[]string `json:"skills"`
	Phone   *string   `json:"phone" binding:"omitempty,max=20"`
	College *string   `json:"college" binding:"omitempty,max=128"`
}

// UpdateProfile 字段级合并：只覆盖请求里出现的字段，其余保留。
// 仅学生本人可改。
func (s *UserService) UpdateProfile(ctx context.Context, ident Identity, in UpdateProfileInput) (*domain.User, error) {
	if !Can(ident, ActionUpdateProfile, Resource{StudentID: ident.UserID}) {
		return nil, domain.Forbidden("only students can update their profile")
	}
	u, err := s.users.FindByID(ident.UserID)
	if err != nil {
		return nil, domain.Internal("load user failed", err)
	}
	if u == nil {
		return nil, domain.NotFound("user not found")
	}
	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Resume != nil {
		u.Profile.Resume = *in.Resume
	}
	if in.CGPA != nil {
		u.Profile.CGPA = *in.CGPA
	}
	if in.Branch != nil {
		u.Profile.Branch = *in.Branch
	}
	if in.Year != nil {
		u.Profile.Year = *in.Year
	}
	if in.Skills != nil {
		u.Profile.Skills = *in.Skills
	}
	if in.Phone != nil {
		u.Profile.Phone = *in.Phone
	}
	if in.College != nil {
		u.Profile.College = *in.College
	}
	if err := s.users.Update(u); err != nil {
		return nil, domain.Internal("update profile failed", err)
	}
	return u, nil
}

type DashboardStats struct {
	TotalJobs   int64 `json:"totalJobs"`
	Applied     int   `json:"applied"`
	Shortlisted int   `json:"shortlisted"`
}

type Dashboard struct {
	Student *domain.User   `json:"student"`
	Jobs    []domain.Job   `json:"jobs"`
	Stats   DashboardStats `json:"stats"`
}

// Dashboard 学生首页聚合：档案 + 活跃职位 + 投递统计
func (s *UserService) Dashboard(ctx context.Context, ident Identity) (*Dashboard, error) {
	u, err := s.users.FindByID(ident.UserID)
	if err != nil {
		return nil, domain.Internal("load user failed", err)
	}
	if u == nil {
		return nil, domain.NotFound("student not found")
	}
	jobs, total, err := s.jobs.ListActive("", 0, s.pageSize)
	if err != nil {
		return nil, domain.Internal("list jobs failed", err)
	}
	apps, err := s.apps.ListByStudent(ident.UserID)
	if err != nil {
		return nil, domain.Internal("list applications failed", err)
	}
	shortlisted := 0
	for _, a := range apps {
		if a.Status == domain.ApplicationAccepted {
			shortlisted++
		}
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return &Dashboard{
		Student: u,
		Jobs:    jobs,
		Stats: DashboardStats{
			TotalJobs:   total,
			Applied:     len(apps),
			Shortlisted: shortlisted,
		},
	}, nil
}

func (s *UserService) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	ns, err := s.notifs.ListByUser(userID)
	if err != nil {
		return nil, domain.Internal("list notifications failed", err)
	}
	if ns == nil {
		ns = []domain.Notification{}
	}
	return ns, nil
}

// MarkNotificationRead id 不属于该用户时返回 NotFound
func (s *UserService) MarkNotificationRead(ctx context.Context, userID, notifID string) error {
	ok, err := s.notifs.MarkRead(userID, notifID)
	if err != nil {
		return domain.Internal("mark notification failed", err)
	}
	if !ok {
		return domain.NotFound("notification not found")
	}
	return nil
}
