package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udaan/internal/core/auth"
	"udaan/internal/domain"
	"udaan/pkg/utils"
)

func newUserService() (*UserService, *fakeUserRepo, *fakeNotificationRepo, *fakeApplicationRepo, *fakeJobRepo) {
	users := newFakeUserRepo()
	notifs := newFakeNotificationRepo()
	apps := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "udaan", TTL: time.Hour}
	return NewUserService(users, notifs, apps, jobs, jwter, 0), users, notifs, apps, jobs
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _, _, _ := newUserService()
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{
		Name: "Rahul Sharma", Email: "rahul@student.com",
		Password: "student123", Role: domain.RoleStudent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, domain.RoleStudent, u.Role)
	// 密码只存哈希
	assert.NotEqual(t, "student123", u.PasswordHash)

	tok, got, err := svc.Login(ctx, "rahul@student.com", "student123")
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.Equal(t, u.ID, got.ID)

	_, _, err = svc.Login(ctx, "rahul@student.com", "wrong")
	assert.True(t, domain.Is(err, domain.KindUnauthorized))

	_, _, err = svc.Login(ctx, "nobody@student.com", "student123")
	assert.True(t, domain.Is(err, domain.KindUnauthorized))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _, _ := newUserService()
	ctx := context.Background()

	in := RegisterInput{Name: "A", Email: "a@x.com", Password: "secret1", Role: domain.RoleStudent}
	_, err := svc.Register(ctx, in)
	require.NoError(t, err)

	_, err = svc.Register(ctx, in)
	assert.True(t, domain.Is(err, domain.KindDuplicate))
}

func TestRegisterUnknownRole(t *testing.T) {
	svc, _, _, _, _ := newUserService()
	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@x.com", Password: "secret1", Role: "superuser",
	})
	assert.True(t, domain.Is(err, domain.KindValidation))
}

// 档案字段级合并：只覆盖请求里出现的字段
func TestUpdateProfileMerge(t *testing.T) {
	svc, users, _, _, _ := newUserService()
	ctx := context.Background()

	u := domain.User{
		ID: utils.NewID(), Name: "Rahul", Email: "rahul@student.com", Role: domain.RoleStudent,
		Profile: domain.Profile{
			Branch: "CS", Year: 2, CGPA: 8.0,
			Skills: []string{"Go"}, Phone: "9876543210",
		},
	}
	require.NoError(t, users.Create(&u))
	ident := Identity{UserID: u.ID, Role: domain.RoleStudent}

	cgpa := 9.1
	skills := []string{"Go", "SQL"}
	got, err := svc.UpdateProfile(ctx, ident, UpdateProfileInput{CGPA: &cgpa, Skills: &skills})
	require.NoError(t, err)

	assert.Equal(t, 9.1, got.Profile.CGPA)
	assert.Equal(t, []string{"Go", "SQL"}, got.Profile.Skills)
	// 未提及的字段不动
	assert.Equal(t, "CS", got.Profile.Branch)
	assert.Equal(t, 2, got.Profile.Year)
	assert.Equal(t, "9876543210", got.Profile.Phone)

	// 显式零值也能写入
	empty := ""
	got, err = svc.UpdateProfile(ctx, ident, UpdateProfileInput{Phone: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", got.Profile.Phone)
	assert.Equal(t, 9.1, got.Profile.CGPA)
}

func TestUpdateProfileStudentOnly(t *testing.T) {
	svc, users, _, _, _ := newUserService()
	r := domain.User{ID: utils.NewID(), Name: "HR", Email: "hr@x.com", Role: domain.RoleRecruiter}
	require.NoError(t, users.Create(&r))

	name := "New Name"
	_, err := svc.UpdateProfile(context.Background(),
		Identity{UserID: r.ID, Role: domain.RoleRecruiter},
		UpdateProfileInput{Name: &name})
	assert.True(t, domain.Is(err, domain.KindForbidden))
}

func TestDashboardStats(t *testing.T) {
	svc, users, _, apps, jobs := newUserService()
	ctx := context.Background()

	u := domain.User{ID: utils.NewID(), Name: "Rahul", Email: "r@x.com", Role: domain.RoleStudent}
	require.NoError(t, users.Create(&u))

	j1 := domain.Job{ID: utils.NewID(), Title: "SWE", Company: "G", Status: domain.JobActive}
	j2 := domain.Job{ID: utils.NewID(), Title: "FE", Company: "F", Status: domain.JobActive}
	closed := domain.Job{ID: utils.NewID(), Title: "Old", Company: "X", Status: domain.JobClosed}
	require.NoError(t, jobs.Create(&j1))
	require.NoError(t, jobs.Create(&j2))
	require.NoError(t, jobs.Create(&closed))

	require.NoError(t, apps.Create(&domain.Application{
		ID: utils.NewID(), StudentID: u.ID, JobID: j1.ID, Status: domain.ApplicationAccepted, AppliedAt: time.Now(),
	}))
	require.NoError(t, apps.Create(&domain.Application{
		ID: utils.NewID(), StudentID: u.ID, JobID: j2.ID, Status: domain.ApplicationApplied, AppliedAt: time.Now(),
	}))

	d, err := svc.Dashboard(ctx, Identity{UserID: u.ID, Role: domain.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, int64(2), d.Stats.TotalJobs) // 只数 active
	assert.Equal(t, 2, d.Stats.Applied)
	assert.Equal(t, 1, d.Stats.Shortlisted)
	assert.Len(t, d.Jobs, 2)
}

// 首页职位栏目遵守配置的分页条数
func TestDashboardHonorsPageSize(t *testing.T) {
	users := newFakeUserRepo()
	notifs := newFakeNotificationRepo()
	apps := newFakeApplicationRepo()
	jobs := newFakeJobRepo()
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "udaan", TTL: time.Hour}
	svc := NewUserService(users, notifs, apps, jobs, jwter, 1)

	u := domain.User{ID: utils.NewID(), Name: "Rahul", Email: "r@x.com", Role: domain.RoleStudent}
	require.NoError(t, users.Create(&u))
	require.NoError(t, jobs.Create(&domain.Job{ID: utils.NewID(), Title: "SWE", Company: "G", Status: domain.JobActive}))
	require.NoError(t, jobs.Create(&domain.Job{ID: utils.NewID(), Title: "FE", Company: "F", Status: domain.JobActive}))

	d, err := svc.Dashboard(context.Background(), Identity{UserID: u.ID, Role: domain.RoleStudent})
	require.NoError(t, err)
	assert.Len(t, d.Jobs, 1)
	assert.Equal(t, int64(2), d.Stats.TotalJobs)
}

func TestMarkNotificationRead(t *testing.T) {
	svc, users, notifs, _, _ := newUserService()
	ctx := context.Background()

	u := domain.User{ID: utils.NewID(), Name: "Rahul", Email: "r@x.com", Role: domain.RoleStudent}
	require.NoError(t, users.Create(&u))
	n := domain.Notification{ID: utils.NewID(), UserID: u.ID, Message: "hi", CreatedAt: time.Now()}
	require.NoError(t, notifs.Append(&n, 100))

	require.NoError(t, svc.MarkNotificationRead(ctx, u.ID, n.ID))
	list, err := svc.ListNotifications(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Read)

	// 别人的通知标不动
	err = svc.MarkNotificationRead(ctx, "other-user", n.ID)
	assert.True(t, domain.Is(err, domain.KindNotFound))

	err = svc.MarkNotificationRead(ctx, u.ID, "missing")
	assert.True(t, domain.Is(err, domain.KindNotFound))
}
