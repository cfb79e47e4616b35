package service

import (
	"sort"
	"sync"

	"udaan/internal/domain"
)

// 内存版仓储：测试替身，行为对齐 gorm 实现
// （包括唯一索引兜底和按创建时间排序）

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (r *fakeUserRepo) Create(u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.users {
		if e.Email == u.Email {
			return domain.Duplicate("email already registered")
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByIDs(ids []string) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
	return nil
}

type fakeJobRepo struct {
	mu       sync.Mutex
	jobs     map[string]domain.Job
	seq      int // 插入顺序，代替 created_at 排序
	ord      map[string]int
	failFind error // 注入 FindByID 故障
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]domain.Job), ord: make(map[string]int)}
}

func (r *fakeJobRepo) Create(j *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.ord[j.ID] = r.seq
	r.jobs[j.ID] = *j
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failFind != nil {
		return nil, r.failFind
	}
	if j, ok := r.jobs[id]; ok {
		cp := j
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeJobRepo) FindByIDs(ids []string) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Job
	for _, id := range ids {
		if j, ok := r.jobs[id]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) ListActive(search string, offset, limit int) ([]domain.Job, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []domain.Job
	for _, j := range r.jobs {
		if j.Status != domain.JobActive {
			continue
		}
		if search != "" && !containsFold(j.Title, search) {
			continue
		}
		all = append(all, j)
	}
	sort.Slice(all, func(i, k int) bool { return r.ord[all[i].ID] > r.ord[all[k].ID] })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r *fakeJobRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.jobs)), nil
}

func (r *fakeJobRepo) Update(j *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[j.ID] = *j
	return nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[string]domain.Application
	seq  int
	ord  map[string]int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]domain.Application), ord: make(map[string]int)}
}

// Create 和 gorm 实现一致：(student, job) 冲突返回 KindDuplicate
func (r *fakeApplicationRepo) Create(a *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.apps {
		if e.StudentID == a.StudentID && e.JobID == a.JobID {
			return domain.Duplicate("already applied for this job")
		}
	}
	r.seq++
	r.ord[a.ID] = r.seq
	r.apps[a.ID] = *a
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.apps[id]; ok {
		cp := a
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeApplicationRepo) FindByStudentAndJob(studentID, jobID string) (*domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.StudentID == studentID && a.JobID == jobID {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeApplicationRepo) ListByStudent(studentID string) ([]domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Application
	for _, a := range r.apps {
		if a.StudentID == studentID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, k int) bool { return r.ord[out[i].ID] > r.ord[out[k].ID] })
	return out, nil
}

func (r *fakeApplicationRepo) ListByJob(jobID string) ([]domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Application
	for _, a := range r.apps {
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, k int) bool { return r.ord[out[i].ID] > r.ord[out[k].ID] })
	return out, nil
}

func (r *fakeApplicationRepo) Update(a *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[a.ID] = *a
	return nil
}

func (r *fakeApplicationRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[id]; !ok {
		return false, nil
	}
	delete(r.apps, id)
	return true, nil
}

func (r *fakeApplicationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.apps)
}

type fakeNotificationRepo struct {
	mu    sync.Mutex
	items map[string][]domain.Notification // userID → 收件顺序
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{items: make(map[string][]domain.Notification)}
}

func (r *fakeNotificationRepo) Append(n *domain.Notification, keep int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := append(r.items[n.UserID], *n)
	if keep > 0 && len(list) > keep {
		list = list[len(list)-keep:]
	}
	r.items[n.UserID] = list
	return nil
}

func (r *fakeNotificationRepo) ListByUser(userID string) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Notification(nil), r.items[userID]...), nil
}

func (r *fakeNotificationRepo) MarkRead(userID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.items[userID]
	for i := range list {
		if list[i].ID == id {
			list[i].Read = true
			return true, nil
		}
	}
	return false, nil
}

func containsFold(s, sub string) bool {
	return indexFold(s, sub) >= 0
}

func indexFold(s, sub string) int {
	ls, lsub := toLower(s), toLower(sub)
	for i := 0; i+len(lsub) <= len(ls); i++ {
		if ls[i:i+len(lsub)] == lsub {
			return i
		}
	}
	return -1
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}
