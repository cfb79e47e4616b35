package domain

import "time"

type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

func ValidRole(r Role) bool {
	return r == RoleStudent || r == RoleRecruiter || r == RoleAdmin
}

// Profile 学生档案，整体可选
type Profile struct {
	Resume  string   `gorm:"size:255" json:"resume,omitempty"`
	CGPA    float64  `json:"cgpa,omitempty"`
	Branch  string   `gorm:"size:64" json:"branch,omitempty"`
	Year    int      `json:"year,omitempty"`
	Skills  []string `gorm:"serializer:json" json:"skills,omitempty"`
	Phone   string   `gorm:"size:20" json:"phone,omitempty"`
	College string   `gorm:"size:128" json:"college,omitempty"`
}

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:64" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:191" json:"email"`
	PasswordHash string    `gorm:"size:191" json:"-"`
	Role         Role      `gorm:"size:16" json:"role"` // 注册后不可变
	Profile      Profile   `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// Notification 用户站内信，按创建时间正序即收件顺序
type Notification struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36" json:"-"`
	Message   string    `gorm:"size:255" json:"message"`
	Read      bool      `gorm:"default:false" json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Notification) TableName() string { return "notifications" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByIDs(ids []string) ([]User, error)
	FindByEmail(email string) (*User, error)
	Update(u *User) error
}

type NotificationRepository interface {
	// Append 追加一条通知；keep > 0 时裁剪该用户多余的旧通知
	Append(n *Notification, keep int) error
	ListByUser(userID string) ([]Notification, error)
	// MarkRead 返回是否命中（id 不属于该用户时为 false）
	MarkRead(userID, id string) (bool, error)
}
