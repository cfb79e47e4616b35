package service

import "udaan/internal/domain"

// Identity 网关解析出的请求者身份（JWT uid + role）
type Identity struct {
	UserID string
	Role   domain.Role
}

type Action string

const (
	ActionApply         Action = "application.apply"
	ActionWithdraw      Action = "application.withdraw"
	ActionListByStudent Action = "application.list_by_student"
	ActionListByJob     Action = "application.list_by_job"
	ActionSetStatus     Action = "application.set_status"
	ActionPostJob       Action = "job.post"
	ActionCloseJob      Action = "job.close"
	ActionUpdateProfile Action = "profile.update"
)

// Resource 授权判定需要的归属信息，用不到的字段留空
type Resource struct {
	StudentID   string // 申请/档案的归属学生
	RecruiterID string // 职位的归属招聘者（可为空：历史职位无归属）
}

// Can 统一的授权入口，所有需要鉴权的服务操作都走这里。
// admin 放行一切；recruiter 对无归属职位也放行（历史数据兼容）。
func Can(id Identity, act Action, res Resource) bool {
	if id.Role == domain.RoleAdmin {
		return true
	}
	switch act {
	case ActionApply, ActionUpdateProfile:
		return id.Role == domain.RoleStudent && id.UserID == res.StudentID
	case ActionListByStudent:
		return id.Role == domain.RoleStudent && id.UserID == res.StudentID
	case ActionWithdraw:
		if id.Role == domain.RoleStudent {
			return id.UserID == res.StudentID
		}
		return id.Role == domain.RoleRecruiter && recruiterOwns(id, res)
	case ActionListByJob, ActionSetStatus, ActionCloseJob:
		return id.Role == domain.RoleRecruiter && recruiterOwns(id, res)
	case ActionPostJob:
		return id.Role == domain.RoleRecruiter
	}
	return false
}

func recruiterOwns(id Identity, res Resource) bool {
	return res.RecruiterID == "" || res.RecruiterID == id.UserID
}
