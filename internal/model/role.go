package model

import "fmt"

// Role 用户角色，封闭枚举，分发时要求覆盖所有取值
type Role string

const (
	RoleStudent Role = "student"
	RoleAdvisor Role = "advisor"
	RoleCritic  Role = "critic"
	RoleAdmin   Role = "admin"
)

// ParseRole 解析角色字符串
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleAdvisor, RoleCritic, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// Dashboard 角色对应的仪表盘标识
func (r Role) Dashboard() string {
	switch r {
	case RoleStudent:
		return "student-workspace"
	case RoleAdvisor:
		return "advisor-command-center"
	case RoleCritic:
		return "critic-review-board"
	case RoleAdmin:
		return "admin-console"
	}
	// ParseRole 之外不会出现其他取值
	return ""
}

// CanReview 是否具备评审视角
func (r Role) CanReview() bool {
	switch r {
	case RoleAdvisor, RoleCritic, RoleAdmin:
		return true
	case RoleStudent:
		return false
	}
	return false
}
