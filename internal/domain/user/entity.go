package user

import (
	"time"
)

// User 用户实体（聚合根）
// 设计说明：
// 1. 密码已加密存储（bcrypt），不暴露明文
// 2. IsStaff标记管理员身份，后台路由据此门禁；该标记由数据维护，不可自助设置
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository负责映射）
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	Nickname  string
	IsStaff   bool // 是否为管理员
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码；新用户不是管理员
func NewUser(email, hashedPassword, nickname string) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		Nickname:  nickname,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateNickname 更新昵称（领域行为）
func (u *User) UpdateNickname(nickname string) {
	u.Nickname = nickname
	u.UpdatedAt = time.Now()
}
