package model

// User 学习者账号，仅用户名，唯一约束由存储层保证
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName string `gorm:"size:50;not null;uniqueIndex" json:"userName"`
}

func (User) TableName() string {
	return "users"
}
