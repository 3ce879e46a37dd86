package model

import (
	"time"
)

// Follow 关注关系（Follower 关注 Target），关注不可撤销
type Follow struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	FollowerCode string `gorm:"type:varchar(7);index:idx_follow_follower;uniqueIndex:ux_follow_pair;not null"`
	TargetCode   string `gorm:"type:varchar(7);index:idx_follow_target;uniqueIndex:ux_follow_pair;not null"`
	// 复合唯一键 ux_follow_pair = (follower_code, target_code)，重复关注不会重复加分
	CreatedAt time.Time
}

func (Follow) TableName() string { return "follows" }
