package model

import "time"

// Vote 每个投票人对每条动态只有一票，重复投票覆盖旧值
type Vote struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	PostID    uint64 `gorm:"uniqueIndex:ux_vote_post_voter;not null"`
	VoterCode string `gorm:"type:varchar(7);uniqueIndex:ux_vote_post_voter;not null"`
	Value     bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Vote) TableName() string { return "votes" }

// VoteTally 实时计数，始终由 votes 表统计得出
type VoteTally struct {
	True  int64 `json:"true_count"`
	False int64 `json:"false_count"`
}
