package model

import "time"

// MatchEntry 单场比赛数据，只追加不修改
type MatchEntry struct {
	ID           uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	PlayerCode   string    `json:"code" gorm:"type:varchar(7);index:idx_match_player;index:idx_match_category_player,priority:2;not null"`
	Category     Category  `json:"category" gorm:"type:varchar(32);index:idx_match_category_player,priority:1;not null"`
	Points       int64     `json:"points" gorm:"not null;default:0"`
	Goals        int64     `json:"goals" gorm:"not null;default:0"`
	Assists      int64     `json:"assists" gorm:"not null;default:0"`
	IsGoalkeeper bool      `json:"is_goalkeeper" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_match_created"`
}

func (MatchEntry) TableName() string { return "match_entries" }
