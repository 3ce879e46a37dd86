package model

import "time"

// Player 球员/球迷档案，Code 即身份码（AAA1234）
type Player struct {
	Code        string     `json:"code" gorm:"primaryKey;type:varchar(7)"`
	Username    string     `json:"username" gorm:"type:varchar(64);not null;default:''"`
	Role        Role       `json:"role" gorm:"type:varchar(8);not null;default:'player'"`
	Categories  []Category `json:"categories" gorm:"type:text;serializer:json"`
	SocialBonus int64      `json:"social_bonus" gorm:"not null;default:0"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Player) TableName() string { return "players" }
