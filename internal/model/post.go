package model

import "time"

// Post 动态，可关联一场比赛
type Post struct {
	ID         uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	AuthorCode string    `json:"code" gorm:"type:varchar(7);index:idx_post_author;not null"`
	Body       string    `json:"body" gorm:"type:text;not null"`
	MatchID    *uint64   `json:"match_id,omitempty" gorm:"index"`
	CreatedAt  time.Time `json:"created_at" gorm:"index:idx_post_created"`
}

func (Post) TableName() string { return "posts" }

// Comment 评论（≤140 字符）
type Comment struct {
	ID         uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	PostID     uint64    `json:"post_id" gorm:"index:idx_comment_post;not null"`
	AuthorCode string    `json:"code" gorm:"type:varchar(7);not null"`
	Text       string    `json:"text" gorm:"type:varchar(140);not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Comment) TableName() string { return "comments" }
