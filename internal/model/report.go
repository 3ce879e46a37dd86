package model

import "time"

// Report 举报，同一举报人对同一动态只计一次
type Report struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	PostID       uint64 `gorm:"uniqueIndex:ux_report_post_reporter;not null"`
	ReporterCode string `gorm:"type:varchar(7);uniqueIndex:ux_report_post_reporter;not null"`
	CreatedAt    time.Time
}

func (Report) TableName() string { return "reports" }
