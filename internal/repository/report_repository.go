package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/futsalero/internal/model"
)

type ReportRepository interface {
	WithTx(tx *gorm.DB) ReportRepository
	// Create 返回 false 表示该举报人已举报过
	Create(ctx context.Context, postID uint64, reporterCode string) (bool, error)
	Count(ctx context.Context, postID uint64) (int64, error)
	DeleteByPost(ctx context.Context, postID uint64) (int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepository{db: db} }

func (r *reportRepository) WithTx(tx *gorm.DB) ReportRepository { return &reportRepository{db: tx} }

func (r *reportRepository) Create(ctx context.Context, postID uint64, reporterCode string) (bool, error) {
	rep := &model.Report{PostID: postID, ReporterCode: reporterCode}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rep)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *reportRepository) Count(ctx context.Context, postID uint64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Report{}).Where("post_id = ?", postID).Count(&cnt).Error
	return cnt, err
}

func (r *reportRepository) DeleteByPost(ctx context.Context, postID uint64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.Report{})
	return tx.RowsAffected, tx.Error
}
