package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/futsalero/internal/model"
)

type FollowRepository interface {
	WithTx(tx *gorm.DB) FollowRepository
	// Create 返回 false 表示关注关系已存在（唯一键冲突被吸收）
	Create(ctx context.Context, followerCode, targetCode string) (bool, error)
	FollowingCodes(ctx context.Context, followerCode string) ([]string, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) WithTx(tx *gorm.DB) FollowRepository { return &followRepository{db: tx} }

func (r *followRepository) Create(ctx context.Context, followerCode, targetCode string) (bool, error) {
	f := &model.Follow{ID: uuid.New().String(), FollowerCode: followerCode, TargetCode: targetCode}
	// 幂等：重复关注命中 ux_follow_pair，不插入也不报错
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *followRepository) FollowingCodes(ctx context.Context, followerCode string) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_code = ?", followerCode).
		Order("target_code").
		Pluck("target_code", &codes).Error
	return codes, err
}
