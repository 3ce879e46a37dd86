package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/futsalero/internal/model"
)

type PlayerRepository interface {
	WithTx(tx *gorm.DB) PlayerRepository
	Exists(ctx context.Context, code string) (bool, error)
	// CreateIfAbsent 返回 false 表示身份码已被占用
	CreateIfAbsent(ctx context.Context, p *model.Player) (bool, error)
	// Upsert 按 code 插入或更新昵称与级别
	Upsert(ctx context.Context, p *model.Player) error
	Get(ctx context.Context, code string) (*model.Player, error)
	GetMany(ctx context.Context, codes []string) ([]*model.Player, error)
	IncreaseSocialBonus(ctx context.Context, code string, delta int64) error
	// SocialBonus 只读加分列；不存在时返回 gorm.ErrRecordNotFound
	SocialBonus(ctx context.Context, code string) (int64, error)
}

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository { return &playerRepository{db: db} }

func (r *playerRepository) WithTx(tx *gorm.DB) PlayerRepository { return &playerRepository{db: tx} }

func (r *playerRepository) Exists(ctx context.Context, code string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&model.Player{}).Where("code = ?", code).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *playerRepository) CreateIfAbsent(ctx context.Context, p *model.Player) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(p)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *playerRepository) Upsert(ctx context.Context, p *model.Player) error {
	p.UpdatedAt = time.Now()
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "categories", "updated_at"}),
	}).Create(p).Error
}

func (r *playerRepository) Get(ctx context.Context, code string) (*model.Player, error) {
	var p model.Player
	if err := r.db.WithContext(ctx).Where("code = ?", code).Take(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetMany(ctx context.Context, codes []string) ([]*model.Player, error) {
	if len(codes) == 0 {
		return []*model.Player{}, nil
	}
	var res []*model.Player
	err := r.db.WithContext(ctx).Where("code IN ?", codes).Find(&res).Error
	return res, err
}

func (r *playerRepository) IncreaseSocialBonus(ctx context.Context, code string, delta int64) error {
	tx := r.db.WithContext(ctx).
		Model(&model.Player{}).
		Where("code = ?", code).
		UpdateColumn("social_bonus", gorm.Expr("social_bonus + ?", delta))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *playerRepository) SocialBonus(ctx context.Context, code string) (int64, error) {
	var bonus []int64
	if err := r.db.WithContext(ctx).
		Model(&model.Player{}).
		Where("code = ?", code).
		Pluck("social_bonus", &bonus).Error; err != nil {
		return 0, err
	}
	if len(bonus) == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return bonus[0], nil
}
