package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/futsalero/internal/model"
)

// MatchFilter 空字段表示不过滤
type MatchFilter struct {
	PlayerCode string
	Category   model.Category
	Offset     int
	Limit      int
}

// MatchAggregate 某级别下单个球员的积分汇总
type MatchAggregate struct {
	PlayerCode string
	Points     int64
	Matches    int64
}

type MatchRepository interface {
	WithTx(tx *gorm.DB) MatchRepository
	Create(ctx context.Context, entry *model.MatchEntry) error
	Get(ctx context.Context, id uint64) (*model.MatchEntry, error)
	List(ctx context.Context, filter MatchFilter) ([]*model.MatchEntry, error)
	// Aggregate 按 player_code 分组，结果按 player_code 升序，保证排序输入确定
	Aggregate(ctx context.Context, category model.Category) ([]MatchAggregate, error)
	AggregateFor(ctx context.Context, category model.Category, playerCode string) (MatchAggregate, error)
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository { return &matchRepository{db: db} }

func (r *matchRepository) WithTx(tx *gorm.DB) MatchRepository { return &matchRepository{db: tx} }

func (r *matchRepository) Create(ctx context.Context, entry *model.MatchEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *matchRepository) Get(ctx context.Context, id uint64) (*model.MatchEntry, error) {
	var e model.MatchEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *matchRepository) List(ctx context.Context, filter MatchFilter) ([]*model.MatchEntry, error) {
	q := r.db.WithContext(ctx).Model(&model.MatchEntry{})
	if filter.PlayerCode != "" {
		q = q.Where("player_code = ?", filter.PlayerCode)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	var res []*model.MatchEntry
	err := q.Order("created_at DESC").Order("id DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&res).Error
	return res, err
}

func (r *matchRepository) Aggregate(ctx context.Context, category model.Category) ([]MatchAggregate, error) {
	var rows []MatchAggregate
	err := r.db.WithContext(ctx).
		Model(&model.MatchEntry{}).
		Select("player_code, COALESCE(SUM(points), 0) AS points, COUNT(*) AS matches").
		Where("category = ?", category).
		Group("player_code").
		Order("player_code").
		Scan(&rows).Error
	return rows, err
}

func (r *matchRepository) AggregateFor(ctx context.Context, category model.Category, playerCode string) (MatchAggregate, error) {
	agg := MatchAggregate{PlayerCode: playerCode}
	err := r.db.WithContext(ctx).
		Model(&model.MatchEntry{}).
		Select("COALESCE(SUM(points), 0) AS points, COUNT(*) AS matches").
		Where("category = ? AND player_code = ?", category, playerCode).
		Scan(&agg).Error
	agg.PlayerCode = playerCode
	return agg, err
}
