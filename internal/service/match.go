package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/d60-Lab/futsalero/internal/model"
	"github.com/d60-Lab/futsalero/internal/repository"
)

const (
	// MaxPageSize 列表接口单页上限，与客户端传入无关
	MaxPageSize     = 50
	DefaultPageSize = 20

	// MaxStatValue 单场得分/进球/助攻上限，保证按级别求和不会溢出
	MaxStatValue = 1_000_000
)

// ClampPage 把 limit 限制在 [1, MaxPageSize]，offset 不小于 0
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ParseStat 把客户端传来的数值转为 [0, MaxStatValue] 内的整数；空值视为 0，小数向下取整
func ParseStat(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if !validStat(n) {
			return 0, ErrInvalidStats
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f >= MaxStatValue+1 {
		return 0, ErrInvalidStats
	}
	return int64(f), nil
}

func validStat(n int64) bool { return n >= 0 && n <= MaxStatValue }

// MatchStats 单场数据
type MatchStats struct {
	Points       int64
	Goals        int64
	Assists      int64
	IsGoalkeeper bool
}

// MatchQuery 空 Code/Category 表示不过滤
type MatchQuery struct {
	Code     string
	Category string
	Limit    int
	Offset   int
}

// MatchLedger 比赛记录（只追加）
type MatchLedger interface {
	RecordMatch(ctx context.Context, code, category string, stats MatchStats) (uint64, error)
	QueryMatches(ctx context.Context, q MatchQuery) ([]*model.MatchEntry, error)
}

type matchLedger struct {
	store *repository.Store
}

func NewMatchLedger(store *repository.Store) MatchLedger {
	return &matchLedger{store: store}
}

func (l *matchLedger) RecordMatch(ctx context.Context, code, category string, stats MatchStats) (uint64, error) {
	if !ValidateFormat(code) {
		return 0, ErrInvalidIdentity
	}
	cat, ok := model.ParseCategory(category)
	if !ok {
		return 0, ErrInvalidCategory
	}
	if !validStat(stats.Points) || !validStat(stats.Goals) || !validStat(stats.Assists) {
		return 0, ErrInvalidStats
	}

	exists, err := l.store.Players.Exists(ctx, code)
	if err != nil {
		return 0, storageErr("match.record", err)
	}
	if !exists {
		return 0, notFound("player")
	}

	entry := &model.MatchEntry{
		PlayerCode:   code,
		Category:     cat,
		Points:       stats.Points,
		Goals:        stats.Goals,
		Assists:      stats.Assists,
		IsGoalkeeper: stats.IsGoalkeeper,
	}
	if err := l.store.Matches.Create(ctx, entry); err != nil {
		return 0, storageErr("match.record", err)
	}
	return entry.ID, nil
}

func (l *matchLedger) QueryMatches(ctx context.Context, q MatchQuery) ([]*model.MatchEntry, error) {
	filter := repository.MatchFilter{}
	if q.Code != "" {
		if !ValidateFormat(q.Code) {
			return nil, ErrInvalidIdentity
		}
		filter.PlayerCode = q.Code
	}
	if q.Category != "" {
		cat, ok := model.ParseCategory(q.Category)
		if !ok {
			return nil, ErrInvalidCategory
		}
		filter.Category = cat
	}
	filter.Limit, filter.Offset = ClampPage(q.Limit, q.Offset)

	entries, err := l.store.Matches.List(ctx, filter)
	if err != nil {
		return nil, storageErr("match.query", err)
	}
	if entries == nil {
		entries = []*model.MatchEntry{}
	}
	return entries, nil
}
