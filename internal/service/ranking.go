package service

import (
	"context"
	"sort"

	"github.com/d60-Lab/futsalero/internal/model"
	"github.com/d60-Lab/futsalero/internal/repository"
)

// RankEntry 排行榜条目；Score = 比赛积分 + 关注加分，每次实时计算
type RankEntry struct {
	Code       string           `json:"code"`
	Username   string           `json:"username"`
	Categories []model.Category `json:"categories"`
	Score      int64            `json:"score"`
	Matches    int64            `json:"matches"`
}

// RankingEngine 只读：汇总比赛记录与关注加分
type RankingEngine interface {
	Rank(ctx context.Context, category, scope, viewerCode string) ([]RankEntry, error)
	Standing(ctx context.Context, category, code string) (RankEntry, error)
}

type rankingEngine struct {
	store *repository.Store
}

func NewRankingEngine(store *repository.Store) RankingEngine {
	return &rankingEngine{store: store}
}

func (e *rankingEngine) Rank(ctx context.Context, category, scope, viewerCode string) ([]RankEntry, error) {
	cat, ok := model.ParseCategory(category)
	if !ok {
		return nil, ErrInvalidCategory
	}

	aggs, err := e.store.Matches.Aggregate(ctx, cat)
	if err != nil {
		return nil, storageErr("ranking.aggregate", err)
	}

	// friends 范围：仅保留 viewer 关注的人（单向）；viewer 非法时退化为 global
	if model.ParseScope(scope) == model.ScopeFriends && ValidateFormat(viewerCode) {
		following, err := e.store.Follows.FollowingCodes(ctx, viewerCode)
		if err != nil {
			return nil, storageErr("ranking.following", err)
		}
		aggs = restrictTo(aggs, following)
	}

	codes := make([]string, len(aggs))
	for i, a := range aggs {
		codes[i] = a.PlayerCode
	}
	players, err := e.store.Players.GetMany(ctx, codes)
	if err != nil {
		return nil, storageErr("ranking.players", err)
	}
	byCode := make(map[string]*model.Player, len(players))
	for _, p := range players {
		byCode[p.Code] = p
	}

	entries := make([]RankEntry, 0, len(aggs))
	for _, a := range aggs {
		entries = append(entries, buildEntry(a, byCode[a.PlayerCode]))
	}
	SortRanking(entries)
	return entries, nil
}

// Standing 单个球员在某级别的实时得分；没有比赛也没有粉丝时为 0
func (e *rankingEngine) Standing(ctx context.Context, category, code string) (RankEntry, error) {
	cat, ok := model.ParseCategory(category)
	if !ok {
		return RankEntry{}, ErrInvalidCategory
	}
	if !ValidateFormat(code) {
		return RankEntry{}, ErrInvalidIdentity
	}
	p, err := e.store.Players.Get(ctx, code)
	if err != nil {
		return RankEntry{}, lookupErr("ranking.standing", "player", err)
	}
	agg, err := e.store.Matches.AggregateFor(ctx, cat, code)
	if err != nil {
		return RankEntry{}, storageErr("ranking.standing", err)
	}
	return buildEntry(agg, p), nil
}

func buildEntry(a repository.MatchAggregate, p *model.Player) RankEntry {
	entry := RankEntry{
		Code:       a.PlayerCode,
		Categories: []model.Category{},
		Score:      a.Points,
		Matches:    a.Matches,
	}
	if p != nil {
		entry.Username = p.Username
		entry.Score += p.SocialBonus
		if p.Categories != nil {
			entry.Categories = p.Categories
		}
	}
	return entry
}

func restrictTo(aggs []repository.MatchAggregate, codes []string) []repository.MatchAggregate {
	allowed := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		allowed[c] = struct{}{}
	}
	out := aggs[:0]
	for _, a := range aggs {
		if _, ok := allowed[a.PlayerCode]; ok {
			out = append(out, a)
		}
	}
	return out
}

// SortRanking 按得分降序、场次降序稳定排序；输入已按身份码排好，因此结果确定
func SortRanking(entries []RankEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Matches > entries[j].Matches
	})
}
