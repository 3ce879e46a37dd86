package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/d60-Lab/futsalero/internal/model"
	"github.com/d60-Lab/futsalero/internal/repository"
	"github.com/d60-Lab/futsalero/pkg/cache"
	"github.com/d60-Lab/futsalero/pkg/logger"
)

// MaxIdentityAttempts 生成唯一身份码的重试上限
const MaxIdentityAttempts = 50

var codePattern = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)

// ValidateFormat 纯语法校验：3 个大写字母 + 4 位数字
func ValidateFormat(code string) bool {
	return codePattern.MatchString(code)
}

// NormalizeCode 去空白并转大写，用于搜索入口
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// CodeGenerator 生成候选身份码，测试中可替换
type CodeGenerator func() string

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomCode 均匀抽取 3 个字母和 1000-9999 之间的数字
func RandomCode() string {
	var b strings.Builder
	b.Grow(7)
	for i := 0; i < 3; i++ {
		b.WriteByte(letters[rand.IntN(len(letters))])
	}
	fmt.Fprintf(&b, "%d", 1000+rand.IntN(9000))
	return b.String()
}

// IdentityRegistry 身份码签发与档案
type IdentityRegistry interface {
	IssueIdentity(ctx context.Context) (string, error)
	Register(ctx context.Context, role, username string) (*model.Player, error)
	SyncProfile(ctx context.Context, code, username string, categories []string) error
	Profile(ctx context.Context, code string) (*model.Player, error)
}

type identityRegistry struct {
	store *repository.Store
	cache cache.Cache
	gen   CodeGenerator
}

func NewIdentityRegistry(store *repository.Store, c cache.Cache, gen CodeGenerator) IdentityRegistry {
	if c == nil {
		c = cache.Nop()
	}
	if gen == nil {
		gen = RandomCode
	}
	return &identityRegistry{store: store, cache: c, gen: gen}
}

// claim 反复生成候选码直到 try 认领成功，最多 MaxIdentityAttempts 次
func (r *identityRegistry) claim(ctx context.Context, try func(code string) (bool, error)) (string, error) {
	for i := 0; i < MaxIdentityAttempts; i++ {
		code := r.gen()
		ok, err := try(code)
		if err != nil {
			return "", storageErr("identity.claim", err)
		}
		if ok {
			return code, nil
		}
	}
	logger.Error("identity keyspace retry bound hit", zap.Int("attempts", MaxIdentityAttempts))
	return "", ErrIdentityExhausted
}

// IssueIdentity 返回当前未被占用的身份码（不落库）
func (r *identityRegistry) IssueIdentity(ctx context.Context) (string, error) {
	return r.claim(ctx, func(code string) (bool, error) {
		exists, err := r.store.Players.Exists(ctx, code)
		return !exists, err
	})
}

// Register 签发身份码并创建档案；插入受主键约束保护，并发撞码时继续重试
func (r *identityRegistry) Register(ctx context.Context, role, username string) (*model.Player, error) {
	rl := model.Role(strings.ToLower(strings.TrimSpace(role)))
	if !rl.Valid() {
		return nil, ErrInvalidRole
	}
	var player *model.Player
	_, err := r.claim(ctx, func(code string) (bool, error) {
		p := &model.Player{
			Code:       code,
			Username:   strings.TrimSpace(username),
			Role:       rl,
			Categories: []model.Category{},
		}
		created, err := r.store.Players.CreateIfAbsent(ctx, p)
		if created {
			player = p
		}
		return created, err
	})
	if err != nil {
		return nil, err
	}
	logger.Info("player registered", zap.String("code", player.Code), zap.String("role", string(rl)))
	return player, nil
}

// SyncProfile 更新昵称与级别；未知但格式正确的身份码会新建档案
func (r *identityRegistry) SyncProfile(ctx context.Context, code, username string, categories []string) error {
	if !ValidateFormat(code) {
		return ErrInvalidIdentity
	}
	cats, err := parseCategories(categories)
	if err != nil {
		return err
	}
	p := &model.Player{
		Code:       code,
		Username:   strings.TrimSpace(username),
		Role:       model.RolePlayer,
		Categories: cats,
	}
	if err := r.store.Players.Upsert(ctx, p); err != nil {
		return storageErr("identity.sync", err)
	}
	r.cache.Delete(ctx, profileKey(code))
	return nil
}

// Profile 读取档案；昵称与级别走缓存，加分总是读库
func (r *identityRegistry) Profile(ctx context.Context, code string) (*model.Player, error) {
	if !ValidateFormat(code) {
		return nil, ErrInvalidIdentity
	}
	var cached model.Player
	if r.cache.Get(ctx, profileKey(code), &cached) {
		// 加分由关注并发修改，缓存里的值可能已过期，每次回库读取
		bonus, err := r.store.Players.SocialBonus(ctx, code)
		if err != nil {
			return nil, lookupErr("identity.profile", "player", err)
		}
		cached.SocialBonus = bonus
		return &cached, nil
	}
	p, err := r.store.Players.Get(ctx, code)
	if err != nil {
		return nil, lookupErr("identity.profile", "player", err)
	}
	if p.Categories == nil {
		p.Categories = []model.Category{}
	}
	r.cache.Set(ctx, profileKey(code), p)
	return p, nil
}

func profileKey(code string) string { return "player:" + code }

// parseCategories 去重并保持输入顺序，出现未知级别直接拒绝
func parseCategories(in []string) ([]model.Category, error) {
	out := make([]model.Category, 0, len(in))
	seen := make(map[model.Category]struct{}, len(in))
	for _, s := range in {
		c, ok := model.ParseCategory(s)
		if !ok {
			return nil, ErrInvalidCategory
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}
