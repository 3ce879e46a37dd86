package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/d60-Lab/futsalero/internal/repository"
	"github.com/d60-Lab/futsalero/pkg/cache"
	"github.com/d60-Lab/futsalero/pkg/logger"
)

// SocialGraph 关注关系及关注加分
type SocialGraph interface {
	// Follow 返回 true 表示新建了关注关系；重复关注返回 false 且不加分
	Follow(ctx context.Context, followerCode, targetCode string) (bool, error)
	Following(ctx context.Context, code string) ([]string, error)
}

type socialGraph struct {
	store *repository.Store
	cache cache.Cache
}

func NewSocialGraph(store *repository.Store, c cache.Cache) SocialGraph {
	if c == nil {
		c = cache.Nop()
	}
	return &socialGraph{store: store, cache: c}
}

func (s *socialGraph) Follow(ctx context.Context, followerCode, targetCode string) (bool, error) {
	if !ValidateFormat(followerCode) || !ValidateFormat(targetCode) {
		return false, ErrInvalidIdentity
	}
	if followerCode == targetCode {
		return false, ErrFollowSelf
	}

	var created bool
	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		for _, code := range []string{followerCode, targetCode} {
			ok, err := tx.Players.Exists(ctx, code)
			if err != nil {
				return err
			}
			if !ok {
				return notFound("player")
			}
		}
		var err error
		created, err = tx.Follows.Create(ctx, followerCode, targetCode)
		if err != nil || !created {
			return err
		}
		// 加分与关注关系同一事务提交
		return tx.Players.IncreaseSocialBonus(ctx, targetCode, 1)
	})
	if err != nil {
		return false, lookupErr("social.follow", "player", err)
	}
	if created {
		s.cache.Delete(ctx, profileKey(targetCode))
		logger.Info("follow created", zap.String("follower", followerCode), zap.String("target", targetCode))
	}
	return created, nil
}

// Following 返回 code 关注的所有身份码（按码排序）
func (s *socialGraph) Following(ctx context.Context, code string) ([]string, error) {
	if !ValidateFormat(code) {
		return nil, ErrInvalidIdentity
	}
	ok, err := s.store.Players.Exists(ctx, code)
	if err != nil {
		return nil, storageErr("social.following", err)
	}
	if !ok {
		return nil, notFound("player")
	}
	codes, err := s.store.Follows.FollowingCodes(ctx, code)
	if err != nil {
		return nil, storageErr("social.following", err)
	}
	if codes == nil {
		codes = []string{}
	}
	return codes, nil
}
