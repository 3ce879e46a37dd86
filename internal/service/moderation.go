package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/d60-Lab/futsalero/internal/repository"
	"github.com/d60-Lab/futsalero/pkg/logger"
)

// ReportThreshold 达到该举报数即删除动态及其全部从属数据
const ReportThreshold = 30

// ModerationResult Removed 为 true 时动态已被级联删除
type ModerationResult struct {
	Removed bool  `json:"removed"`
	Reports int64 `json:"reports"`
}

// ModerationPolicy 举报阈值规则
type ModerationPolicy interface {
	// Apply 在 store 所在事务中执行；store 非事务时自行开启事务
	Apply(ctx context.Context, store *repository.Store, postID uint64, reports int64) (ModerationResult, error)
}

type thresholdPolicy struct {
	threshold int64
}

func NewModerationPolicy() ModerationPolicy {
	return &thresholdPolicy{threshold: ReportThreshold}
}

func (p *thresholdPolicy) Apply(ctx context.Context, store *repository.Store, postID uint64, reports int64) (ModerationResult, error) {
	res := ModerationResult{Reports: reports}
	if reports < p.threshold {
		return res, nil
	}

	var comments, votes, reps int64
	// 顺序：评论、投票、举报、动态本身；全部成功或全部回滚
	err := store.InTx(ctx, func(tx *repository.Store) error {
		var err error
		if comments, err = tx.Comments.DeleteByPost(ctx, postID); err != nil {
			return err
		}
		if votes, err = tx.Votes.DeleteByPost(ctx, postID); err != nil {
			return err
		}
		if reps, err = tx.Reports.DeleteByPost(ctx, postID); err != nil {
			return err
		}
		n, err := tx.Posts.Delete(ctx, postID)
		if err != nil {
			return err
		}
		if n == 0 {
			return notFound("post")
		}
		return nil
	})
	if err != nil {
		return res, storageErr("moderation.cascade", err)
	}

	res.Removed = true
	logger.Info("post removed by moderation",
		zap.Uint64("post_id", postID),
		zap.Int64("reports", reports),
		zap.Int64("comments_deleted", comments),
		zap.Int64("votes_deleted", votes),
		zap.Int64("reports_deleted", reps),
	)
	return res, nil
}
