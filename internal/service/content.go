package service

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/d60-Lab/futsalero/internal/model"
	"github.com/d60-Lab/futsalero/internal/repository"
)

// MaxCommentLength 评论最大字符数（按 rune 计）
const MaxCommentLength = 140

// ContentStore 动态、评论、投票与举报
type ContentStore interface {
	CreatePost(ctx context.Context, authorCode, body string, matchID *uint64) (*model.Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]*model.Post, error)
	AddComment(ctx context.Context, postID uint64, authorCode, text string) (*model.Comment, error)
	ListComments(ctx context.Context, postID uint64) ([]*model.Comment, error)
	Vote(ctx context.Context, postID uint64, voterCode string, value bool) (model.VoteTally, error)
	VoteCounts(ctx context.Context, postID uint64) (model.VoteTally, error)
	Report(ctx context.Context, postID uint64, reporterCode string) (ModerationResult, error)
}

type contentStore struct {
	store      *repository.Store
	moderation ModerationPolicy
}

func NewContentStore(store *repository.Store, moderation ModerationPolicy) ContentStore {
	if moderation == nil {
		moderation = NewModerationPolicy()
	}
	return &contentStore{store: store, moderation: moderation}
}

func (s *contentStore) CreatePost(ctx context.Context, authorCode, body string, matchID *uint64) (*model.Post, error) {
	if !ValidateFormat(authorCode) {
		return nil, ErrInvalidIdentity
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrPostEmpty
	}

	post := &model.Post{AuthorCode: authorCode, Body: body, MatchID: matchID}
	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		if err := requirePlayer(ctx, tx, authorCode); err != nil {
			return err
		}
		if matchID != nil {
			if !storableID(*matchID) {
				return notFound("match")
			}
			if _, err := tx.Matches.Get(ctx, *matchID); err != nil {
				return lookupErr("content.post", "match", err)
			}
		}
		return tx.Posts.Create(ctx, post)
	})
	if err != nil {
		return nil, storageErr("content.post", err)
	}
	return post, nil
}

func (s *contentStore) ListPosts(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	limit, offset = ClampPage(limit, offset)
	posts, err := s.store.Posts.List(ctx, offset, limit)
	if err != nil {
		return nil, storageErr("content.list_posts", err)
	}
	if posts == nil {
		posts = []*model.Post{}
	}
	return posts, nil
}

// ValidateComment 去首尾空白后校验非空与长度
func ValidateComment(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrCommentEmpty
	}
	if utf8.RuneCountInString(text) > MaxCommentLength {
		return "", ErrCommentTooLong
	}
	return text, nil
}

func (s *contentStore) AddComment(ctx context.Context, postID uint64, authorCode, text string) (*model.Comment, error) {
	if !ValidateFormat(authorCode) {
		return nil, ErrInvalidIdentity
	}
	text, err := ValidateComment(text)
	if err != nil {
		return nil, err
	}

	c := &model.Comment{PostID: postID, AuthorCode: authorCode, Text: text}
	err = s.store.InTx(ctx, func(tx *repository.Store) error {
		if err := requirePost(ctx, tx, postID); err != nil {
			return err
		}
		if err := requirePlayer(ctx, tx, authorCode); err != nil {
			return err
		}
		return tx.Comments.Create(ctx, c)
	})
	if err != nil {
		return nil, storageErr("content.comment", err)
	}
	return c, nil
}

func (s *contentStore) ListComments(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	if err := requirePost(ctx, s.store, postID); err != nil {
		return nil, storageErr("content.list_comments", err)
	}
	comments, err := s.store.Comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, storageErr("content.list_comments", err)
	}
	if comments == nil {
		comments = []*model.Comment{}
	}
	return comments, nil
}

// Vote 覆盖式投票，返回同一事务内重新统计的票数
func (s *contentStore) Vote(ctx context.Context, postID uint64, voterCode string, value bool) (model.VoteTally, error) {
	var tally model.VoteTally
	if !ValidateFormat(voterCode) {
		return tally, ErrInvalidIdentity
	}
	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		if err := requirePost(ctx, tx, postID); err != nil {
			return err
		}
		if err := requirePlayer(ctx, tx, voterCode); err != nil {
			return err
		}
		if err := tx.Votes.Upsert(ctx, postID, voterCode, value); err != nil {
			return err
		}
		var err error
		tally, err = tx.Votes.Tally(ctx, postID)
		return err
	})
	if err != nil {
		return model.VoteTally{}, storageErr("content.vote", err)
	}
	return tally, nil
}

func (s *contentStore) VoteCounts(ctx context.Context, postID uint64) (model.VoteTally, error) {
	if err := requirePost(ctx, s.store, postID); err != nil {
		return model.VoteTally{}, storageErr("content.vote_counts", err)
	}
	tally, err := s.store.Votes.Tally(ctx, postID)
	if err != nil {
		return model.VoteTally{}, storageErr("content.vote_counts", err)
	}
	return tally, nil
}

// Report 记录举报；新举报会以最新举报数触发审核规则，二者同一事务
func (s *contentStore) Report(ctx context.Context, postID uint64, reporterCode string) (ModerationResult, error) {
	var res ModerationResult
	if !ValidateFormat(reporterCode) {
		return res, ErrInvalidIdentity
	}
	err := s.store.InTx(ctx, func(tx *repository.Store) error {
		if err := requirePost(ctx, tx, postID); err != nil {
			return err
		}
		if err := requirePlayer(ctx, tx, reporterCode); err != nil {
			return err
		}
		created, err := tx.Reports.Create(ctx, postID, reporterCode)
		if err != nil {
			return err
		}
		count, err := tx.Reports.Count(ctx, postID)
		if err != nil {
			return err
		}
		res.Reports = count
		if !created {
			return nil
		}
		res, err = s.moderation.Apply(ctx, tx, postID, count)
		return err
	})
	if err != nil {
		return ModerationResult{}, storageErr("content.report", err)
	}
	return res, nil
}

// storableID 超出 int64 的 ID 不可能存在于库中，驱动也拒绝此类参数
func storableID(id uint64) bool { return id <= math.MaxInt64 }

func requirePost(ctx context.Context, store *repository.Store, postID uint64) error {
	if !storableID(postID) {
		return notFound("post")
	}
	if _, err := store.Posts.Get(ctx, postID); err != nil {
		return lookupErr("content.post_lookup", "post", err)
	}
	return nil
}

func requirePlayer(ctx context.Context, store *repository.Store, code string) error {
	ok, err := store.Players.Exists(ctx, code)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("player")
	}
	return nil
}
