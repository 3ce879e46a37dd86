package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store 聚合所有仓储，作为注入到服务层的存储句柄
type Store struct {
	db       *gorm.DB
	Players  PlayerRepository
	Follows  FollowRepository
	Matches  MatchRepository
	Posts    PostRepository
	Comments CommentRepository
	Votes    VoteRepository
	Reports  ReportRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:       db,
		Players:  NewPlayerRepository(db),
		Follows:  NewFollowRepository(db),
		Matches:  NewMatchRepository(db),
		Posts:    NewPostRepository(db),
		Comments: NewCommentRepository(db),
		Votes:    NewVoteRepository(db),
		Reports:  NewReportRepository(db),
	}
}

// InTx 在一个事务内执行 fn；fn 内只能使用传入的 tx Store。
// 已处于事务中时 gorm 会改用 SAVEPOINT。
func (s *Store) InTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.bind(tx))
	})
}

func (s *Store) bind(tx *gorm.DB) *Store {
	return &Store{
		db:       tx,
		Players:  s.Players.WithTx(tx),
		Follows:  s.Follows.WithTx(tx),
		Matches:  s.Matches.WithTx(tx),
		Posts:    s.Posts.WithTx(tx),
		Comments: s.Comments.WithTx(tx),
		Votes:    s.Votes.WithTx(tx),
		Reports:  s.Reports.WithTx(tx),
	}
}
