package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/futsalero/internal/model"
)

type VoteRepository interface {
	WithTx(tx *gorm.DB) VoteRepository
	// Upsert 命中 ux_vote_post_voter 时覆盖 value
	Upsert(ctx context.Context, postID uint64, voterCode string, value bool) error
	Tally(ctx context.Context, postID uint64) (model.VoteTally, error)
	DeleteByPost(ctx context.Context, postID uint64) (int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository { return &voteRepository{db: db} }

func (r *voteRepository) WithTx(tx *gorm.DB) VoteRepository { return &voteRepository{db: tx} }

func (r *voteRepository) Upsert(ctx context.Context, postID uint64, voterCode string, value bool) error {
	now := time.Now()
	v := &model.Vote{PostID: postID, VoterCode: voterCode, Value: value, CreatedAt: now, UpdatedAt: now}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "voter_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(v).Error
}

func (r *voteRepository) Tally(ctx context.Context, postID uint64) (model.VoteTally, error) {
	var t model.VoteTally
	var rows []struct {
		Value bool
		Cnt   int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Vote{}).
		Select("value, COUNT(*) AS cnt").
		Where("post_id = ?", postID).
		Group("value").
		Scan(&rows).Error
	if err != nil {
		return t, err
	}
	for _, row := range rows {
		if row.Value {
			t.True += row.Cnt
		} else {
			t.False += row.Cnt
		}
	}
	return t, nil
}

func (r *voteRepository) DeleteByPost(ctx context.Context, postID uint64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.Vote{})
	return tx.RowsAffected, tx.Error
}
