package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/futsalero/internal/model"
)

type CommentRepository interface {
	WithTx(tx *gorm.DB) CommentRepository
	Create(ctx context.Context, c *model.Comment) error
	ListByPost(ctx context.Context, postID uint64) ([]*model.Comment, error)
	DeleteByPost(ctx context.Context, postID uint64) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) WithTx(tx *gorm.DB) CommentRepository { return &commentRepository{db: tx} }

func (r *commentRepository) Create(ctx context.Context, c *model.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").Order("id ASC").
		Find(&res).Error
	return res, err
}

func (r *commentRepository) DeleteByPost(ctx context.Context, postID uint64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.Comment{})
	return tx.RowsAffected, tx.Error
}
