package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/futsalero/internal/model"
)

type PostRepository interface {
	WithTx(tx *gorm.DB) PostRepository
	Create(ctx context.Context, post *model.Post) error
	Get(ctx context.Context, id uint64) (*model.Post, error)
	List(ctx context.Context, offset, limit int) ([]*model.Post, error)
	Delete(ctx context.Context, id uint64) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) WithTx(tx *gorm.DB) PostRepository { return &postRepository{db: tx} }

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Get(ctx context.Context, id uint64) (*model.Post, error) {
	var p model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) List(ctx context.Context, offset, limit int) ([]*model.Post, error) {
	var res []*model.Post
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *postRepository) Delete(ctx context.Context, id uint64) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
	return tx.RowsAffected, tx.Error
}
