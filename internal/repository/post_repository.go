package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"goblog-api/internal/model"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("create post failed: %w", err)
	}
	return nil
}

func (r *PostRepository) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id failed: %w", err)
	}
	return &post, nil
}

func (r *PostRepository) GetByIDWithComments(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Preload("Comments").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post with comments failed: %w", err)
	}
	return &post, nil
}
