package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"goblog-api/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateWithCredential inserts the user and persists the credential issued
// for its generated ID in one transaction. A failing issue callback rolls
// the insert back, so no user row is ever left without a credential.
func (r *UserRepository) CreateWithCredential(user *model.User, issue func(id uint) (string, error)) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		token, err := issue(user.ID)
		if err != nil {
			return err
		}
		if err := tx.Model(user).Update("access_token", token).Error; err != nil {
			return err
		}
		user.AccessToken = &token
		return nil
	})
	if err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

// GetByNameOrEmail matches either unique field in a single two-clause query.
func (r *UserRepository) GetByNameOrEmail(name, email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("name = ? OR email = ?", name, email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by name or email failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByIDWithPosts(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Posts").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user with posts failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) ListAll() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users failed: %w", err)
	}
	return users, nil
}
