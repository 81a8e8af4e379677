package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"goblog-api/internal/model"
)

// Each test gets its own named in-memory database so connections from the
// gorm pool all see the same data without leaking between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.Comment{}, &model.Activity{}))
	return db
}

func TestUserRepository_CreateWithCredential(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	t.Run("persists user and credential together", func(t *testing.T) {
		user := &model.User{Name: "alice", Email: "alice@example.com"}
		err := repo.CreateWithCredential(user, func(id uint) (string, error) {
			return fmt.Sprintf("token-for-%d", id), nil
		})
		require.NoError(t, err)
		require.NotZero(t, user.ID)
		require.NotNil(t, user.AccessToken)
		assert.Equal(t, fmt.Sprintf("token-for-%d", user.ID), *user.AccessToken)

		stored, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		require.NotNil(t, stored.AccessToken)
		assert.Equal(t, *user.AccessToken, *stored.AccessToken)
	})

	t.Run("rolls back the row when issuance fails", func(t *testing.T) {
		user := &model.User{Name: "bob", Email: "bob@example.com"}
		err := repo.CreateWithCredential(user, func(id uint) (string, error) {
			return "", errors.New("signer down")
		})
		require.Error(t, err)

		var count int64
		require.NoError(t, db.Model(&model.User{}).Where("name = ?", "bob").Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestUserRepository_GetByNameOrEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	seed := &model.User{Name: "carol", Email: "carol@example.com"}
	require.NoError(t, db.Create(seed).Error)

	t.Run("matches by name", func(t *testing.T) {
		user, err := repo.GetByNameOrEmail("carol", "other@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, seed.ID, user.ID)
	})

	t.Run("matches by email", func(t *testing.T) {
		user, err := repo.GetByNameOrEmail("someone", "carol@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, seed.ID, user.ID)
	})

	t.Run("no match returns nil without error", func(t *testing.T) {
		user, err := repo.GetByNameOrEmail("nobody", "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_GetByIDWithPosts(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	owner := &model.User{Name: "dave", Email: "dave@example.com"}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(&model.Post{Title: "first", Content: "a", UserID: owner.ID}).Error)
	require.NoError(t, db.Create(&model.Post{Title: "second", Content: "b", UserID: owner.ID}).Error)

	user, err := repo.GetByIDWithPosts(owner.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Len(t, user.Posts, 2)

	missing, err := repo.GetByIDWithPosts(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostRepository_GetByIDWithComments(t *testing.T) {
	db := newTestDB(t)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)

	owner := &model.User{Name: "erin", Email: "erin@example.com"}
	require.NoError(t, db.Create(owner).Error)

	post := &model.Post{Title: "topic", Content: "body", UserID: owner.ID}
	require.NoError(t, posts.Create(post))
	require.NoError(t, comments.Create(&model.Comment{Content: "nice", PostID: post.ID, UserID: owner.ID}))

	loaded, err := posts.GetByIDWithComments(post.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Len(t, loaded.Comments, 1)

	missing, err := posts.GetByIDWithComments(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestActivityRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewActivityRepository(db)

	require.NoError(t, repo.Create(&model.Activity{Kind: model.ActivityUserSignup, UserID: 1, SubjectID: 1}))
	require.NoError(t, repo.Create(&model.Activity{Kind: model.ActivityPostCreated, UserID: 1, SubjectID: 7}))

	activities, err := repo.ListByUserID(1, 0)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, model.ActivityUserSignup, activities[0].Kind)
	assert.Equal(t, model.ActivityPostCreated, activities[1].Kind)
}
