package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"goblog-api/internal/model"
	"goblog-api/internal/repository"
)

func newPostService(db *gorm.DB, publisher ActivityPublisher, relationCache RelationCache) *PostService {
	return NewPostService(repository.NewPostRepository(db), repository.NewUserRepository(db), publisher, relationCache)
}

func seedUser(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: email}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestPostService_CreatePost(t *testing.T) {
	db := newTestDB(t)
	publisher := &fakePublisher{}
	relationCache := newFakeRelationCache()
	svc := newPostService(db, publisher, relationCache)

	owner := seedUser(t, db, "Writer", "writer@example.com")

	t.Run("missing user maps to not-found", func(t *testing.T) {
		_, err := svc.CreatePost(CreatePostInput{UserID: 9999, Title: "T", Content: "C"})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("blank title is invalid", func(t *testing.T) {
		_, err := svc.CreatePost(CreatePostInput{UserID: owner.ID, Title: "   ", Content: "C"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("creates the post, publishes and invalidates", func(t *testing.T) {
		require.NoError(t, relationCache.SetUserPosts(context.Background(), owner.ID, []model.Post{}))

		post, err := svc.CreatePost(CreatePostInput{UserID: owner.ID, Title: "Title", Content: "Content"})
		require.NoError(t, err)
		require.NotZero(t, post.ID)
		assert.Equal(t, owner.ID, post.UserID)
		require.NotNil(t, post.User)
		assert.Nil(t, post.User.AccessToken)

		_, hit, err := relationCache.GetUserPosts(context.Background(), owner.ID)
		require.NoError(t, err)
		assert.False(t, hit)

		require.Len(t, publisher.published, 1)
		assert.Equal(t, model.ActivityPostCreated, publisher.published[0].Kind)
		assert.Equal(t, post.ID, publisher.published[0].SubjectID)
	})
}

func TestPostService_GetPostComments(t *testing.T) {
	db := newTestDB(t)
	relationCache := newFakeRelationCache()
	svc := newPostService(db, nil, relationCache)

	owner := seedUser(t, db, "Reader", "reader@example.com")
	post := &model.Post{Title: "Topic", Content: "Body", UserID: owner.ID}
	require.NoError(t, db.Create(post).Error)

	t.Run("missing post", func(t *testing.T) {
		_, err := svc.GetPostComments(9999)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("zero id is treated as not-found", func(t *testing.T) {
		_, err := svc.GetPostComments(0)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("post without comments gets an empty slice", func(t *testing.T) {
		comments, err := svc.GetPostComments(post.ID)
		require.NoError(t, err)
		require.NotNil(t, comments)
		assert.Empty(t, comments)
	})

	t.Run("returns existing comments", func(t *testing.T) {
		require.NoError(t, relationCache.DeletePostComments(context.Background(), post.ID))
		require.NoError(t, db.Create(&model.Comment{Content: "well said", PostID: post.ID, UserID: owner.ID}).Error)

		comments, err := svc.GetPostComments(post.ID)
		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "well said", comments[0].Content)
	})
}
