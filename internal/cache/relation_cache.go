package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"goblog-api/internal/model"
)

// RelationCache keeps the two relation-expansion reads (a user's posts, a
// post's comments) in redis for a short TTL. Writes delete the affected key.
type RelationCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewRelationCache(client *redisv9.Client, ttl time.Duration) *RelationCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &RelationCache{client: client, ttl: ttl}
}

func (c *RelationCache) GetUserPosts(ctx context.Context, userID uint) ([]model.Post, bool, error) {
	raw, err := c.client.Get(ctx, c.userPostsKey(userID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get user posts failed: %w", err)
	}

	var posts []model.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached posts failed: %w", err)
	}
	return posts, true, nil
}

func (c *RelationCache) SetUserPosts(ctx context.Context, userID uint, posts []model.Post) error {
	payload, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("marshal posts cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.userPostsKey(userID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set user posts failed: %w", err)
	}
	return nil
}

func (c *RelationCache) DeleteUserPosts(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, c.userPostsKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete user posts failed: %w", err)
	}
	return nil
}

func (c *RelationCache) GetPostComments(ctx context.Context, postID uint) ([]model.Comment, bool, error) {
	raw, err := c.client.Get(ctx, c.postCommentsKey(postID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get post comments failed: %w", err)
	}

	var comments []model.Comment
	if err := json.Unmarshal([]byte(raw), &comments); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached comments failed: %w", err)
	}
	return comments, true, nil
}

func (c *RelationCache) SetPostComments(ctx context.Context, postID uint, comments []model.Comment) error {
	payload, err := json.Marshal(comments)
	if err != nil {
		return fmt.Errorf("marshal comments cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.postCommentsKey(postID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set post comments failed: %w", err)
	}
	return nil
}

func (c *RelationCache) DeletePostComments(ctx context.Context, postID uint) error {
	if err := c.client.Del(ctx, c.postCommentsKey(postID)).Err(); err != nil {
		return fmt.Errorf("redis delete post comments failed: %w", err)
	}
	return nil
}

func (c *RelationCache) userPostsKey(userID uint) string {
	return fmt.Sprintf("users:posts:%d", userID)
}

func (c *RelationCache) postCommentsKey(postID uint) string {
	return fmt.Sprintf("posts:comments:%d", postID)
}
