package app

import (
	"context"
	"log"
	"strings"

	"goblog-api/internal/model"
	"goblog-api/internal/repository"
)

type PostService struct {
	postRepo      *repository.PostRepository
	userRepo      *repository.UserRepository
	publisher     ActivityPublisher
	relationCache RelationCache
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
}

func NewPostService(
	postRepo *repository.PostRepository,
	userRepo *repository.UserRepository,
	publisher ActivityPublisher,
	relationCache RelationCache,
) *PostService {
	return &PostService{
		postRepo:      postRepo,
		userRepo:      userRepo,
		publisher:     publisher,
		relationCache: relationCache,
	}
}

// CreatePost persists a post owned by the authenticated user. The owner is
// looked up so that an authenticated-but-deleted user maps to not-found
// rather than a dangling reference.
func (s *PostService) CreatePost(input CreatePostInput) (*model.Post, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if input.UserID == 0 || title == "" || content == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	post := &model.Post{
		Title:   title,
		Content: content,
		UserID:  user.ID,
	}
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	// Echo the owner in the response without its credential.
	owner := *user
	owner.AccessToken = nil
	post.User = &owner

	if s.relationCache != nil {
		if err := s.relationCache.DeleteUserPosts(context.Background(), user.ID); err != nil {
			log.Printf("invalidate user posts cache failed: %v", err)
		}
	}
	publishActivity(s.publisher, model.ActivityPostCreated, user.ID, post.ID)
	return post, nil
}

func (s *PostService) GetPostComments(postID uint) ([]model.Comment, error) {
	if postID == 0 {
		return nil, ErrPostNotFound
	}

	if s.relationCache != nil {
		comments, hit, err := s.relationCache.GetPostComments(context.Background(), postID)
		if err != nil {
			log.Printf("read post comments cache failed: %v", err)
		} else if hit {
			return comments, nil
		}
	}

	post, err := s.postRepo.GetByIDWithComments(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comments := post.Comments
	if comments == nil {
		comments = []model.Comment{}
	}
	if s.relationCache != nil {
		if err := s.relationCache.SetPostComments(context.Background(), postID, comments); err != nil {
			log.Printf("write post comments cache failed: %v", err)
		}
	}
	return comments, nil
}
