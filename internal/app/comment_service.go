package app

import (
	"context"
	"log"
	"strings"

	"goblog-api/internal/model"
	"goblog-api/internal/repository"
)

type CommentService struct {
	commentRepo   *repository.CommentRepository
	postRepo      *repository.PostRepository
	userRepo      *repository.UserRepository
	publisher     ActivityPublisher
	relationCache RelationCache
}

type AddCommentInput struct {
	Content string
	PostID  uint
	UserID  uint
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	postRepo *repository.PostRepository,
	userRepo *repository.UserRepository,
	publisher ActivityPublisher,
	relationCache RelationCache,
) *CommentService {
	return &CommentService{
		commentRepo:   commentRepo,
		postRepo:      postRepo,
		userRepo:      userRepo,
		publisher:     publisher,
		relationCache: relationCache,
	}
}

// AddComment verifies both referenced rows exist before inserting, instead
// of leaving dangling references to the storage layer's FK enforcement.
func (s *CommentService) AddComment(input AddCommentInput) (*model.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if len(content) < 3 || input.PostID == 0 || input.UserID == 0 {
		return nil, ErrInvalidInput
	}

	post, err := s.postRepo.GetByID(input.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	user, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	comment := &model.Comment{
		Content: content,
		PostID:  post.ID,
		UserID:  user.ID,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	if s.relationCache != nil {
		if err := s.relationCache.DeletePostComments(context.Background(), post.ID); err != nil {
			log.Printf("invalidate post comments cache failed: %v", err)
		}
	}
	publishActivity(s.publisher, model.ActivityCommentAdded, user.ID, comment.ID)
	return comment, nil
}
